// Package storage implements the process-wide in-memory entity store. All
// state is volatile and reset on restart. A single Store is constructed at
// startup and passed by handle to every service; one store-wide RWMutex
// guards every collection so read-modify-write sequences stay safe under
// fiber's concurrent handlers.
package storage

import (
	"sync"

	"nft-card-system/models"
)

// table is an insertion-ordered keyed collection. Plain map lookups give
// O(1) get; the key slice preserves insertion order for listings, which Go
// map iteration alone would not.
type table[T any] struct {
	items map[string]T
	order []string
}

func newTable[T any]() table[T] {
	return table[T]{items: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.items[id]
	return v, ok
}

func (t *table[T]) insert(id string, v T) {
	t.items[id] = v
	t.order = append(t.order, id)
}

// replace overwrites an existing entry in place, keeping its position.
func (t *table[T]) replace(id string, v T) {
	t.items[id] = v
}

func (t *table[T]) delete(id string) bool {
	if _, ok := t.items[id]; !ok {
		return false
	}
	delete(t.items, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// all returns every entry in insertion order.
func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.items))
	for _, id := range t.order {
		out = append(out, t.items[id])
	}
	return out
}

// Store holds every entity collection. Cross-entity references (owner ids,
// card ids) are advisory — deletes do not cascade and lookups through stale
// references simply miss.
type Store struct {
	mu           sync.RWMutex
	users        table[models.User]
	cards        table[models.Card]
	decks        table[models.Deck]
	events       table[models.Event]
	transactions table[models.Transaction]
	leaderboard  table[models.LeaderboardEntry]
}

// New returns an empty store. Call Seed for the demo data set.
func New() *Store {
	return &Store{
		users:        newTable[models.User](),
		cards:        newTable[models.Card](),
		decks:        newTable[models.Deck](),
		events:       newTable[models.Event](),
		transactions: newTable[models.Transaction](),
		leaderboard:  newTable[models.LeaderboardEntry](),
	}
}
