package storage

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"nft-card-system/models"
)

// GetDeck looks up a deck by id.
func (s *Store) GetDeck(id string) (models.Deck, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.decks.get(id)
}

// ListDecksByOwner returns the owner's decks in creation order.
func (s *Store) ListDecksByOwner(ownerID string) []models.Deck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Deck{}
	for _, id := range s.decks.order {
		d := s.decks.items[id]
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out
}

// CreateDeck inserts a deck with zeroed derived stats. The deck service
// recomputes and writes the real stats in a follow-up update.
func (s *Store) CreateDeck(in models.CreateDeck) models.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	deck := models.Deck{
		ID:         uuid.NewString(),
		OwnerID:    in.OwnerID,
		Name:       in.Name,
		CardIDs:    in.CardIDs,
		AvgMana:    decimal.Zero,
		TotalPower: 0,
		Synergy:    decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if deck.CardIDs == nil {
		deck.CardIDs = []string{}
	}
	s.decks.insert(deck.ID, deck)
	return deck
}

// UpdateDeck shallow-merges the provided fields and bumps UpdatedAt. It does
// not recompute derived stats — callers pass recomputed values alongside a
// changed card list.
func (s *Store) UpdateDeck(id string, in models.DeckUpdate) (models.Deck, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deck, ok := s.decks.get(id)
	if !ok {
		return models.Deck{}, false
	}
	if in.Name != nil {
		deck.Name = *in.Name
	}
	if in.CardIDs != nil {
		deck.CardIDs = in.CardIDs
	}
	if in.AvgMana != nil {
		deck.AvgMana = *in.AvgMana
	}
	if in.TotalPower != nil {
		deck.TotalPower = *in.TotalPower
	}
	if in.Synergy != nil {
		deck.Synergy = *in.Synergy
	}
	deck.UpdatedAt = time.Now().UTC()
	s.decks.replace(id, deck)
	return deck, true
}

// DeleteDeck removes a deck, reporting whether anything was removed. Safe to
// call with unknown or already-deleted ids.
func (s *Store) DeleteDeck(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decks.delete(id)
}
