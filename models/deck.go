package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deck is a named, ordered selection of a user's cards. AvgMana, TotalPower
// and Synergy are derived fields: they are recomputed whenever the card list
// changes and reflect the list as of the last mutation. Card ids are
// best-effort references — a missing card is skipped during recompute, not
// an error.
type Deck struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"ownerId"`
	Name       string          `json:"name"`
	CardIDs    []string        `json:"cardIds"`
	AvgMana    decimal.Decimal `json:"avgMana"`
	TotalPower int             `json:"totalPower"`
	Synergy    decimal.Decimal `json:"synergy"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// CreateDeck is the POST /decks payload.
type CreateDeck struct {
	OwnerID string   `json:"ownerId" validate:"required"`
	Name    string   `json:"name" validate:"required"`
	CardIDs []string `json:"cardIds"`
}

// DeckUpdate carries a partial update. Derived stats are only written by the
// deck service after a recompute; the store itself merges blindly.
type DeckUpdate struct {
	Name       *string          `json:"name"`
	CardIDs    []string         `json:"cardIds"`
	AvgMana    *decimal.Decimal `json:"-"`
	TotalPower *int             `json:"-"`
	Synergy    *decimal.Decimal `json:"-"`
}
