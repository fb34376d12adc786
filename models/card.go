package models

import "time"

// Rarity tiers, ordered Common < Rare < Epic < Legendary.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// Weight returns the collection-value weight of a rarity tier. Unknown
// rarities fall back to the Common weight.
func (r Rarity) Weight() int {
	switch r {
	case RarityRare:
		return 3
	case RarityEpic:
		return 7
	case RarityLegendary:
		return 15
	default:
		return 1
	}
}

// Card is a collectible item. Immutable once minted except for ownership
// transfer and artwork replacement.
type Card struct {
	ID          string         `json:"id"`
	OwnerID     *string        `json:"ownerId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ImageURL    string         `json:"imageUrl"`
	Rarity      Rarity         `json:"rarity"`
	Faction     string         `json:"faction"` // e.g. Shadow Realm, Moonlight Court, Ethereal Spirits
	Power       int            `json:"power"`
	Mana        int            `json:"mana"`
	Abilities   []string       `json:"abilities"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// CreateCard is the POST /nfts payload.
type CreateCard struct {
	OwnerID     *string        `json:"ownerId"`
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	ImageURL    string         `json:"imageUrl"`
	Rarity      string         `json:"rarity" validate:"required,oneof=Common Rare Epic Legendary"`
	Faction     string         `json:"faction"`
	Power       int            `json:"power" validate:"gte=0"`
	Mana        int            `json:"mana" validate:"gte=0"`
	Abilities   []string       `json:"abilities"`
	Metadata    map[string]any `json:"metadata"`
}

// CardUpdate carries a partial update; nil fields are left untouched.
type CardUpdate struct {
	OwnerID  *string `json:"ownerId"`
	ImageURL *string `json:"imageUrl"`
}
