package storage

import (
	"time"

	"github.com/google/uuid"

	"nft-card-system/models"
)

// GetCard looks up a card by id.
func (s *Store) GetCard(id string) (models.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cards.get(id)
}

// AllCards returns every card in mint order.
func (s *Store) AllCards() []models.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cards.all()
}

// ListCardsByOwner returns the owner's cards in mint order.
func (s *Store) ListCardsByOwner(ownerID string) []models.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Card{}
	for _, id := range s.cards.order {
		c := s.cards.items[id]
		if c.OwnerID != nil && *c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out
}

// ResolveCards maps card ids to cards, silently dropping ids that no longer
// resolve. Order follows the input list.
func (s *Store) ResolveCards(ids []string) []models.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Card{}
	for _, id := range ids {
		if c, ok := s.cards.get(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// CreateCard mints a new card.
func (s *Store) CreateCard(in models.CreateCard) models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	card := models.Card{
		ID:          uuid.NewString(),
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Rarity:      models.Rarity(in.Rarity),
		Faction:     in.Faction,
		Power:       in.Power,
		Mana:        in.Mana,
		Abilities:   in.Abilities,
		Metadata:    in.Metadata,
		CreatedAt:   time.Now().UTC(),
	}
	if card.Abilities == nil {
		card.Abilities = []string{}
	}
	if card.Metadata == nil {
		card.Metadata = map[string]any{}
	}
	s.cards.insert(card.ID, card)
	return card
}

// UpdateCard shallow-merges the non-nil fields (ownership transfer, artwork
// replacement) onto the stored card.
func (s *Store) UpdateCard(id string, in models.CardUpdate) (models.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards.get(id)
	if !ok {
		return models.Card{}, false
	}
	if in.OwnerID != nil {
		card.OwnerID = in.OwnerID
	}
	if in.ImageURL != nil {
		card.ImageURL = *in.ImageURL
	}
	s.cards.replace(id, card)
	return card, true
}
