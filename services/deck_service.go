package services

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"nft-card-system/models"
	"nft-card-system/storage"
)

type DeckService struct {
	Store  *storage.Store
	Scorer SynergyScorer

	// recomputeMu keeps "resolve cards -> compute stats -> persist" a single
	// unit so concurrent deck saves cannot interleave a card mutation
	// between the lookup and the write.
	recomputeMu sync.Mutex
}

func NewDeckService(store *storage.Store, scorer SynergyScorer) *DeckService {
	return &DeckService{Store: store, Scorer: scorer}
}

// GetDecks handles GET /decks. ownerId is required.
func (s *DeckService) GetDecks(c *fiber.Ctx) error {
	ownerID := c.Query("ownerId")
	if ownerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Owner ID required"})
	}
	return c.JSON(s.Store.ListDecksByOwner(ownerID))
}

// CreateDeck handles POST /decks: inserts the deck, then resolves its card
// list and writes the derived stats in the same guarded section. Missing
// card ids are skipped.
func (s *DeckService) CreateDeck(c *fiber.Ctx) error {
	var in models.CreateDeck
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input", "errors": errs})
	}

	s.recomputeMu.Lock()
	defer s.recomputeMu.Unlock()

	deck := s.Store.CreateDeck(in)
	stats := ComputeDeckStats(s.Store.ResolveCards(deck.CardIDs), s.Scorer)
	deck, _ = s.Store.UpdateDeck(deck.ID, models.DeckUpdate{
		TotalPower: &stats.TotalPower,
		AvgMana:    &stats.AvgMana,
		Synergy:    &stats.Synergy,
	})
	return c.Status(fiber.StatusCreated).JSON(deck)
}

// UpdateDeck handles PUT /decks/:id. Derived stats are recomputed only when
// the request carries a card list; a name-only update leaves them untouched.
func (s *DeckService) UpdateDeck(c *fiber.Ctx) error {
	var in models.DeckUpdate
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}

	if in.CardIDs != nil {
		s.recomputeMu.Lock()
		defer s.recomputeMu.Unlock()
		stats := ComputeDeckStats(s.Store.ResolveCards(in.CardIDs), s.Scorer)
		in.TotalPower = &stats.TotalPower
		in.AvgMana = &stats.AvgMana
		in.Synergy = &stats.Synergy
	}

	deck, ok := s.Store.UpdateDeck(c.Params("id"), in)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Deck not found"})
	}
	return c.JSON(deck)
}

// DeleteDeck handles DELETE /decks/:id. 204 on removal, 404 otherwise —
// deleting an already-deleted deck is a no-op, never a fault.
func (s *DeckService) DeleteDeck(c *fiber.Ctx) error {
	if !s.Store.DeleteDeck(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Deck not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
