package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	log "github.com/sirupsen/logrus"

	"nft-card-system/models"
	"nft-card-system/storage"
	"nft-card-system/utils"
)

type CardService struct {
	Store *storage.Store
}

func NewCardService(store *storage.Store) *CardService {
	return &CardService{Store: store}
}

// GetCards handles GET /nfts. With ?ownerId only that owner's cards are
// returned, otherwise the full collection.
func (s *CardService) GetCards(c *fiber.Ctx) error {
	if ownerID := c.Query("ownerId"); ownerID != "" {
		return c.JSON(s.Store.ListCardsByOwner(ownerID))
	}
	return c.JSON(s.Store.AllCards())
}

// GetCard handles GET /nfts/:id.
func (s *CardService) GetCard(c *fiber.Ctx) error {
	card, ok := s.Store.GetCard(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "NFT not found"})
	}
	return c.JSON(card)
}

// CreateCard handles POST /nfts (minting).
func (s *CardService) CreateCard(c *fiber.Ctx) error {
	var in models.CreateCard
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}
	// Accept lowercased rarity from older clients before validation runs.
	in.Rarity = titleCase(strings.ToLower(in.Rarity))
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input", "errors": errs})
	}
	card := s.Store.CreateCard(in)
	return c.Status(fiber.StatusCreated).JSON(card)
}

// UploadArtwork handles POST /nfts/:id/artwork: stores the multipart image
// in the artwork bucket and rewrites the card's image URL to the public CDN
// URL. Only registered when the artwork store is configured.
func (s *CardService) UploadArtwork(c *fiber.Ctx) error {
	card, ok := s.Store.GetCard(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "NFT not found"})
	}

	file, err := c.FormFile("artwork")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "artwork file is required"})
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".png"
	}
	key := fmt.Sprintf("cards/%s-%s%s", slug.Make(card.Name), uuid.NewString()[:8], ext)

	url, err := utils.UploadArtwork(file, key)
	if err != nil {
		log.WithError(err).WithField("card", card.ID).Error("artwork upload failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}

	updated, _ := s.Store.UpdateCard(card.ID, models.CardUpdate{ImageURL: &url})
	return c.JSON(updated)
}
