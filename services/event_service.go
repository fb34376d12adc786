package services

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"nft-card-system/models"
	"nft-card-system/storage"
)

type EventService struct {
	Store *storage.Store
}

func NewEventService(store *storage.Store) *EventService {
	return &EventService{Store: store}
}

// GetEvents handles GET /events. With ?status the list is filtered by an
// exact match on the normalized status; without it every event is returned.
func (s *EventService) GetEvents(c *fiber.Ctx) error {
	status := models.EventStatus("")
	if raw := c.Query("status"); raw != "" {
		status = NormalizeStatus(raw)
	}
	return c.JSON(s.Store.ListEvents(status))
}

// CreateEvent handles POST /events.
func (s *EventService) CreateEvent(c *fiber.Ctx) error {
	var in models.CreateEvent
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}
	in.Type = titleCase(strings.ToLower(in.Type))
	in.Status = string(NormalizeStatus(in.Status))
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input", "errors": errs})
	}
	if in.PrizePool != "" {
		if _, err := decimal.NewFromString(in.PrizePool); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid input",
				"errors":  []FieldError{{Field: "prizePool", Message: "must be a decimal string"}},
			})
		}
	}
	event := s.Store.CreateEvent(in)
	return c.Status(fiber.StatusCreated).JSON(event)
}

// JoinEvent handles POST /events/:id/join. A full event rejects the join
// and leaves the participant counter untouched.
func (s *EventService) JoinEvent(c *fiber.Ctx) error {
	event, err := s.Store.JoinEvent(c.Params("id"))
	switch {
	case errors.Is(err, storage.ErrEventNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Event not found"})
	case errors.Is(err, storage.ErrEventFull):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Event is full"})
	case err != nil:
		log.WithError(err).Error("event join failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Successfully joined event", "event": event})
}
