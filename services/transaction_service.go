package services

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"nft-card-system/models"
	"nft-card-system/storage"
)

type TransactionService struct {
	Store *storage.Store
}

func NewTransactionService(store *storage.Store) *TransactionService {
	return &TransactionService{Store: store}
}

// GetTransactions handles GET /transactions. userId is required.
func (s *TransactionService) GetTransactions(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User ID required"})
	}
	return c.JSON(s.Store.ListTransactionsByUser(userID))
}

// CreateTransaction handles POST /transactions.
func (s *TransactionService) CreateTransaction(c *fiber.Ctx) error {
	var in models.CreateTransaction
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}
	in.Type = titleCase(strings.ToLower(in.Type))
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input", "errors": errs})
	}
	if _, err := decimal.NewFromString(in.Amount); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
			"errors":  []FieldError{{Field: "amount", Message: "must be a decimal string"}},
		})
	}
	tx := s.Store.CreateTransaction(in)
	return c.Status(fiber.StatusCreated).JSON(tx)
}
