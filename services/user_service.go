package services

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"nft-card-system/models"
	"nft-card-system/storage"
)

type UserService struct {
	Store *storage.Store

	// ConnectDelay simulates wallet handshake latency on /wallet/connect.
	// Zero in tests.
	ConnectDelay time.Duration
}

func NewUserService(store *storage.Store) *UserService {
	return &UserService{Store: store}
}

// GetUser handles GET /users/:id.
func (s *UserService) GetUser(c *fiber.Ctx) error {
	user, ok := s.Store.GetUser(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}
	return c.JSON(user)
}

// CreateUser handles POST /users.
func (s *UserService) CreateUser(c *fiber.Ctx) error {
	var in models.CreateUser
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input"})
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid input", "errors": errs})
	}
	user := s.Store.CreateUser(in)
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ConnectWallet handles POST /wallet/connect. Upserts by username: when no
// username is supplied one is derived from the wallet address suffix, so two
// addresses sharing a derived username collapse onto one account. That
// matches the product behavior today; identity is keyed by username, not by
// address.
func (s *UserService) ConnectWallet(c *fiber.Ctx) error {
	var in models.WalletConnectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to connect wallet"})
	}
	if errs := validateStruct(in); errs != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to connect wallet"})
	}

	if s.ConnectDelay > 0 {
		time.Sleep(s.ConnectDelay)
	}

	username := in.Username
	if username == "" {
		username = defaultUsername(in.WalletAddress)
	}

	if existing, ok := s.Store.GetUserByUsername(username); ok {
		updated, _ := s.Store.UpdateUser(existing.ID, models.UserUpdate{WalletAddress: &in.WalletAddress})
		log.WithFields(log.Fields{"user": updated.ID, "username": username}).Info("wallet reconnected")
		return c.JSON(updated)
	}

	user := s.Store.CreateUser(models.CreateUser{
		Username:      username,
		WalletAddress: &in.WalletAddress,
	})
	log.WithFields(log.Fields{"user": user.ID, "username": username}).Info("wallet connected, account created")
	return c.Status(fiber.StatusCreated).JSON(user)
}

// defaultUsername derives an account name from the last six characters of a
// wallet address.
func defaultUsername(walletAddress string) string {
	suffix := walletAddress
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return fmt.Sprintf("user_%s", suffix)
}
