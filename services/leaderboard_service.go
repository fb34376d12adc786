package services

import (
	"github.com/gofiber/fiber/v2"

	"nft-card-system/models"
	"nft-card-system/storage"
)

type LeaderboardService struct {
	Store *storage.Store
}

func NewLeaderboardService(store *storage.Store) *LeaderboardService {
	return &LeaderboardService{Store: store}
}

// GetLeaderboard handles GET /leaderboard?period=..., defaulting to Weekly.
// Each row is enriched with its user summary; rows whose user no longer
// resolves carry a null user rather than being dropped.
func (s *LeaderboardService) GetLeaderboard(c *fiber.Ctx) error {
	period := NormalizePeriod(c.Query("period"))
	entries := s.Store.Leaderboard(period)

	enriched := make([]models.RankedEntry, 0, len(entries))
	for _, entry := range entries {
		row := models.RankedEntry{LeaderboardEntry: entry}
		if user, ok := s.Store.GetUser(entry.UserID); ok {
			row.User = &models.RankedUser{ID: user.ID, Username: user.Username}
		}
		enriched = append(enriched, row)
	}
	return c.JSON(enriched)
}

// GetAnalytics handles GET /analytics/:userId.
func (s *LeaderboardService) GetAnalytics(c *fiber.Ctx) error {
	userID := c.Params("userId")
	user, ok := s.Store.GetUser(userID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}
	cards := s.Store.ListCardsByOwner(userID)
	txs := s.Store.ListTransactionsByUser(userID)
	return c.JSON(ComputeAnalytics(user, cards, txs))
}
