package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nft-card-system/models"
	"nft-card-system/storage"
)

func seedEntry(store *storage.Store, userID string, powerScore, wins int) {
	store.UpsertLeaderboardEntry(userID, models.PeriodWeekly, models.LeaderboardUpdate{
		PowerScore: &powerScore,
		Wins:       &wins,
	})
}

func TestRecomputeRanks(t *testing.T) {
	store := storage.New()
	seedEntry(store, "mid", 5000, 10)
	seedEntry(store, "top", 9000, 3)
	seedEntry(store, "low", 1000, 50)

	RecomputeRanks(store, models.PeriodWeekly)

	entries := store.Leaderboard(models.PeriodWeekly)
	require.Len(t, entries, 3)
	assert.Equal(t, "top", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "mid", entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "low", entries[2].UserID)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestRecomputeRanks_WinsBreakTies(t *testing.T) {
	store := storage.New()
	seedEntry(store, "fewer", 5000, 2)
	seedEntry(store, "more", 5000, 9)

	RecomputeRanks(store, models.PeriodWeekly)

	entries := store.Leaderboard(models.PeriodWeekly)
	require.Len(t, entries, 2)
	assert.Equal(t, "more", entries[0].UserID)
	assert.Equal(t, "fewer", entries[1].UserID)
}

func TestRecomputeRanks_OtherPeriodsUntouched(t *testing.T) {
	store := storage.New()
	score := 100
	store.UpsertLeaderboardEntry("u1", models.PeriodMonthly, models.LeaderboardUpdate{PowerScore: &score})
	seedEntry(store, "u2", 200, 0)

	RecomputeRanks(store, models.PeriodWeekly)

	monthly := store.Leaderboard(models.PeriodMonthly)
	require.Len(t, monthly, 1)
	// Still at the newcomer rank — only the weekly board was swept.
	assert.Equal(t, 999, monthly[0].Rank)
}
