package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nft-card-system/models"
)

func TestUpsertLeaderboardEntry_CreatesWithNewcomerDefaults(t *testing.T) {
	store := New()

	score := 1200
	entry := store.UpsertLeaderboardEntry("u1", models.PeriodWeekly, models.LeaderboardUpdate{PowerScore: &score})

	assert.Equal(t, 999, entry.Rank)
	assert.Equal(t, "Newcomer", entry.Title)
	assert.Equal(t, 1200, entry.PowerScore)
	assert.Equal(t, models.PeriodWeekly, entry.Period)
	require.Len(t, store.Leaderboard(models.PeriodWeekly), 1)
}

func TestUpsertLeaderboardEntry_UpdatesInPlace(t *testing.T) {
	store := New()

	score := 1200
	created := store.UpsertLeaderboardEntry("u1", models.PeriodWeekly, models.LeaderboardUpdate{PowerScore: &score})

	wins := 7
	updated := store.UpsertLeaderboardEntry("u1", models.PeriodWeekly, models.LeaderboardUpdate{Wins: &wins})

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 7, updated.Wins)
	assert.Equal(t, 1200, updated.PowerScore)

	// No duplicate row for the same (user, period) pair.
	require.Len(t, store.Leaderboard(models.PeriodWeekly), 1)
}

func TestUpsertLeaderboardEntry_PeriodsAreIndependent(t *testing.T) {
	store := New()

	score := 100
	store.UpsertLeaderboardEntry("u1", models.PeriodWeekly, models.LeaderboardUpdate{PowerScore: &score})
	store.UpsertLeaderboardEntry("u1", models.PeriodMonthly, models.LeaderboardUpdate{PowerScore: &score})

	assert.Len(t, store.Leaderboard(models.PeriodWeekly), 1)
	assert.Len(t, store.Leaderboard(models.PeriodMonthly), 1)
	assert.Empty(t, store.Leaderboard(models.PeriodAllTime))
}

func TestRankEntries_AssignsDenseRanksInOneSweep(t *testing.T) {
	store := New()

	for _, row := range []struct {
		user  string
		score int
	}{{"u1", 500}, {"u2", 900}, {"u3", 700}} {
		score := row.score
		store.UpsertLeaderboardEntry(row.user, models.PeriodWeekly, models.LeaderboardUpdate{PowerScore: &score})
	}
	other := 9999
	store.UpsertLeaderboardEntry("u1", models.PeriodMonthly, models.LeaderboardUpdate{PowerScore: &other})

	store.RankEntries(models.PeriodWeekly, func(a, b models.LeaderboardEntry) bool {
		return a.PowerScore > b.PowerScore
	})

	entries := store.Leaderboard(models.PeriodWeekly)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"u2", "u3", "u1"}, []string{entries[0].UserID, entries[1].UserID, entries[2].UserID})
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})

	// Other periods are untouched by the sweep.
	monthly := store.Leaderboard(models.PeriodMonthly)
	require.Len(t, monthly, 1)
	assert.Equal(t, 999, monthly[0].Rank)
}

func TestLeaderboard_SortedByRank(t *testing.T) {
	store := New()

	for _, row := range []struct {
		user string
		rank int
	}{{"u1", 30}, {"u2", 10}, {"u3", 20}} {
		rank := row.rank
		store.UpsertLeaderboardEntry(row.user, models.PeriodWeekly, models.LeaderboardUpdate{Rank: &rank})
	}

	entries := store.Leaderboard(models.PeriodWeekly)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{10, 20, 30}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
}
