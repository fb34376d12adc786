package storage

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"nft-card-system/models"
)

// Leaderboard returns the entries for one period sorted by ascending rank.
func (s *Store) Leaderboard(period models.Period) []models.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.LeaderboardEntry{}
	for _, id := range s.leaderboard.order {
		e := s.leaderboard.items[id]
		if e.Period == period {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}

// UpsertLeaderboardEntry updates the single entry for (userID, period),
// creating it with newcomer defaults when absent. At most one entry ever
// exists per pair.
func (s *Store) UpsertLeaderboardEntry(userID string, period models.Period, in models.LeaderboardUpdate) models.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.leaderboard.order {
		entry := s.leaderboard.items[id]
		if entry.UserID != userID || entry.Period != period {
			continue
		}
		applyLeaderboardUpdate(&entry, in)
		entry.UpdatedAt = time.Now().UTC()
		s.leaderboard.replace(id, entry)
		return entry
	}

	entry := models.LeaderboardEntry{
		ID:         uuid.NewString(),
		UserID:     userID,
		Period:     period,
		Rank:       999,
		PowerScore: 0,
		Wins:       0,
		Title:      "Newcomer",
		UpdatedAt:  time.Now().UTC(),
	}
	applyLeaderboardUpdate(&entry, in)
	s.leaderboard.insert(entry.ID, entry)
	return entry
}

// RankEntries reorders one period's entries with less and assigns ranks 1..n
// under a single lock, so readers never observe a half-finished sweep.
func (s *Store) RankEntries(period models.Period, less func(a, b models.LeaderboardEntry) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []models.LeaderboardEntry{}
	for _, id := range s.leaderboard.order {
		e := s.leaderboard.items[id]
		if e.Period == period {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
	for i, entry := range entries {
		rank := i + 1
		if entry.Rank == rank {
			continue
		}
		entry.Rank = rank
		entry.UpdatedAt = time.Now().UTC()
		s.leaderboard.replace(entry.ID, entry)
	}
}

func applyLeaderboardUpdate(entry *models.LeaderboardEntry, in models.LeaderboardUpdate) {
	if in.Rank != nil {
		entry.Rank = *in.Rank
	}
	if in.PowerScore != nil {
		entry.PowerScore = *in.PowerScore
	}
	if in.Wins != nil {
		entry.Wins = *in.Wins
	}
	if in.Title != nil {
		entry.Title = *in.Title
	}
}
