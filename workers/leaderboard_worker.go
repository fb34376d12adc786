package workers

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"nft-card-system/models"
	"nft-card-system/storage"
)

// RecomputeRanks reorders one period's leaderboard by descending power score
// (wins break ties) and assigns ranks 1..n. The whole sweep runs as one
// store operation, so no request sees a partially re-ranked board. Entries
// enter the board at the newcomer rank of 999 until the next sweep picks
// them up.
func RecomputeRanks(store *storage.Store, period models.Period) {
	store.RankEntries(period, func(a, b models.LeaderboardEntry) bool {
		if a.PowerScore != b.PowerScore {
			return a.PowerScore > b.PowerScore
		}
		return a.Wins > b.Wins
	})
}

// PollRanks re-ranks every period on a fixed interval until ctx is
// cancelled.
func PollRanks(ctx context.Context, store *storage.Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.WithField("interval", interval.String()).Info("leaderboard rank worker started")
	for {
		select {
		case <-ctx.Done():
			log.Info("leaderboard rank worker stopped")
			return
		case <-ticker.C:
			for _, period := range models.Periods {
				RecomputeRanks(store, period)
			}
		}
	}
}
