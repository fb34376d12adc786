package models

import "time"

// Period partitions leaderboard entries by ranking scope.
type Period string

const (
	PeriodWeekly  Period = "Weekly"
	PeriodMonthly Period = "Monthly"
	PeriodAllTime Period = "AllTime"
)

// Periods lists every ranking scope, used by the rank worker sweep.
var Periods = []Period{PeriodWeekly, PeriodMonthly, PeriodAllTime}

// LeaderboardEntry ranks one user within one period. At most one entry
// exists per (user, period) pair — updates upsert.
type LeaderboardEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Rank       int       `json:"rank"`
	PowerScore int       `json:"powerScore"`
	Wins       int       `json:"wins"`
	Title      string    `json:"title"`
	Period     Period    `json:"period"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LeaderboardUpdate carries a partial upsert; nil fields keep existing (or
// default) values.
type LeaderboardUpdate struct {
	Rank       *int    `json:"rank"`
	PowerScore *int    `json:"powerScore"`
	Wins       *int    `json:"wins"`
	Title      *string `json:"title"`
}

// RankedUser is the embedded user summary on enriched leaderboard rows.
type RankedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// RankedEntry is a leaderboard row enriched with its user for display. User
// is null when the referenced account no longer resolves.
type RankedEntry struct {
	LeaderboardEntry
	User *RankedUser `json:"user"`
}
