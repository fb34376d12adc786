package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventTournament EventType = "Tournament"
	EventChallenge  EventType = "Challenge"
	EventGathering  EventType = "Gathering"
)

type EventStatus string

const (
	EventActive   EventStatus = "Active"
	EventUpcoming EventStatus = "Upcoming"
	EventEnded    EventStatus = "Ended"
)

// Event is a timed competition or gathering players can join. The
// participant counter is bounded by MaxParticipants when set.
type Event struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	ImageURL            string          `json:"imageUrl"`
	Type                EventType       `json:"type"`
	Status              EventStatus     `json:"status"`
	PrizePool           decimal.Decimal `json:"prizePool"`
	MaxParticipants     *int            `json:"maxParticipants"`
	CurrentParticipants int             `json:"currentParticipants"`
	StartDate           *time.Time      `json:"startDate"`
	EndDate             *time.Time      `json:"endDate"`
	Requirements        map[string]any  `json:"requirements"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// CreateEvent is the POST /events payload.
type CreateEvent struct {
	Name            string         `json:"name" validate:"required"`
	Description     string         `json:"description"`
	ImageURL        string         `json:"imageUrl"`
	Type            string         `json:"type" validate:"required,oneof=Tournament Challenge Gathering"`
	Status          string         `json:"status" validate:"required,oneof=Active Upcoming Ended"`
	PrizePool       string         `json:"prizePool"`
	MaxParticipants *int           `json:"maxParticipants" validate:"omitempty,gte=0"`
	StartDate       *time.Time     `json:"startDate"`
	EndDate         *time.Time     `json:"endDate"`
	Requirements    map[string]any `json:"requirements"`
}

// EventUpdate carries a partial update; nil fields are left untouched.
type EventUpdate struct {
	Status              *EventStatus `json:"status"`
	CurrentParticipants *int         `json:"currentParticipants"`
}
