package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"nft-card-system/models"
)

// ErrEventFull is returned by JoinEvent when the participant cap is reached.
var ErrEventFull = errors.New("event is full")

// ErrEventNotFound is returned by JoinEvent for unknown event ids.
var ErrEventNotFound = errors.New("event not found")

// GetEvent looks up an event by id.
func (s *Store) GetEvent(id string) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events.get(id)
}

// ListEvents returns events in creation order. An empty status returns all,
// otherwise only exact status matches.
func (s *Store) ListEvents(status models.EventStatus) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Event{}
	for _, id := range s.events.order {
		e := s.events.items[id]
		if status == "" || e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

// CreateEvent inserts a new event with an empty participant roster.
func (s *Store) CreateEvent(in models.CreateEvent) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	prize := decimal.Zero
	if in.PrizePool != "" {
		if p, err := decimal.NewFromString(in.PrizePool); err == nil {
			prize = p
		}
	}
	event := models.Event{
		ID:                  uuid.NewString(),
		Name:                in.Name,
		Description:         in.Description,
		ImageURL:            in.ImageURL,
		Type:                models.EventType(in.Type),
		Status:              models.EventStatus(in.Status),
		PrizePool:           prize,
		MaxParticipants:     in.MaxParticipants,
		CurrentParticipants: 0,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		Requirements:        in.Requirements,
		CreatedAt:           time.Now().UTC(),
	}
	if event.Requirements == nil {
		event.Requirements = map[string]any{}
	}
	s.events.insert(event.ID, event)
	return event
}

// UpdateEvent shallow-merges the non-nil fields onto the stored event.
func (s *Store) UpdateEvent(id string, in models.EventUpdate) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events.get(id)
	if !ok {
		return models.Event{}, false
	}
	if in.Status != nil {
		event.Status = *in.Status
	}
	if in.CurrentParticipants != nil {
		event.CurrentParticipants = *in.CurrentParticipants
	}
	s.events.replace(id, event)
	return event, true
}

// JoinEvent increments the participant counter by one. The check and the
// increment run under the store lock so concurrent joins cannot overshoot
// the cap. The counter is left untouched on failure.
func (s *Store) JoinEvent(id string) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events.get(id)
	if !ok {
		return models.Event{}, ErrEventNotFound
	}
	if event.MaxParticipants != nil && event.CurrentParticipants >= *event.MaxParticipants {
		return models.Event{}, ErrEventFull
	}
	event.CurrentParticipants++
	s.events.replace(id, event)
	return event, nil
}
