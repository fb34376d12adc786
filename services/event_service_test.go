package services_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nft-card-system/models"
	"nft-card-system/services"
	"nft-card-system/storage"
)

func intp(i int) *int { return &i }

func TestGetEvents_StatusFilterNormalized(t *testing.T) {
	app, store := newTestApp(t)
	store.CreateEvent(models.CreateEvent{Name: "Live", Type: "Tournament", Status: "Active"})
	store.CreateEvent(models.CreateEvent{Name: "Soon", Type: "Challenge", Status: "Upcoming"})

	// Lowercased query values still match exactly after normalization.
	resp := doJSON(t, app, http.MethodGet, "/events?status=active", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var events []models.Event
	decodeJSON(t, resp, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Live", events[0].Name)

	resp = doJSON(t, app, http.MethodGet, "/events", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &events)
	assert.Len(t, events, 2)
}

func TestCreateEvent_Validation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/events", map[string]any{
		"name": "Broken", "type": "Raid", "status": "Active",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/events", map[string]any{
		"name": "Midnight Brawl", "type": "Tournament", "status": "Upcoming", "prizePool": "250",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var event models.Event
	decodeJSON(t, resp, &event)
	assert.Equal(t, models.EventUpcoming, event.Status)
	assert.Equal(t, 0, event.CurrentParticipants)
}

func TestCreateEvent_BadPrizePool(t *testing.T) {
	app, store := newTestApp(t)

	// A prize pool that does not parse as a decimal is rejected up front
	// instead of being stored as zero.
	resp := doJSON(t, app, http.MethodPost, "/events", map[string]any{
		"name": "Crooked Cup", "type": "Tournament", "status": "Upcoming", "prizePool": "lots",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Errors []services.FieldError `json:"errors"`
	}
	decodeJSON(t, resp, &body)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "prizePool", body.Errors[0].Field)
	assert.Empty(t, store.ListEvents(""))
}

func TestJoinEvent_HTTPFlow(t *testing.T) {
	app, store := newTestApp(t)
	event := store.CreateEvent(models.CreateEvent{
		Name: "Duel", Type: "Tournament", Status: "Active", MaxParticipants: intp(2),
	})
	_, err := store.JoinEvent(event.ID)
	require.NoError(t, err)

	// One seat left.
	resp := doJSON(t, app, http.MethodPost, "/events/"+event.ID+"/join", map[string]any{"userId": "u1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Message string       `json:"message"`
		Event   models.Event `json:"event"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Successfully joined event", body.Message)
	assert.Equal(t, 2, body.Event.CurrentParticipants)

	// Full now; the counter must not move.
	resp = doJSON(t, app, http.MethodPost, "/events/"+event.ID+"/join", map[string]any{"userId": "u2"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	got, _ := store.GetEvent(event.ID)
	assert.Equal(t, 2, got.CurrentParticipants)
}

func TestJoinEvent_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/events/no-such-event/join", map[string]any{"userId": "u1"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSweepEventStatuses(t *testing.T) {
	store := storage.New()
	svc := services.NewEventService(store)

	now := time.Now().UTC()
	past := now.Add(-1 * time.Hour)
	future := now.Add(1 * time.Hour)

	started := store.CreateEvent(models.CreateEvent{
		Name: "Started", Type: "Tournament", Status: "Upcoming", StartDate: &past,
	})
	finished := store.CreateEvent(models.CreateEvent{
		Name: "Finished", Type: "Challenge", Status: "Active", StartDate: &past, EndDate: &past,
	})
	pending := store.CreateEvent(models.CreateEvent{
		Name: "Pending", Type: "Gathering", Status: "Upcoming", StartDate: &future,
	})

	svc.SweepEventStatuses(now)

	got, _ := store.GetEvent(started.ID)
	assert.Equal(t, models.EventActive, got.Status)
	got, _ = store.GetEvent(finished.ID)
	assert.Equal(t, models.EventEnded, got.Status)
	got, _ = store.GetEvent(pending.ID)
	assert.Equal(t, models.EventUpcoming, got.Status)
}
