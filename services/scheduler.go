package services

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	log "github.com/sirupsen/logrus"

	"nft-card-system/models"
)

// StartEventScheduler sweeps event statuses once a minute: Upcoming events
// whose start date has passed become Active, Active events whose end date
// has passed become Ended. Returns the scheduler so the caller can shut it
// down.
func (s *EventService) StartEventScheduler() (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() { s.SweepEventStatuses(time.Now().UTC()) }),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}

// SweepEventStatuses applies the date-driven status transitions as of now.
func (s *EventService) SweepEventStatuses(now time.Time) {
	for _, event := range s.Store.ListEvents("") {
		var next models.EventStatus
		switch {
		case event.Status == models.EventUpcoming && event.StartDate != nil && !event.StartDate.After(now):
			next = models.EventActive
		case event.Status == models.EventActive && event.EndDate != nil && !event.EndDate.After(now):
			next = models.EventEnded
		default:
			continue
		}
		if _, ok := s.Store.UpdateEvent(event.ID, models.EventUpdate{Status: &next}); ok {
			log.WithFields(log.Fields{"event": event.ID, "status": next}).Info("event status advanced")
		}
	}
}
