package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
)

type eventStatusStore interface {
	ListNotCancelled(ctx context.Context) ([]*entities.Event, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EventStatus) error
}

// EventStatusRefreshJob rolls stored event statuses forward as events
// start and finish. Status is a function of the clock and the schedule;
// storing it just keeps list queries cheap.
type EventStatusRefreshJob struct {
	events   eventStatusStore
	interval time.Duration
	stop     chan struct{}
}

func NewEventStatusRefreshJob(events eventStatusStore) *EventStatusRefreshJob {
	return &EventStatusRefreshJob{
		events:   events,
		interval: time.Minute,
		stop:     make(chan struct{}),
	}
}

func (j *EventStatusRefreshJob) Start(ctx context.Context) {
	log.Println("🕐 Starting event status refresh job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Event status refresh job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Event status refresh job stopped")
			return
		case <-ticker.C:
			j.refresh(ctx)
		}
	}
}

func (j *EventStatusRefreshJob) Stop() {
	close(j.stop)
}

func (j *EventStatusRefreshJob) refresh(ctx context.Context) {
	events, err := j.events.ListNotCancelled(ctx)
	if err != nil {
		log.Printf("❌ Error listing events for status refresh: %v", err)
		return
	}

	now := time.Now()
	var updated int
	for _, e := range events {
		derived := entities.DeriveEventStatus(now, e)
		if derived == e.Status {
			continue
		}
		if err := j.events.UpdateStatus(ctx, e.ID, derived); err != nil {
			log.Printf("❌ Error updating event %s status: %v", e.ID, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Printf("✅ Refreshed status of %d events", updated)
	}
}
