package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"sahaaya.backend/internal/domain/entities"
)

type eventStoreStub struct {
	events  []*entities.Event
	listErr error
	updates map[uuid.UUID]entities.EventStatus
}

func (s *eventStoreStub) ListNotCancelled(_ context.Context) ([]*entities.Event, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.events, nil
}

func (s *eventStoreStub) UpdateStatus(_ context.Context, id uuid.UUID, status entities.EventStatus) error {
	if s.updates == nil {
		s.updates = map[uuid.UUID]entities.EventStatus{}
	}
	s.updates[id] = status
	return nil
}

func TestRefresh_RollsStatusesForward(t *testing.T) {
	now := time.Now()
	startedID := uuid.New()
	finishedID := uuid.New()
	futureID := uuid.New()

	store := &eventStoreStub{events: []*entities.Event{
		{ID: startedID, Date: now.Add(-time.Hour), EndDate: now.Add(time.Hour), Status: entities.EventStatusUpcoming},
		{ID: finishedID, Date: now.Add(-3 * time.Hour), EndDate: now.Add(-time.Hour), Status: entities.EventStatusOngoing},
		{ID: futureID, Date: now.Add(time.Hour), EndDate: now.Add(2 * time.Hour), Status: entities.EventStatusUpcoming},
	}}
	job := NewEventStatusRefreshJob(store)

	job.refresh(context.Background())

	require.Len(t, store.updates, 2)
	require.Equal(t, entities.EventStatusOngoing, store.updates[startedID])
	require.Equal(t, entities.EventStatusCompleted, store.updates[finishedID])
	require.NotContains(t, store.updates, futureID)
}

func TestRefresh_ListError(t *testing.T) {
	store := &eventStoreStub{listErr: errors.New("db down")}
	job := NewEventStatusRefreshJob(store)

	job.refresh(context.Background())
	require.Empty(t, store.updates)
}

func TestEventStatusRefreshJob_StopsByContext(t *testing.T) {
	job := NewEventStatusRefreshJob(&eventStoreStub{})
	job.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on context cancel")
	}
}
