package repositories

import (
	"context"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
)

// EventRepository defines event data operations
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Event, int, error)
	Update(ctx context.Context, event *entities.Event) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EventStatus) error
	// RegisterAttendee appends a roster entry and increments the counter
	// behind a conditional update so a full event never overbooks.
	// Returns ErrEventFull or ErrAlreadyRegistered on rejection.
	RegisterAttendee(ctx context.Context, eventID, userID uuid.UUID) error
	GetAttendees(ctx context.Context, eventID uuid.UUID) ([]*entities.Attendee, error)
	ListNotCancelled(ctx context.Context) ([]*entities.Event, error)
	Count(ctx context.Context) (int64, error)
}
