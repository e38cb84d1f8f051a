package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/domain/repositories"
	"sahaaya.backend/internal/infrastructure/email"
	"sahaaya.backend/pkg/logger"
)

// EventUsecase handles event scheduling and registration
type EventUsecase struct {
	eventRepo repositories.EventRepository
	userRepo  repositories.UserRepository
	mail      MailDispatcher
}

// NewEventUsecase creates a new event usecase
func NewEventUsecase(eventRepo repositories.EventRepository, userRepo repositories.UserRepository, mail MailDispatcher) *EventUsecase {
	return &EventUsecase{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		mail:      mail,
	}
}

// Create creates an event; its status is derived from the dates.
func (u *EventUsecase) Create(ctx context.Context, input *entities.CreateEventInput) (*entities.Event, error) {
	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		return nil, domainerrors.BadRequest("date must be RFC3339")
	}
	endDate, err := time.Parse(time.RFC3339, input.EndDate)
	if err != nil {
		return nil, domainerrors.BadRequest("endDate must be RFC3339")
	}
	if !endDate.After(date) {
		return nil, domainerrors.BadRequest("endDate must be after date")
	}

	event := &entities.Event{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Date:         date,
		EndDate:      endDate,
		MaxAttendees: input.MaxAttendees,
	}
	event.Status = entities.DeriveEventStatus(time.Now(), event)

	if err := u.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID returns one event with a freshly derived status
func (u *EventUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Status = entities.DeriveEventStatus(time.Now(), event)
	return event, nil
}

// List returns events ordered by date
func (u *EventUsecase) List(ctx context.Context, limit, offset int) ([]*entities.Event, int, error) {
	events, total, err := u.eventRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	now := time.Now()
	for _, event := range events {
		event.Status = entities.DeriveEventStatus(now, event)
	}
	return events, total, nil
}

// Update applies mutable event fields; setting Cancelled freezes the
// status machine permanently.
func (u *EventUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateEventInput) (*entities.Event, error) {
	event, err := u.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		event.Title = input.Title
	}
	if input.Description != "" {
		event.Description = input.Description
	}
	if input.Location != "" {
		event.Location = input.Location
	}
	if input.MaxAttendees != nil {
		if *input.MaxAttendees != 0 && *input.MaxAttendees < event.CurrentAttendees {
			return nil, domainerrors.Conflict("capacity cannot drop below current attendance", domainerrors.ErrInvalidInput)
		}
		event.MaxAttendees = *input.MaxAttendees
	}
	if input.Cancelled != nil && *input.Cancelled {
		event.Status = entities.EventStatusCancelled
	} else {
		event.Status = entities.DeriveEventStatus(time.Now(), event)
	}

	if err := u.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Register registers a user for an event. Registration is rejected for
// cancelled or finished events; capacity is enforced atomically by the
// repository. A confirmation email goes out fire-and-forget.
func (u *EventUsecase) Register(ctx context.Context, eventID, userID uuid.UUID) error {
	event, err := u.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	switch entities.DeriveEventStatus(time.Now(), event) {
	case entities.EventStatusCancelled:
		return domainerrors.Conflict("event is cancelled", domainerrors.ErrInvalidInput)
	case entities.EventStatusCompleted:
		return domainerrors.Conflict("event has already ended", domainerrors.ErrInvalidInput)
	}

	if err := u.eventRepo.RegisterAttendee(ctx, eventID, userID); err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrEventFull):
			return domainerrors.Conflict("event is full", err)
		case errors.Is(err, domainerrors.ErrAlreadyRegistered):
			return domainerrors.Conflict("already registered for this event", err)
		}
		return err
	}

	u.sendConfirmation(ctx, event, userID)
	return nil
}

// GetAttendees returns the roster for an event
func (u *EventUsecase) GetAttendees(ctx context.Context, eventID uuid.UUID) ([]*entities.Attendee, error) {
	if _, err := u.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return u.eventRepo.GetAttendees(ctx, eventID)
}

func (u *EventUsecase) sendConfirmation(ctx context.Context, event *entities.Event, userID uuid.UUID) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "event confirmation email skipped, user lookup failed",
			zap.String("event_id", event.ID.String()), zap.Error(err))
		return
	}
	u.mail.Dispatch(ctx, email.EventConfirmation(user.Email, user.Name, event))
}
