package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/infrastructure/models"
	"sahaaya.backend/pkg/utils"
)

// EventRepository implements event data operations
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	if event.ID == uuid.Nil {
		event.ID = utils.GenerateUUIDv7()
	}
	m := &models.Event{
		ID:               event.ID,
		Title:            event.Title,
		Description:      event.Description,
		Location:         event.Location,
		Date:             event.Date,
		EndDate:          event.EndDate,
		MaxAttendees:     event.MaxAttendees,
		CurrentAttendees: event.CurrentAttendees,
		Status:           string(event.Status),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	event.CreatedAt = m.CreatedAt
	event.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns events with pagination, soonest first
func (r *EventRepository) List(ctx context.Context, limit, offset int) ([]*entities.Event, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Event
	if err := db.WithContext(ctx).
		Order("date ASC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	events := make([]*entities.Event, 0, len(ms))
	for i := range ms {
		events = append(events, r.toEntity(&ms[i]))
	}
	return events, int(total), nil
}

// Update persists mutable event fields
func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"title":         event.Title,
			"description":   event.Description,
			"location":      event.Location,
			"max_attendees": event.MaxAttendees,
			"status":        event.Status,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates an event's status
func (r *EventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EventStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Event{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// RegisterAttendee adds a roster entry inside a transaction. The counter
// increment is a conditional update guarded by max_attendees, so a full
// event rejects the registration at the database rather than racing a
// read-check-write. max_attendees = 0 means unlimited.
func (r *EventRepository) RegisterAttendee(ctx context.Context, eventID, userID uuid.UUID) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Attendee{}).
			Where("event_id = ? AND user_id = ?", eventID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return domainerrors.ErrAlreadyRegistered
		}

		result := tx.Model(&models.Event{}).
			Where("id = ? AND (max_attendees = 0 OR current_attendees < max_attendees)", eventID).
			Updates(map[string]interface{}{
				"current_attendees": gorm.Expr("current_attendees + 1"),
				"updated_at":        time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Either the event does not exist or it is at capacity.
			var count int64
			if err := tx.Model(&models.Event{}).Where("id = ?", eventID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domainerrors.ErrNotFound
			}
			return domainerrors.ErrEventFull
		}

		return tx.Create(&models.Attendee{
			ID:           utils.GenerateUUIDv7(),
			EventID:      eventID,
			UserID:       userID,
			Status:       string(entities.AttendeeStatusRegistered),
			RegisteredAt: time.Now(),
		}).Error
	})
}

// GetAttendees returns an event's roster
func (r *EventRepository) GetAttendees(ctx context.Context, eventID uuid.UUID) ([]*entities.Attendee, error) {
	var ms []models.Attendee
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("registered_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	attendees := make([]*entities.Attendee, 0, len(ms))
	for i := range ms {
		attendees = append(attendees, &entities.Attendee{
			ID:           ms[i].ID,
			EventID:      ms[i].EventID,
			UserID:       ms[i].UserID,
			Status:       entities.AttendeeStatus(ms[i].Status),
			RegisteredAt: ms[i].RegisteredAt,
		})
	}
	return attendees, nil
}

// ListNotCancelled returns every event whose status is still derived
// from its schedule; used by the status refresh job.
func (r *EventRepository) ListNotCancelled(ctx context.Context) ([]*entities.Event, error) {
	var ms []models.Event
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("status <> ?", entities.EventStatusCancelled).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	events := make([]*entities.Event, 0, len(ms))
	for i := range ms {
		events = append(events, r.toEntity(&ms[i]))
	}
	return events, nil
}

// Count returns the total number of events
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.Event{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *EventRepository) toEntity(m *models.Event) *entities.Event {
	return &entities.Event{
		ID:               m.ID,
		Title:            m.Title,
		Description:      m.Description,
		Location:         m.Location,
		Date:             m.Date,
		EndDate:          m.EndDate,
		MaxAttendees:     m.MaxAttendees,
		CurrentAttendees: m.CurrentAttendees,
		Status:           entities.EventStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
