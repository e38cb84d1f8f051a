package entities

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus represents event status
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "UPCOMING"
	EventStatusOngoing   EventStatus = "ONGOING"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// AttendeeStatus represents an attendee's registration state.
type AttendeeStatus string

const (
	AttendeeStatusRegistered AttendeeStatus = "REGISTERED"
	AttendeeStatusAttended   AttendeeStatus = "ATTENDED"
	AttendeeStatusCancelled  AttendeeStatus = "CANCELLED"
)

// Event represents a scheduled activity with an attendee roster.
// Status is a pure function of (now, Date, EndDate) unless manually
// cancelled; it is derived explicitly, never in persistence hooks.
type Event struct {
	ID               uuid.UUID   `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Location         string      `json:"location"`
	Date             time.Time   `json:"date"`
	EndDate          time.Time   `json:"endDate"`
	MaxAttendees     int         `json:"maxAttendees"` // 0 = unlimited
	CurrentAttendees int         `json:"currentAttendees"`
	Status           EventStatus `json:"status"`
	Attendees        []Attendee  `json:"attendees,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
	DeletedAt        *time.Time  `json:"-"`
}

// Attendee is one roster entry. (EventID, UserID) is unique.
type Attendee struct {
	ID           uuid.UUID      `json:"id"`
	EventID      uuid.UUID      `json:"eventId"`
	UserID       uuid.UUID      `json:"userId"`
	Status       AttendeeStatus `json:"status"`
	RegisteredAt time.Time      `json:"registeredAt"`
}

// CreateEventInput represents input for creating an event
type CreateEventInput struct {
	Title        string `json:"title" binding:"required,min=3,max=200"`
	Description  string `json:"description"`
	Location     string `json:"location" binding:"required"`
	Date         string `json:"date" binding:"required"`
	EndDate      string `json:"endDate" binding:"required"`
	MaxAttendees int    `json:"maxAttendees" binding:"gte=0"`
}

// UpdateEventInput represents mutable event fields.
type UpdateEventInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	MaxAttendees *int   `json:"maxAttendees"`
	Cancelled    *bool  `json:"cancelled"`
}
