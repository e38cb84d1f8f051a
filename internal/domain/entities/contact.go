package entities

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus represents inquiry handling state.
type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "NEW"
	ContactStatusInProgress ContactStatus = "IN_PROGRESS"
	ContactStatusResolved   ContactStatus = "RESOLVED"
	ContactStatusClosed     ContactStatus = "CLOSED"
)

// ContactPriority represents inquiry priority.
type ContactPriority string

const (
	ContactPriorityLow    ContactPriority = "LOW"
	ContactPriorityMedium ContactPriority = "MEDIUM"
	ContactPriorityHigh   ContactPriority = "HIGH"
	ContactPriorityUrgent ContactPriority = "URGENT"
)

// Contact is a public inquiry record.
type Contact struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Subject     string          `json:"subject"`
	Message     string          `json:"message"`
	Status      ContactStatus   `json:"status"`
	Priority    ContactPriority `json:"priority"`
	Response    string          `json:"response,omitempty"`
	RespondedBy *uuid.UUID      `json:"respondedBy,omitempty"`
	RespondedAt *time.Time      `json:"respondedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   *time.Time      `json:"-"`
}

// CreateContactInput represents a public inquiry submission.
type CreateContactInput struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,min=3,max=200"`
	Message string `json:"message" binding:"required,min=10"`
}

// RespondInput stores an admin response to an inquiry.
type RespondInput struct {
	Response string `json:"response" binding:"required,min=2"`
}
