package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus represents a broadcast's state.
type NotificationStatus string

const (
	NotificationStatusDraft NotificationStatus = "DRAFT"
	NotificationStatusSent  NotificationStatus = "SENT"
)

// Notification is an admin-authored broadcast. Sending fans out emails to
// every user of the target role through the mail dispatcher.
type Notification struct {
	ID        uuid.UUID          `json:"id"`
	AuthorID  uuid.UUID          `json:"authorId"`
	Title     string             `json:"title"`
	Body      string             `json:"body"`
	Audience  UserRole           `json:"audience"`
	Status    NotificationStatus `json:"status"`
	SentAt    *time.Time         `json:"sentAt,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// CreateNotificationInput represents input for creating a broadcast.
type CreateNotificationInput struct {
	Title    string `json:"title" binding:"required,min=3,max=200"`
	Body     string `json:"body" binding:"required"`
	Audience string `json:"audience" binding:"required"`
}
