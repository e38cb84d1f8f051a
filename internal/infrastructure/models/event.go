package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title            string    `gorm:"type:varchar(200);not null"`
	Description      string    `gorm:"type:text"`
	Location         string    `gorm:"type:varchar(255);not null"`
	Date             time.Time `gorm:"not null;index"`
	EndDate          time.Time `gorm:"not null"`
	MaxAttendees     int       `gorm:"not null;default:0"` // 0 = unlimited
	CurrentAttendees int       `gorm:"not null;default:0"`
	Status           string    `gorm:"type:varchar(50);not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

type Attendee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_user"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_event_user"`
	Status       string    `gorm:"type:varchar(50);not null"`
	RegisteredAt time.Time

	Event Event `gorm:"foreignKey:EventID"`
}
