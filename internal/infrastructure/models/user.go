package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name              string    `gorm:"type:varchar(100);not null"`
	PasswordHash      string    `gorm:"type:varchar(255);not null"`
	Role              string    `gorm:"type:varchar(50);not null;default:'DONOR'"`
	Phone             string    `gorm:"type:varchar(20)"`
	Skills            string    `gorm:"type:text"` // JSON-encoded list
	Availability      string    `gorm:"type:varchar(50)"`
	IsEmailVerified   bool      `gorm:"default:false"`
	VerificationToken string    `gorm:"type:varchar(64)"`
	ResetToken        string    `gorm:"type:varchar(64)"`
	LastActiveAt      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}
