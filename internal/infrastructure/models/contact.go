package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Contact struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Email       string     `gorm:"type:varchar(255);not null"`
	Subject     string     `gorm:"type:varchar(200);not null"`
	Message     string     `gorm:"type:text;not null"`
	Status      string     `gorm:"type:varchar(50);not null;index"`
	Priority    string     `gorm:"type:varchar(50);not null;index"`
	Response    string     `gorm:"type:text"`
	RespondedBy *uuid.UUID `gorm:"type:uuid"`
	RespondedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

type BlogPost struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Slug      string    `gorm:"type:varchar(200);uniqueIndex;not null"`
	Content   string    `gorm:"type:text;not null"`
	Tags      string    `gorm:"type:text"` // JSON-encoded list
	Published bool      `gorm:"default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
