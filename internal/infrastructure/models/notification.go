package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Body      string    `gorm:"type:text;not null"`
	Audience  string    `gorm:"type:varchar(50);not null"`
	Status    string    `gorm:"type:varchar(50);not null;index"`
	SentAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type FileAsset struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	URL        string    `gorm:"type:varchar(500);not null"`
	PublicID   string    `gorm:"type:varchar(255);not null"`
	Bytes      int64     `gorm:"not null;default:0"`
	Format     string    `gorm:"type:varchar(20)"`
	Folder     string    `gorm:"type:varchar(100)"`
	UploadedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// Setting is a single-row table holding the settings document as JSON.
type Setting struct {
	ID        int    `gorm:"primaryKey"`
	Document  string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
