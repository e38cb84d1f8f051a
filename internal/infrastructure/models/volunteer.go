package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Volunteer struct {
	ID                       uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID                   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ApplicationStatus        string    `gorm:"type:varchar(50);not null;index"`
	Skills                   string    `gorm:"type:text;not null"` // JSON-encoded list
	Availability             string    `gorm:"type:varchar(50);not null"`
	Motivation               string    `gorm:"type:text;not null"`
	EmergencyName            string    `gorm:"type:varchar(100);not null"`
	EmergencyRelationship    string    `gorm:"type:varchar(50);not null"`
	EmergencyPhone           string    `gorm:"type:varchar(20);not null"`
	TotalHours               float64   `gorm:"not null;default:0"`
	Rating                   float64   `gorm:"not null;default:0"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
	DeletedAt                gorm.DeletedAt `gorm:"index"`
}

type Assignment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	VolunteerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Role        string    `gorm:"type:varchar(100);not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     *time.Time
	Status      string  `gorm:"type:varchar(50);not null"`
	HoursLogged float64 `gorm:"not null;default:0"`
	CreatedAt   time.Time

	Volunteer Volunteer `gorm:"foreignKey:VolunteerID"`
}

type VolunteerReview struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	VolunteerID uuid.UUID `gorm:"type:uuid;not null;index"`
	ReviewerID  uuid.UUID `gorm:"type:uuid;not null"`
	Rating      int       `gorm:"not null"`
	Comment     string    `gorm:"type:text"`
	CreatedAt   time.Time

	Volunteer Volunteer `gorm:"foreignKey:VolunteerID"`
}
