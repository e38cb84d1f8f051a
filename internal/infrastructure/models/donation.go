package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Donation struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	DonorID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CampaignID    *uuid.UUID `gorm:"type:uuid;index"` // Nullable
	Amount        int64      `gorm:"not null"`
	Currency      string     `gorm:"type:varchar(3);not null"`
	OrderID       string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	PaymentID     *string    `gorm:"type:varchar(100);index"`
	Signature     *string    `gorm:"type:varchar(255)"`
	ReceiptNumber *string    `gorm:"type:varchar(64);uniqueIndex"`
	RefundID      *string    `gorm:"type:varchar(100)"`
	Status        string     `gorm:"type:varchar(50);not null;index"`
	IsAnonymous   bool       `gorm:"default:false"`
	Message       string     `gorm:"type:text"`
	CompletedAt   *time.Time
	RefundedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`

	Campaign *Campaign `gorm:"foreignKey:CampaignID"`
	Donor    *User     `gorm:"foreignKey:DonorID"`
}

type Subscription struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	DonorID               uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount                int64     `gorm:"not null"`
	Currency              string    `gorm:"type:varchar(3);not null"`
	Frequency             string    `gorm:"type:varchar(20);not null"`
	GatewaySubscriptionID string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	AuthorizationURL      string    `gorm:"type:varchar(500)"`
	Status                string    `gorm:"type:varchar(50);not null;index"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}
