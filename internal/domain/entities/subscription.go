package entities

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionFrequency is the closed set of recurring donation cadences.
type SubscriptionFrequency string

const (
	SubscriptionFrequencyMonthly   SubscriptionFrequency = "MONTHLY"
	SubscriptionFrequencyQuarterly SubscriptionFrequency = "QUARTERLY"
	SubscriptionFrequencyYearly    SubscriptionFrequency = "YEARLY"
)

// ValidSubscriptionFrequency reports whether f is a known frequency.
func ValidSubscriptionFrequency(f SubscriptionFrequency) bool {
	switch f {
	case SubscriptionFrequencyMonthly, SubscriptionFrequencyQuarterly, SubscriptionFrequencyYearly:
		return true
	}
	return false
}

// SubscriptionStatus represents subscription status
type SubscriptionStatus string

const (
	SubscriptionStatusCreated   SubscriptionStatus = "CREATED"
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
)

// Subscription is a recurring donation mandate. Only creation is handled
// here; renewal charges arrive over a webhook contract owned by the
// gateway and are not part of this service.
type Subscription struct {
	ID                    uuid.UUID             `json:"id"`
	DonorID               uuid.UUID             `json:"donorId"`
	Amount                int64                 `json:"amount"`
	Currency              string                `json:"currency"`
	Frequency             SubscriptionFrequency `json:"frequency"`
	GatewaySubscriptionID string                `json:"gatewaySubscriptionId"`
	AuthorizationURL      string                `json:"authorizationUrl,omitempty"`
	Status                SubscriptionStatus    `json:"status"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
	DeletedAt             *time.Time            `json:"-"`
}

// CreateSubscriptionInput represents input for a recurring donation.
type CreateSubscriptionInput struct {
	Amount    int64  `json:"amount" binding:"required"`
	Frequency string `json:"frequency" binding:"required"`
}

// CreateSubscriptionResponse returns the mandate authorization handle.
type CreateSubscriptionResponse struct {
	SubscriptionID        uuid.UUID `json:"subscriptionId"`
	GatewaySubscriptionID string    `json:"gatewaySubscriptionId"`
	AuthorizationURL      string    `json:"authorizationUrl"`
}
