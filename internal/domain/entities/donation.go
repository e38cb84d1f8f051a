package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DonationStatus represents donation status
type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "PENDING"
	DonationStatusCompleted DonationStatus = "COMPLETED"
	DonationStatusFailed    DonationStatus = "FAILED"
	DonationStatusRefunded  DonationStatus = "REFUNDED"
)

// Donation represents a monetary transaction tied to a donor and
// optionally a campaign. Amounts are in the smallest currency unit.
// A donation is immutable once completed, except refund metadata.
type Donation struct {
	ID            uuid.UUID      `json:"id"`
	DonorID       uuid.UUID      `json:"donorId"`
	CampaignID    *uuid.UUID     `json:"campaignId,omitempty"`
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency"`
	OrderID       string         `json:"orderId"`
	PaymentID     null.String    `json:"paymentId,omitempty"`
	Signature     null.String    `json:"-"`
	ReceiptNumber null.String    `json:"receiptNumber,omitempty"`
	RefundID      null.String    `json:"refundId,omitempty"`
	Status        DonationStatus `json:"status"`
	IsAnonymous   bool           `json:"isAnonymous"`
	Message       string         `json:"message,omitempty"`
	CompletedAt   *time.Time     `json:"completedAt,omitempty"`
	RefundedAt    *time.Time     `json:"refundedAt,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     *time.Time     `json:"-"`

	// Joins
	Campaign *Campaign `json:"campaign,omitempty"`
	Donor    *User     `json:"donor,omitempty"`
}

// CreateOrderInput represents input for creating a donation order
type CreateOrderInput struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	CampaignID  string `json:"campaignId"`
	Message     string `json:"message"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// CreateOrderResponse is what the client-side payment widget needs.
type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// VerifyPaymentInput is the gateway callback payload relayed by the client.
type VerifyPaymentInput struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// VerifyPaymentResponse reports the outcome of signature verification.
type VerifyPaymentResponse struct {
	DonationID    uuid.UUID      `json:"donationId"`
	Status        DonationStatus `json:"status"`
	ReceiptNumber string         `json:"receiptNumber,omitempty"`
}
