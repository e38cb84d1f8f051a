package repositories

import (
	"context"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
)

// DonationRepository defines donation data operations
type DonationRepository interface {
	Create(ctx context.Context, donation *entities.Donation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Donation, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Donation, error)
	GetByDonorID(ctx context.Context, donorID uuid.UUID, limit, offset int) ([]*entities.Donation, int, error)
	GetByCampaignID(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]*entities.Donation, int, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Donation, int, error)
	// MarkCompleted transitions PENDING -> COMPLETED, storing the gateway
	// payment id, signature and the receipt number in one update. Returns
	// ErrDonationNotPending when the row is no longer pending.
	MarkCompleted(ctx context.Context, id uuid.UUID, paymentID, signature, receiptNumber string) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
	MarkRefunded(ctx context.Context, id uuid.UUID, refundID string) error
	// SumCompletedByCampaign totals completed donation amounts for a
	// campaign; used by the reconciliation job.
	SumCompletedByCampaign(ctx context.Context, campaignID uuid.UUID) (int64, error)
	TotalCompleted(ctx context.Context) (int64, int64, error)
}

// SubscriptionRepository defines recurring donation data operations
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entities.Subscription) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Subscription, error)
	GetByDonorID(ctx context.Context, donorID uuid.UUID) ([]*entities.Subscription, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.SubscriptionStatus) error
}
