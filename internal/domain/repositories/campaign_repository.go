package repositories

import (
	"context"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
)

// CampaignRepository defines campaign data operations
type CampaignRepository interface {
	Create(ctx context.Context, campaign *entities.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Campaign, error)
	List(ctx context.Context, status entities.CampaignStatus, limit, offset int) ([]*entities.Campaign, int, error)
	Update(ctx context.Context, campaign *entities.Campaign) error
	// IncrementRaised adds amount to the campaign's raised total with an
	// atomic SQL expression. Safe under concurrent verifications.
	IncrementRaised(ctx context.Context, id uuid.UUID, amount int64) error
	// SetRaised overwrites the raised total only while it still holds
	// observed, so a concurrent increment is never clobbered.
	SetRaised(ctx context.Context, id uuid.UUID, raised, observed int64) error
	AddUpdate(ctx context.Context, update *entities.CampaignUpdate) error
	GetUpdates(ctx context.Context, campaignID uuid.UUID) ([]*entities.CampaignUpdate, error)
	Count(ctx context.Context) (int64, error)
}
