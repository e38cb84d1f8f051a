package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/infrastructure/models"
	"sahaaya.backend/pkg/utils"
)

// CampaignRepository implements campaign data operations
type CampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(ctx context.Context, campaign *entities.Campaign) error {
	if campaign.ID == uuid.Nil {
		campaign.ID = utils.GenerateUUIDv7()
	}
	m := &models.Campaign{
		ID:          campaign.ID,
		CreatorID:   campaign.CreatorID,
		Title:       campaign.Title,
		Description: campaign.Description,
		Goal:        campaign.Goal,
		Raised:      campaign.Raised,
		Currency:    campaign.Currency,
		Category:    string(campaign.Category),
		Status:      string(campaign.Status),
		ImageURL:    campaign.ImageURL,
		StartDate:   campaign.StartDate,
		EndDate:     campaign.EndDate,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	campaign.CreatedAt = m.CreatedAt
	campaign.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a campaign by ID
func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Campaign, error) {
	var m models.Campaign
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns campaigns, optionally filtered by status, with pagination
func (r *CampaignRepository) List(ctx context.Context, status entities.CampaignStatus, limit, offset int) ([]*entities.Campaign, int, error) {
	db := GetDB(ctx, r.db)

	query := db.WithContext(ctx).Model(&models.Campaign{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Campaign
	if err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	campaigns := make([]*entities.Campaign, 0, len(ms))
	for i := range ms {
		campaigns = append(campaigns, r.toEntity(&ms[i]))
	}
	return campaigns, int(total), nil
}

// Update persists mutable campaign fields
func (r *CampaignRepository) Update(ctx context.Context, campaign *entities.Campaign) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Campaign{}).
		Where("id = ?", campaign.ID).
		Updates(map[string]interface{}{
			"title":       campaign.Title,
			"description": campaign.Description,
			"status":      campaign.Status,
			"image_url":   campaign.ImageURL,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// IncrementRaised adds amount to the raised total as a single SQL
// expression, never read-modify-write, so concurrent verifications
// cannot lose increments.
func (r *CampaignRepository) IncrementRaised(ctx context.Context, id uuid.UUID, amount int64) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Campaign{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"raised":     gorm.Expr("raised + ?", amount),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetRaised overwrites the raised total. Only the reconciliation job
// calls this, with a value recomputed from completed donations. The
// write is conditional on the raised total the caller observed: if an
// increment committed in between, the update matches nothing and the
// next reconciliation cycle re-checks against the fresh total.
func (r *CampaignRepository) SetRaised(ctx context.Context, id uuid.UUID, raised, observed int64) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Campaign{}).
		Where("id = ? AND raised = ?", id, observed).
		Updates(map[string]interface{}{
			"raised":     raised,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.WithContext(ctx).Model(&models.Campaign{}).
			Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		// raised moved under us; leave it alone.
	}
	return nil
}

// AddUpdate appends an entry to the campaign's update feed
func (r *CampaignRepository) AddUpdate(ctx context.Context, update *entities.CampaignUpdate) error {
	if update.ID == uuid.Nil {
		update.ID = utils.GenerateUUIDv7()
	}
	m := &models.CampaignUpdate{
		ID:         update.ID,
		CampaignID: update.CampaignID,
		Title:      update.Title,
		Content:    update.Content,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	update.CreatedAt = m.CreatedAt
	return nil
}

// GetUpdates returns a campaign's update feed, newest first
func (r *CampaignRepository) GetUpdates(ctx context.Context, campaignID uuid.UUID) ([]*entities.CampaignUpdate, error) {
	var ms []models.CampaignUpdate
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	updates := make([]*entities.CampaignUpdate, 0, len(ms))
	for i := range ms {
		updates = append(updates, &entities.CampaignUpdate{
			ID:         ms[i].ID,
			CampaignID: ms[i].CampaignID,
			Title:      ms[i].Title,
			Content:    ms[i].Content,
			CreatedAt:  ms[i].CreatedAt,
		})
	}
	return updates, nil
}

// Count returns the total number of campaigns
func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.Campaign{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *CampaignRepository) toEntity(m *models.Campaign) *entities.Campaign {
	return &entities.Campaign{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Title:       m.Title,
		Description: m.Description,
		Goal:        m.Goal,
		Raised:      m.Raised,
		Currency:    m.Currency,
		Category:    entities.CampaignCategory(m.Category),
		Status:      entities.CampaignStatus(m.Status),
		ImageURL:    m.ImageURL,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
