package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/infrastructure/models"
	"sahaaya.backend/pkg/utils"
)

// DonationRepository implements donation data operations
type DonationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// Create creates a new donation row, normally in PENDING state with the
// gateway order id already attached.
func (r *DonationRepository) Create(ctx context.Context, donation *entities.Donation) error {
	if donation.ID == uuid.Nil {
		donation.ID = utils.GenerateUUIDv7()
	}
	m := &models.Donation{
		ID:            donation.ID,
		DonorID:       donation.DonorID,
		CampaignID:    donation.CampaignID,
		Amount:        donation.Amount,
		Currency:      donation.Currency,
		OrderID:       donation.OrderID,
		PaymentID:     donation.PaymentID.Ptr(),
		Signature:     donation.Signature.Ptr(),
		ReceiptNumber: donation.ReceiptNumber.Ptr(),
		RefundID:      donation.RefundID.Ptr(),
		Status:        string(donation.Status),
		IsAnonymous:   donation.IsAnonymous,
		Message:       donation.Message,
		CompletedAt:   donation.CompletedAt,
		RefundedAt:    donation.RefundedAt,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	donation.CreatedAt = m.CreatedAt
	donation.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a donation by ID
func (r *DonationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Donation, error) {
	var m models.Donation
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Preload("Campaign").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByOrderID gets a donation by its gateway order id
func (r *DonationRepository) GetByOrderID(ctx context.Context, orderID string) (*entities.Donation, error) {
	var m models.Donation
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("order_id = ?", orderID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByDonorID gets donations for a donor with pagination
func (r *DonationRepository) GetByDonorID(ctx context.Context, donorID uuid.UUID, limit, offset int) ([]*entities.Donation, int, error) {
	return r.list(ctx, "donor_id = ?", []interface{}{donorID}, limit, offset)
}

// GetByCampaignID gets donations for a campaign with pagination
func (r *DonationRepository) GetByCampaignID(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]*entities.Donation, int, error) {
	return r.list(ctx, "campaign_id = ?", []interface{}{campaignID}, limit, offset)
}

// List returns all donations with pagination
func (r *DonationRepository) List(ctx context.Context, limit, offset int) ([]*entities.Donation, int, error) {
	return r.list(ctx, "", nil, limit, offset)
}

func (r *DonationRepository) list(ctx context.Context, cond string, args []interface{}, limit, offset int) ([]*entities.Donation, int, error) {
	db := GetDB(ctx, r.db)

	query := db.WithContext(ctx).Model(&models.Donation{})
	if cond != "" {
		query = query.Where(cond, args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var ms []models.Donation
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	donations := make([]*entities.Donation, 0, len(ms))
	for i := range ms {
		donations = append(donations, r.toEntity(&ms[i]))
	}
	return donations, int(total), nil
}

// MarkCompleted transitions PENDING -> COMPLETED in one conditional
// update, storing the gateway payment id, signature and receipt number.
// The status guard in the WHERE clause makes replays and double-submits
// harmless: the second update matches zero rows.
func (r *DonationRepository) MarkCompleted(ctx context.Context, id uuid.UUID, paymentID, signature, receiptNumber string) error {
	now := time.Now()
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Donation{}).
		Where("id = ? AND status = ?", id, entities.DonationStatusPending).
		Updates(map[string]interface{}{
			"status":         entities.DonationStatusCompleted,
			"payment_id":     paymentID,
			"signature":      signature,
			"receipt_number": receiptNumber,
			"completed_at":   now,
			"updated_at":     now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDonationNotPending
	}
	return nil
}

// MarkFailed transitions PENDING -> FAILED
func (r *DonationRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Donation{}).
		Where("id = ? AND status = ?", id, entities.DonationStatusPending).
		Updates(map[string]interface{}{
			"status":     entities.DonationStatusFailed,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDonationNotPending
	}
	return nil
}

// MarkRefunded transitions COMPLETED -> REFUNDED, storing the gateway
// refund id.
func (r *DonationRepository) MarkRefunded(ctx context.Context, id uuid.UUID, refundID string) error {
	now := time.Now()
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Donation{}).
		Where("id = ? AND status = ?", id, entities.DonationStatusCompleted).
		Updates(map[string]interface{}{
			"status":      entities.DonationStatusRefunded,
			"refund_id":   refundID,
			"refunded_at": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SumCompletedByCampaign totals completed donation amounts for a campaign
func (r *DonationRepository) SumCompletedByCampaign(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	var sum int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("campaign_id = ? AND status = ?", campaignID, entities.DonationStatusCompleted).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}

// TotalCompleted returns the count and amount sum of completed donations
func (r *DonationRepository) TotalCompleted(ctx context.Context) (int64, int64, error) {
	db := GetDB(ctx, r.db)

	var count int64
	if err := db.WithContext(ctx).Model(&models.Donation{}).
		Where("status = ?", entities.DonationStatusCompleted).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var sum int64
	if err := db.WithContext(ctx).Model(&models.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", entities.DonationStatusCompleted).
		Scan(&sum).Error; err != nil {
		return 0, 0, err
	}
	return count, sum, nil
}

func (r *DonationRepository) toEntity(m *models.Donation) *entities.Donation {
	d := &entities.Donation{
		ID:            m.ID,
		DonorID:       m.DonorID,
		CampaignID:    m.CampaignID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		OrderID:       m.OrderID,
		PaymentID:     null.StringFromPtr(m.PaymentID),
		Signature:     null.StringFromPtr(m.Signature),
		ReceiptNumber: null.StringFromPtr(m.ReceiptNumber),
		RefundID:      null.StringFromPtr(m.RefundID),
		Status:        entities.DonationStatus(m.Status),
		IsAnonymous:   m.IsAnonymous,
		Message:       m.Message,
		CompletedAt:   m.CompletedAt,
		RefundedAt:    m.RefundedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if m.Campaign != nil && m.Campaign.ID != uuid.Nil {
		d.Campaign = &entities.Campaign{
			ID:       m.Campaign.ID,
			Title:    m.Campaign.Title,
			Category: entities.CampaignCategory(m.Campaign.Category),
			Status:   entities.CampaignStatus(m.Campaign.Status),
		}
	}

	return d
}

// SubscriptionRepository implements recurring donation data operations
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create creates a new subscription
func (r *SubscriptionRepository) Create(ctx context.Context, sub *entities.Subscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = utils.GenerateUUIDv7()
	}
	m := &models.Subscription{
		ID:                    sub.ID,
		DonorID:               sub.DonorID,
		Amount:                sub.Amount,
		Currency:              sub.Currency,
		Frequency:             string(sub.Frequency),
		GatewaySubscriptionID: sub.GatewaySubscriptionID,
		AuthorizationURL:      sub.AuthorizationURL,
		Status:                string(sub.Status),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	sub.CreatedAt = m.CreatedAt
	sub.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a subscription by ID
func (r *SubscriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Subscription, error) {
	var m models.Subscription
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.subToEntity(&m), nil
}

// GetByDonorID returns a donor's subscriptions, newest first
func (r *SubscriptionRepository) GetByDonorID(ctx context.Context, donorID uuid.UUID) ([]*entities.Subscription, error) {
	var ms []models.Subscription
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	subs := make([]*entities.Subscription, 0, len(ms))
	for i := range ms {
		subs = append(subs, r.subToEntity(&ms[i]))
	}
	return subs, nil
}

// UpdateStatus updates a subscription's status
func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.SubscriptionStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Subscription{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
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

func (r *SubscriptionRepository) subToEntity(m *models.Subscription) *entities.Subscription {
	return &entities.Subscription{
		ID:                    m.ID,
		DonorID:               m.DonorID,
		Amount:                m.Amount,
		Currency:              m.Currency,
		Frequency:             entities.SubscriptionFrequency(m.Frequency),
		GatewaySubscriptionID: m.GatewaySubscriptionID,
		AuthorizationURL:      m.AuthorizationURL,
		Status:                entities.SubscriptionStatus(m.Status),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}
