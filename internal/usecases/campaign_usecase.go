package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/domain/repositories"
	"sahaaya.backend/internal/infrastructure/email"
	"sahaaya.backend/pkg/logger"
)

// CampaignUsecase handles fundraising campaign business logic
type CampaignUsecase struct {
	campaignRepo repositories.CampaignRepository
	donationRepo repositories.DonationRepository
	userRepo     repositories.UserRepository
	mail         MailDispatcher
}

// NewCampaignUsecase creates a new campaign usecase
func NewCampaignUsecase(
	campaignRepo repositories.CampaignRepository,
	donationRepo repositories.DonationRepository,
	userRepo repositories.UserRepository,
	mail MailDispatcher,
) *CampaignUsecase {
	return &CampaignUsecase{
		campaignRepo: campaignRepo,
		donationRepo: donationRepo,
		userRepo:     userRepo,
		mail:         mail,
	}
}

// Create creates a campaign in DRAFT status
func (u *CampaignUsecase) Create(ctx context.Context, creatorID uuid.UUID, input *entities.CreateCampaignInput) (*entities.Campaign, error) {
	category := entities.CampaignCategory(input.Category)
	if !entities.ValidCampaignCategory(category) {
		return nil, domainerrors.BadRequest("unknown campaign category")
	}

	startDate, err := time.Parse(time.RFC3339, input.StartDate)
	if err != nil {
		return nil, domainerrors.BadRequest("startDate must be RFC3339")
	}
	endDate, err := time.Parse(time.RFC3339, input.EndDate)
	if err != nil {
		return nil, domainerrors.BadRequest("endDate must be RFC3339")
	}
	if !endDate.After(startDate) {
		return nil, domainerrors.BadRequest("endDate must be after startDate")
	}

	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}

	campaign := &entities.Campaign{
		CreatorID:   creatorID,
		Title:       input.Title,
		Description: input.Description,
		Goal:        input.Goal,
		Currency:    currency,
		Category:    category,
		Status:      entities.CampaignStatusDraft,
		ImageURL:    input.ImageURL,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if err := u.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// GetByID returns one campaign with its update feed
func (u *CampaignUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Campaign, error) {
	campaign, err := u.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updates, err := u.campaignRepo.GetUpdates(ctx, id)
	if err != nil {
		return nil, err
	}
	campaign.Updates = make([]entities.CampaignUpdate, 0, len(updates))
	for _, update := range updates {
		campaign.Updates = append(campaign.Updates, *update)
	}
	return campaign, nil
}

// List returns campaigns, optionally filtered by status
func (u *CampaignUsecase) List(ctx context.Context, status string, limit, offset int) ([]*entities.Campaign, int, error) {
	return u.campaignRepo.List(ctx, entities.CampaignStatus(status), limit, offset)
}

// Update applies mutable campaign fields. Only the creator or an admin
// may modify a campaign; status moves through the allowed transitions.
func (u *CampaignUsecase) Update(ctx context.Context, requesterID uuid.UUID, isAdmin bool, id uuid.UUID, input *entities.UpdateCampaignInput) (*entities.Campaign, error) {
	campaign, err := u.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && campaign.CreatorID != requesterID {
		return nil, domainerrors.Forbidden("campaign belongs to another creator")
	}

	if input.Title != "" {
		campaign.Title = input.Title
	}
	if input.Description != "" {
		campaign.Description = input.Description
	}
	if input.ImageURL != "" {
		campaign.ImageURL = input.ImageURL
	}
	if input.Status != "" {
		next := entities.CampaignStatus(input.Status)
		if !validCampaignTransition(campaign.Status, next) {
			return nil, domainerrors.Conflict("invalid status transition", domainerrors.ErrInvalidInput)
		}
		campaign.Status = next
	}

	if err := u.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// AddUpdate appends to the update feed and notifies the campaign's
// non-anonymous completed donors, fire-and-forget.
func (u *CampaignUsecase) AddUpdate(ctx context.Context, requesterID uuid.UUID, isAdmin bool, campaignID uuid.UUID, input *entities.CampaignUpdateInput) (*entities.CampaignUpdate, error) {
	campaign, err := u.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && campaign.CreatorID != requesterID {
		return nil, domainerrors.Forbidden("campaign belongs to another creator")
	}

	update := &entities.CampaignUpdate{
		CampaignID: campaign.ID,
		Title:      input.Title,
		Content:    input.Content,
	}
	if err := u.campaignRepo.AddUpdate(ctx, update); err != nil {
		return nil, err
	}

	u.notifyDonors(ctx, campaign, update)
	return update, nil
}

// GetUpdates returns the update feed, newest first
func (u *CampaignUsecase) GetUpdates(ctx context.Context, campaignID uuid.UUID) ([]*entities.CampaignUpdate, error) {
	if _, err := u.campaignRepo.GetByID(ctx, campaignID); err != nil {
		return nil, err
	}
	return u.campaignRepo.GetUpdates(ctx, campaignID)
}

func (u *CampaignUsecase) notifyDonors(ctx context.Context, campaign *entities.Campaign, update *entities.CampaignUpdate) {
	donations, _, err := u.donationRepo.GetByCampaignID(ctx, campaign.ID, 0, 0)
	if err != nil {
		logger.Warn(ctx, "campaign update emails skipped, donation lookup failed",
			zap.String("campaign_id", campaign.ID.String()), zap.Error(err))
		return
	}

	notified := map[uuid.UUID]bool{}
	for _, donation := range donations {
		if donation.Status != entities.DonationStatusCompleted || donation.IsAnonymous || notified[donation.DonorID] {
			continue
		}
		notified[donation.DonorID] = true
		donor, err := u.userRepo.GetByID(ctx, donation.DonorID)
		if err != nil {
			continue
		}
		u.mail.Dispatch(ctx, email.CampaignUpdate(donor.Email, donor.Name, campaign.Title, update))
	}
}

// validCampaignTransition encodes the campaign status machine:
// DRAFT -> ACTIVE, ACTIVE <-> PAUSED, ACTIVE/PAUSED -> COMPLETED.
func validCampaignTransition(from, to entities.CampaignStatus) bool {
	switch from {
	case entities.CampaignStatusDraft:
		return to == entities.CampaignStatusActive
	case entities.CampaignStatusActive:
		return to == entities.CampaignStatusPaused || to == entities.CampaignStatusCompleted
	case entities.CampaignStatusPaused:
		return to == entities.CampaignStatusActive || to == entities.CampaignStatusCompleted
	}
	return false
}
