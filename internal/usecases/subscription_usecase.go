package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/domain/repositories"
)

const defaultMinRecurring = 100 // smallest currency unit

// SubscriptionUsecase handles recurring donation mandates
type SubscriptionUsecase struct {
	subscriptionRepo repositories.SubscriptionRepository
	settingsRepo     repositories.SettingsRepository
	gateway          PaymentGateway
}

// NewSubscriptionUsecase creates a new subscription usecase
func NewSubscriptionUsecase(
	subscriptionRepo repositories.SubscriptionRepository,
	settingsRepo repositories.SettingsRepository,
	gw PaymentGateway,
) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		subscriptionRepo: subscriptionRepo,
		settingsRepo:     settingsRepo,
		gateway:          gw,
	}
}

// Create registers a recurring mandate at the gateway and persists it in
// CREATED state. The donor still has to authorize it through the returned
// URL; activation arrives out of band.
func (u *SubscriptionUsecase) Create(ctx context.Context, donorID uuid.UUID, input *entities.CreateSubscriptionInput) (*entities.CreateSubscriptionResponse, error) {
	frequency := entities.SubscriptionFrequency(input.Frequency)
	if !entities.ValidSubscriptionFrequency(frequency) {
		return nil, domainerrors.BadRequest("frequency must be MONTHLY, QUARTERLY or YEARLY")
	}

	minAmount := u.minRecurring(ctx)
	if input.Amount < minAmount {
		return nil, domainerrors.BadRequest(fmt.Sprintf("recurring amount must be at least %d", minAmount))
	}

	gatewaySub, err := u.gateway.CreateSubscription(ctx, input.Amount, "INR", frequency)
	if err != nil {
		return nil, domainerrors.BadGateway("payment gateway unavailable", err)
	}

	sub := &entities.Subscription{
		DonorID:               donorID,
		Amount:                input.Amount,
		Currency:              "INR",
		Frequency:             frequency,
		GatewaySubscriptionID: gatewaySub.ID,
		AuthorizationURL:      gatewaySub.ShortURL,
		Status:                entities.SubscriptionStatusCreated,
	}
	if err := u.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	return &entities.CreateSubscriptionResponse{
		SubscriptionID:        sub.ID,
		GatewaySubscriptionID: sub.GatewaySubscriptionID,
		AuthorizationURL:      sub.AuthorizationURL,
	}, nil
}

// Cancel cancels a donor's mandate at the gateway, then locally.
func (u *SubscriptionUsecase) Cancel(ctx context.Context, donorID, id uuid.UUID) error {
	sub, err := u.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sub.DonorID != donorID {
		return domainerrors.Forbidden("subscription belongs to another donor")
	}
	if sub.Status == entities.SubscriptionStatusCancelled {
		return domainerrors.Conflict("subscription is already cancelled", domainerrors.ErrAlreadyExists)
	}

	if err := u.gateway.CancelSubscription(ctx, sub.GatewaySubscriptionID); err != nil {
		return domainerrors.BadGateway("payment gateway unavailable", err)
	}
	return u.subscriptionRepo.UpdateStatus(ctx, sub.ID, entities.SubscriptionStatusCancelled)
}

// ListByDonor returns a donor's subscriptions
func (u *SubscriptionUsecase) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*entities.Subscription, error) {
	return u.subscriptionRepo.GetByDonorID(ctx, donorID)
}

func (u *SubscriptionUsecase) minRecurring(ctx context.Context) int64 {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil || settings.MinRecurringAmount <= 0 {
		return defaultMinRecurring
	}
	return settings.MinRecurringAmount
}
