package usecases

import (
	"context"
	"errors"

	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/domain/repositories"
)

// SettingsUsecase handles the organisation settings document
type SettingsUsecase struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsUsecase creates a new settings usecase
func NewSettingsUsecase(settingsRepo repositories.SettingsRepository) *SettingsUsecase {
	return &SettingsUsecase{settingsRepo: settingsRepo}
}

// Get returns the settings document, falling back to defaults before the
// first admin save.
func (u *SettingsUsecase) Get(ctx context.Context) (*entities.Settings, error) {
	settings, err := u.settingsRepo.Get(ctx)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return defaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Update replaces the settings document
func (u *SettingsUsecase) Update(ctx context.Context, input *entities.UpdateSettingsInput) (*entities.Settings, error) {
	settings := &entities.Settings{
		OrganisationName:   input.OrganisationName,
		ContactEmail:       input.ContactEmail,
		Currency:           input.Currency,
		MinDonationAmount:  input.MinDonationAmount,
		MinRecurringAmount: input.MinRecurringAmount,
	}
	if err := u.settingsRepo.Put(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func defaultSettings() *entities.Settings {
	return &entities.Settings{
		OrganisationName:   "Sahaaya",
		ContactEmail:       "hello@sahaaya.org",
		Currency:           "INR",
		MinDonationAmount:  0,
		MinRecurringAmount: defaultMinRecurring,
	}
}
