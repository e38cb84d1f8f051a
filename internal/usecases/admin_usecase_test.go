package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sahaaya.backend/internal/usecases"
)

func newAdminUsecase() (*usecases.AdminUsecase, *MockUserRepository, *MockCampaignRepository, *MockDonationRepository, *MockEventRepository, *MockVolunteerRepository) {
	users := new(MockUserRepository)
	campaigns := new(MockCampaignRepository)
	donations := new(MockDonationRepository)
	events := new(MockEventRepository)
	volunteers := new(MockVolunteerRepository)
	uc := usecases.NewAdminUsecase(users, campaigns, donations, events, volunteers)
	return uc, users, campaigns, donations, events, volunteers
}

func TestAdminUsecase_GetDashboardStats(t *testing.T) {
	uc, users, campaigns, donations, events, volunteers := newAdminUsecase()
	ctx := context.Background()

	users.On("Count", ctx).Return(int64(120), nil).Once()
	campaigns.On("Count", ctx).Return(int64(8), nil).Once()
	events.On("Count", ctx).Return(int64(15), nil).Once()
	volunteers.On("Count", ctx).Return(int64(34), nil).Once()
	donations.On("TotalCompleted", ctx).Return(int64(450), int64(12750000), nil).Once()

	stats, err := uc.GetDashboardStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalUsers)
	assert.Equal(t, int64(8), stats.TotalCampaigns)
	assert.Equal(t, int64(15), stats.TotalEvents)
	assert.Equal(t, int64(34), stats.TotalVolunteers)
	assert.Equal(t, int64(450), stats.CompletedDonations)
	assert.Equal(t, int64(12750000), stats.TotalRaised)
}

func TestAdminUsecase_GetDashboardStats_Error(t *testing.T) {
	uc, users, _, _, _, _ := newAdminUsecase()
	ctx := context.Background()

	users.On("Count", ctx).Return(int64(0), errors.New("db down")).Once()

	_, err := uc.GetDashboardStats(ctx)
	assert.Error(t, err)
}
