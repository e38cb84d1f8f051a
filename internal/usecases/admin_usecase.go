package usecases

import (
	"context"

	"sahaaya.backend/internal/domain/entities"
	"sahaaya.backend/internal/domain/repositories"
)

// DashboardStats aggregates the back-office overview numbers.
type DashboardStats struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalCampaigns     int64 `json:"totalCampaigns"`
	TotalEvents        int64 `json:"totalEvents"`
	TotalVolunteers    int64 `json:"totalVolunteers"`
	CompletedDonations int64 `json:"completedDonations"`
	TotalRaised        int64 `json:"totalRaised"`
}

// AdminUsecase handles back-office analytics and user management
type AdminUsecase struct {
	userRepo      repositories.UserRepository
	campaignRepo  repositories.CampaignRepository
	donationRepo  repositories.DonationRepository
	eventRepo     repositories.EventRepository
	volunteerRepo repositories.VolunteerRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	campaignRepo repositories.CampaignRepository,
	donationRepo repositories.DonationRepository,
	eventRepo repositories.EventRepository,
	volunteerRepo repositories.VolunteerRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:      userRepo,
		campaignRepo:  campaignRepo,
		donationRepo:  donationRepo,
		eventRepo:     eventRepo,
		volunteerRepo: volunteerRepo,
	}
}

// GetDashboardStats returns the overview counters
func (u *AdminUsecase) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalUsers, err = u.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCampaigns, err = u.campaignRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalEvents, err = u.eventRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalVolunteers, err = u.volunteerRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.CompletedDonations, stats.TotalRaised, err = u.donationRepo.TotalCompleted(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

// ListUsers returns users for the back office
func (u *AdminUsecase) ListUsers(ctx context.Context, limit, offset int) ([]*entities.User, int, error) {
	return u.userRepo.List(ctx, limit, offset)
}
