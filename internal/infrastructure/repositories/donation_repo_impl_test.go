package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
)

func TestDonationRepository_BasicFlow(t *testing.T) {
	db := newTestDB(t)
	createDonationTables(t, db)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	donorID := uuid.New()
	campaignID := uuid.New()

	d := &entities.Donation{
		DonorID:    donorID,
		CampaignID: &campaignID,
		Amount:     50000,
		Currency:   "INR",
		OrderID:    "order_abc123",
		Status:     entities.DonationStatusPending,
	}
	require.NoError(t, repo.Create(ctx, d))
	require.NotEqual(t, uuid.Nil, d.ID)

	got, err := repo.GetByOrderID(ctx, "order_abc123")
	require.NoError(t, err)
	require.Equal(t, d.ID, got.ID)
	require.Equal(t, entities.DonationStatusPending, got.Status)
	require.False(t, got.PaymentID.Valid)

	byDonor, total, err := repo.GetByDonorID(ctx, donorID, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, byDonor, 1)

	byCampaign, total, err := repo.GetByCampaignID(ctx, campaignID, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, byCampaign, 1)
}

func TestDonationRepository_MarkCompleted_OnlyOnce(t *testing.T) {
	db := newTestDB(t)
	createDonationTables(t, db)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	d := &entities.Donation{
		DonorID:  uuid.New(),
		Amount:   50000,
		Currency: "INR",
		OrderID:  "order_once",
		Status:   entities.DonationStatusPending,
	}
	require.NoError(t, repo.Create(ctx, d))

	require.NoError(t, repo.MarkCompleted(ctx, d.ID, "pay_1", "sig_1", "RCPT-20260829-AB12"))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, entities.DonationStatusCompleted, got.Status)
	require.Equal(t, "pay_1", got.PaymentID.String)
	require.Equal(t, "RCPT-20260829-AB12", got.ReceiptNumber.String)
	require.NotNil(t, got.CompletedAt)

	// A replayed verification must not rewrite the row.
	err = repo.MarkCompleted(ctx, d.ID, "pay_2", "sig_2", "RCPT-20260829-XY99")
	require.ErrorIs(t, err, domainerrors.ErrDonationNotPending)

	again, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, "pay_1", again.PaymentID.String)
}

func TestDonationRepository_MarkFailedAndRefunded(t *testing.T) {
	db := newTestDB(t)
	createDonationTables(t, db)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	failed := &entities.Donation{
		DonorID:  uuid.New(),
		Amount:   1000,
		Currency: "INR",
		OrderID:  "order_fail",
		Status:   entities.DonationStatusPending,
	}
	require.NoError(t, repo.Create(ctx, failed))
	require.NoError(t, repo.MarkFailed(ctx, failed.ID))
	require.ErrorIs(t, repo.MarkFailed(ctx, failed.ID), domainerrors.ErrDonationNotPending)

	refunded := &entities.Donation{
		DonorID:  uuid.New(),
		Amount:   2000,
		Currency: "INR",
		OrderID:  "order_refund",
		Status:   entities.DonationStatusPending,
	}
	require.NoError(t, repo.Create(ctx, refunded))
	// Refund requires a completed donation.
	require.ErrorIs(t, repo.MarkRefunded(ctx, refunded.ID, "rfnd_1"), domainerrors.ErrNotFound)

	require.NoError(t, repo.MarkCompleted(ctx, refunded.ID, "pay_r", "sig_r", "RCPT-20260829-RF01"))
	require.NoError(t, repo.MarkRefunded(ctx, refunded.ID, "rfnd_1"))

	got, err := repo.GetByID(ctx, refunded.ID)
	require.NoError(t, err)
	require.Equal(t, entities.DonationStatusRefunded, got.Status)
	require.Equal(t, "rfnd_1", got.RefundID.String)
	require.NotNil(t, got.RefundedAt)
}

func TestDonationRepository_Sums(t *testing.T) {
	db := newTestDB(t)
	createDonationTables(t, db)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	campaignID := uuid.New()
	amounts := []int64{10000, 25000, 7000}
	for i, amount := range amounts {
		d := &entities.Donation{
			DonorID:    uuid.New(),
			CampaignID: &campaignID,
			Amount:     amount,
			Currency:   "INR",
			OrderID:    uuid.NewString(),
			Status:     entities.DonationStatusPending,
		}
		require.NoError(t, repo.Create(ctx, d))
		if i < 2 {
			require.NoError(t, repo.MarkCompleted(ctx, d.ID, uuid.NewString(), "sig", uuid.NewString()))
		}
	}

	// Pending amounts never count toward totals.
	sum, err := repo.SumCompletedByCampaign(ctx, campaignID)
	require.NoError(t, err)
	require.Equal(t, int64(35000), sum)

	count, total, err := repo.TotalCompleted(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
	require.Equal(t, int64(35000), total)
}

func TestDonationRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createDonationTables(t, db)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByOrderID(ctx, "order_missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.ErrorIs(t, repo.MarkCompleted(ctx, uuid.New(), "p", "s", "r"), domainerrors.ErrDonationNotPending)
}

func TestSubscriptionRepository_Flow(t *testing.T) {
	db := newTestDB(t)
	createDonationTables(t, db)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	donorID := uuid.New()
	sub := &entities.Subscription{
		DonorID:               donorID,
		Amount:                10000,
		Currency:              "INR",
		Frequency:             entities.SubscriptionFrequencyMonthly,
		GatewaySubscriptionID: "sub_gw_1",
		AuthorizationURL:      "https://gateway.example/authorize/sub_gw_1",
		Status:                entities.SubscriptionStatusCreated,
	}
	require.NoError(t, repo.Create(ctx, sub))

	got, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, entities.SubscriptionFrequencyMonthly, got.Frequency)

	list, err := repo.GetByDonorID(ctx, donorID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.UpdateStatus(ctx, sub.ID, entities.SubscriptionStatusCancelled))
	got, err = repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, entities.SubscriptionStatusCancelled, got.Status)

	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.SubscriptionStatusActive), domainerrors.ErrNotFound)
}
