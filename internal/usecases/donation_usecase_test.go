package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/infrastructure/gateway"
	"sahaaya.backend/internal/usecases"
)

type donationMocks struct {
	donations *MockDonationRepository
	campaigns *MockCampaignRepository
	users     *MockUserRepository
	settings  *MockSettingsRepository
	uow       *MockUnitOfWork
	gateway   *MockPaymentGateway
	mail      *MockMailDispatcher
}

func newDonationUsecase() (*usecases.DonationUsecase, *donationMocks) {
	m := &donationMocks{
		donations: new(MockDonationRepository),
		campaigns: new(MockCampaignRepository),
		users:     new(MockUserRepository),
		settings:  new(MockSettingsRepository),
		uow:       new(MockUnitOfWork),
		gateway:   new(MockPaymentGateway),
		mail:      new(MockMailDispatcher),
	}
	uc := usecases.NewDonationUsecase(m.donations, m.campaigns, m.users, m.settings, m.uow, m.gateway, m.mail)
	return uc, m
}

func TestDonationUsecase_CreateOrder_Success(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()
	donorID := uuid.New()
	campaignID := uuid.New()

	m.settings.On("Get", ctx).Return(&entities.Settings{MinDonationAmount: 100}, nil).Once()
	m.campaigns.On("GetByID", ctx, campaignID).
		Return(&entities.Campaign{ID: campaignID, Status: entities.CampaignStatusActive}, nil).Once()
	m.gateway.On("CreateOrder", ctx, int64(50000), "INR", "", mock.Anything).
		Return(&gateway.Order{ID: "order_123", Amount: 50000, Currency: "INR"}, nil).Once()
	m.gateway.On("KeyID").Return("rzp_test_key").Once()
	m.donations.On("Create", ctx, mock.MatchedBy(func(d *entities.Donation) bool {
		return d.OrderID == "order_123" && d.Status == entities.DonationStatusPending && d.CampaignID != nil
	})).Return(nil).Once()

	resp, err := uc.CreateOrder(ctx, donorID, &entities.CreateOrderInput{
		Amount:     50000,
		CampaignID: campaignID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, "order_123", resp.OrderID)
	assert.Equal(t, "rzp_test_key", resp.KeyID)
	m.donations.AssertExpectations(t)
}

func TestDonationUsecase_CreateOrder_BelowMinimum(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()

	m.settings.On("Get", ctx).Return(&entities.Settings{MinDonationAmount: 500}, nil).Once()

	_, err := uc.CreateOrder(ctx, uuid.New(), &entities.CreateOrderInput{Amount: 100})

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	m.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDonationUsecase_CreateOrder_SmallAmountWithoutConfiguredMinimum(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()
	donorID := uuid.New()

	// No settings row means no minimum; any positive amount is accepted.
	m.settings.On("Get", ctx).Return(nil, domainerrors.ErrNotFound).Once()
	m.gateway.On("CreateOrder", ctx, int64(50), "INR", "", mock.Anything).
		Return(&gateway.Order{ID: "order_small", Amount: 50, Currency: "INR"}, nil).Once()
	m.gateway.On("KeyID").Return("rzp_test_key").Once()
	m.donations.On("Create", ctx, mock.MatchedBy(func(d *entities.Donation) bool {
		return d.OrderID == "order_small" && d.Amount == 50
	})).Return(nil).Once()

	resp, err := uc.CreateOrder(ctx, donorID, &entities.CreateOrderInput{Amount: 50})

	require.NoError(t, err)
	assert.Equal(t, "order_small", resp.OrderID)
	m.donations.AssertExpectations(t)
}

func TestDonationUsecase_CreateOrder_NonPositiveAmount(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()

	for _, amount := range []int64{0, -100} {
		_, err := uc.CreateOrder(ctx, uuid.New(), &entities.CreateOrderInput{Amount: amount})

		var appErr *domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	}
	m.settings.AssertNotCalled(t, "Get", mock.Anything)
	m.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDonationUsecase_CreateOrder_InactiveCampaign(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()
	campaignID := uuid.New()

	m.settings.On("Get", ctx).Return(&entities.Settings{MinDonationAmount: 100}, nil).Once()
	m.campaigns.On("GetByID", ctx, campaignID).
		Return(&entities.Campaign{ID: campaignID, Status: entities.CampaignStatusDraft}, nil).Once()

	_, err := uc.CreateOrder(ctx, uuid.New(), &entities.CreateOrderInput{
		Amount:     50000,
		CampaignID: campaignID.String(),
	})

	assert.Error(t, err)
	m.gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.donations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDonationUsecase_CreateOrder_GatewayDown(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()

	m.settings.On("Get", ctx).Return(nil, domainerrors.ErrNotFound).Once()
	m.gateway.On("CreateOrder", ctx, int64(50000), "INR", "", mock.Anything).
		Return(nil, errors.New("connect timeout")).Once()

	_, err := uc.CreateOrder(ctx, uuid.New(), &entities.CreateOrderInput{Amount: 50000})

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Status)
	m.donations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDonationUsecase_VerifyPayment_Success(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()
	donorID := uuid.New()
	donationID := uuid.New()
	campaignID := uuid.New()
	secret := "test_secret"
	signature := gateway.SignPayment("order_123", "pay_456", secret)

	donation := &entities.Donation{
		ID:         donationID,
		DonorID:    donorID,
		CampaignID: &campaignID,
		Amount:     50000,
		Currency:   "INR",
		OrderID:    "order_123",
		Status:     entities.DonationStatusPending,
	}

	m.donations.On("GetByOrderID", ctx, "order_123").Return(donation, nil).Once()
	m.gateway.On("Secret").Return(secret).Once()
	m.uow.On("Do", ctx, mock.Anything).Return(nil).Once()
	m.donations.On("MarkCompleted", ctx, donationID, "pay_456", signature, mock.AnythingOfType("string")).Return(nil).Once()
	m.campaigns.On("IncrementRaised", ctx, campaignID, int64(50000)).Return(nil).Once()
	m.users.On("GetByID", ctx, donorID).
		Return(&entities.User{ID: donorID, Email: "donor@example.com", Name: "Asha"}, nil).Once()
	m.campaigns.On("GetByID", ctx, campaignID).
		Return(&entities.Campaign{ID: campaignID, Title: "Clean Water"}, nil).Once()
	m.mail.On("Dispatch", ctx, mock.Anything).Once()

	resp, err := uc.VerifyPayment(ctx, donorID, &entities.VerifyPaymentInput{
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: signature,
	})

	require.NoError(t, err)
	assert.Equal(t, entities.DonationStatusCompleted, resp.Status)
	assert.Regexp(t, `^RCPT-\d{8}-[0-9A-F]{8}$`, resp.ReceiptNumber)
	m.donations.AssertExpectations(t)
	m.campaigns.AssertExpectations(t)
	m.mail.AssertExpectations(t)
}

func TestDonationUsecase_VerifyPayment_BadSignature(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()
	donorID := uuid.New()
	donationID := uuid.New()

	donation := &entities.Donation{
		ID:      donationID,
		DonorID: donorID,
		OrderID: "order_123",
		Status:  entities.DonationStatusPending,
	}

	m.donations.On("GetByOrderID", ctx, "order_123").Return(donation, nil).Once()
	m.gateway.On("Secret").Return("test_secret").Once()
	m.donations.On("MarkFailed", ctx, donationID).Return(nil).Once()

	_, err := uc.VerifyPayment(ctx, donorID, &entities.VerifyPaymentInput{
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: "forged",
	})

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
	m.donations.AssertExpectations(t)
	m.uow.AssertNotCalled(t, "Do", mock.Anything, mock.Anything)
	m.mail.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestDonationUsecase_VerifyPayment_Replay(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()
	donorID := uuid.New()

	donation := &entities.Donation{
		ID:      uuid.New(),
		DonorID: donorID,
		OrderID: "order_123",
		Status:  entities.DonationStatusCompleted,
	}
	m.donations.On("GetByOrderID", ctx, "order_123").Return(donation, nil).Once()

	_, err := uc.VerifyPayment(ctx, donorID, &entities.VerifyPaymentInput{
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: "whatever",
	})

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
}

func TestDonationUsecase_VerifyPayment_WrongDonor(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()

	donation := &entities.Donation{
		ID:      uuid.New(),
		DonorID: uuid.New(),
		OrderID: "order_123",
		Status:  entities.DonationStatusPending,
	}
	m.donations.On("GetByOrderID", ctx, "order_123").Return(donation, nil).Once()

	_, err := uc.VerifyPayment(ctx, uuid.New(), &entities.VerifyPaymentInput{
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: "whatever",
	})

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)
}

func TestDonationUsecase_Refund_Success(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()
	donationID := uuid.New()
	campaignID := uuid.New()

	donation := &entities.Donation{
		ID:         donationID,
		CampaignID: &campaignID,
		Amount:     50000,
		PaymentID:  null.StringFrom("pay_456"),
		Status:     entities.DonationStatusCompleted,
	}
	refunded := &entities.Donation{ID: donationID, Status: entities.DonationStatusRefunded}

	m.donations.On("GetByID", ctx, donationID).Return(donation, nil).Once()
	m.gateway.On("CreateRefund", ctx, "pay_456", int64(50000)).
		Return(&gateway.Refund{ID: "rfnd_789"}, nil).Once()
	m.uow.On("Do", ctx, mock.Anything).Return(nil).Once()
	m.donations.On("MarkRefunded", ctx, donationID, "rfnd_789").Return(nil).Once()
	m.campaigns.On("IncrementRaised", ctx, campaignID, int64(-50000)).Return(nil).Once()
	m.donations.On("GetByID", ctx, donationID).Return(refunded, nil).Once()

	result, err := uc.Refund(ctx, donationID)

	require.NoError(t, err)
	assert.Equal(t, entities.DonationStatusRefunded, result.Status)
	m.campaigns.AssertExpectations(t)
}

func TestDonationUsecase_Refund_NotCompleted(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()
	donationID := uuid.New()

	m.donations.On("GetByID", ctx, donationID).
		Return(&entities.Donation{ID: donationID, Status: entities.DonationStatusPending}, nil).Once()

	_, err := uc.Refund(ctx, donationID)

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
	m.gateway.AssertNotCalled(t, "CreateRefund", mock.Anything, mock.Anything, mock.Anything)
}

func TestDonationUsecase_GetByID_OwnershipCheck(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()
	ownerID := uuid.New()
	donationID := uuid.New()

	donation := &entities.Donation{ID: donationID, DonorID: ownerID}
	m.donations.On("GetByID", ctx, donationID).Return(donation, nil).Times(3)

	got, err := uc.GetByID(ctx, ownerID, false, donationID)
	require.NoError(t, err)
	assert.Equal(t, donationID, got.ID)

	_, err = uc.GetByID(ctx, uuid.New(), false, donationID)
	assert.Error(t, err)

	_, err = uc.GetByID(ctx, uuid.New(), true, donationID)
	assert.NoError(t, err)
}

func TestDonationUsecase_ListByCampaign_MasksAnonymousDonors(t *testing.T) {
	uc, m := newDonationUsecase()
	ctx := context.Background()
	campaignID := uuid.New()
	namedDonor := uuid.New()

	m.donations.On("GetByCampaignID", ctx, campaignID, 10, 0).Return([]*entities.Donation{
		{DonorID: namedDonor, Status: entities.DonationStatusCompleted},
		{DonorID: uuid.New(), Status: entities.DonationStatusCompleted, IsAnonymous: true},
	}, 2, nil).Once()

	donations, total, err := uc.ListByCampaign(ctx, campaignID, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, namedDonor, donations[0].DonorID)
	assert.Equal(t, uuid.Nil, donations[1].DonorID)
}
