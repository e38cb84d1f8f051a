package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/domain/repositories"
	"sahaaya.backend/internal/infrastructure/email"
	"sahaaya.backend/internal/infrastructure/gateway"
	"sahaaya.backend/pkg/crypto"
	"sahaaya.backend/pkg/logger"
	"sahaaya.backend/pkg/metrics"
)

// DonationUsecase handles the donation payment flow
type DonationUsecase struct {
	donationRepo repositories.DonationRepository
	campaignRepo repositories.CampaignRepository
	userRepo     repositories.UserRepository
	settingsRepo repositories.SettingsRepository
	uow          repositories.UnitOfWork
	gateway      PaymentGateway
	mail         MailDispatcher
}

// NewDonationUsecase creates a new donation usecase
func NewDonationUsecase(
	donationRepo repositories.DonationRepository,
	campaignRepo repositories.CampaignRepository,
	userRepo repositories.UserRepository,
	settingsRepo repositories.SettingsRepository,
	uow repositories.UnitOfWork,
	gw PaymentGateway,
	mail MailDispatcher,
) *DonationUsecase {
	return &DonationUsecase{
		donationRepo: donationRepo,
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		uow:          uow,
		gateway:      gw,
		mail:         mail,
	}
}

// CreateOrder opens a donation: it registers an order at the gateway and
// persists a PENDING row carrying the order id. The gateway call comes
// first; if the local insert then fails the stray gateway order simply
// expires unpaid.
func (u *DonationUsecase) CreateOrder(ctx context.Context, donorID uuid.UUID, input *entities.CreateOrderInput) (*entities.CreateOrderResponse, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.BadRequest("donation amount must be positive")
	}
	if min := u.minDonation(ctx); min > 0 && input.Amount < min {
		return nil, domainerrors.BadRequest(fmt.Sprintf("donation amount must be at least %d", min))
	}

	var campaignID *uuid.UUID
	if input.CampaignID != "" {
		id, err := uuid.Parse(input.CampaignID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid campaign id")
		}
		campaign, err := u.campaignRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if campaign.Status != entities.CampaignStatusActive {
			return nil, domainerrors.BadRequest("campaign is not accepting donations")
		}
		campaignID = &campaign.ID
	}

	order, err := u.gateway.CreateOrder(ctx, input.Amount, "INR", "", map[string]string{
		"donorId": donorID.String(),
	})
	if err != nil {
		return nil, domainerrors.BadGateway("payment gateway unavailable", err)
	}

	donation := &entities.Donation{
		DonorID:     donorID,
		CampaignID:  campaignID,
		Amount:      input.Amount,
		Currency:    order.Currency,
		OrderID:     order.ID,
		Status:      entities.DonationStatusPending,
		IsAnonymous: input.IsAnonymous,
		Message:     input.Message,
	}
	if err := u.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	return &entities.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   donation.Amount,
		Currency: donation.Currency,
		KeyID:    u.gateway.KeyID(),
	}, nil
}

// VerifyPayment closes the loop after checkout. The signature must match
// HMAC-SHA256 over "orderId|paymentId"; on a mismatch the donation is
// marked FAILED. On success the COMPLETED transition and the campaign
// raised increment commit in one transaction, then the receipt email
// goes out fire-and-forget.
func (u *DonationUsecase) VerifyPayment(ctx context.Context, donorID uuid.UUID, input *entities.VerifyPaymentInput) (*entities.VerifyPaymentResponse, error) {
	donation, err := u.donationRepo.GetByOrderID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if donation.DonorID != donorID {
		return nil, domainerrors.Forbidden("donation belongs to another donor")
	}
	if donation.Status != entities.DonationStatusPending {
		return nil, domainerrors.Conflict("donation already settled", domainerrors.ErrDonationNotPending)
	}

	if !gateway.VerifyPaymentSignature(input.OrderID, input.PaymentID, input.Signature, u.gateway.Secret()) {
		if err := u.donationRepo.MarkFailed(ctx, donation.ID); err != nil {
			logger.Error(ctx, "failed to mark donation failed",
				zap.String("donation_id", donation.ID.String()), zap.Error(err))
		}
		return nil, domainerrors.BadRequest("payment signature mismatch")
	}

	receiptNumber, err := newReceiptNumber(time.Now())
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.donationRepo.MarkCompleted(txCtx, donation.ID, input.PaymentID, input.Signature, receiptNumber); err != nil {
			return err
		}
		if donation.CampaignID != nil {
			return u.campaignRepo.IncrementRaised(txCtx, *donation.CampaignID, donation.Amount)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrDonationNotPending) {
			return nil, domainerrors.Conflict("donation already settled", err)
		}
		return nil, err
	}

	metrics.DonationCompleted()
	u.sendReceipt(ctx, donation, receiptNumber)

	return &entities.VerifyPaymentResponse{
		DonationID:    donation.ID,
		Status:        entities.DonationStatusCompleted,
		ReceiptNumber: receiptNumber,
	}, nil
}

// Refund reverses a completed donation at the gateway and locally. The
// campaign raised total is decremented in the same transaction so the
// reconciliation job finds nothing to repair.
func (u *DonationUsecase) Refund(ctx context.Context, donationID uuid.UUID) (*entities.Donation, error) {
	donation, err := u.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if donation.Status != entities.DonationStatusCompleted {
		return nil, domainerrors.Conflict("only completed donations can be refunded", domainerrors.ErrDonationNotPending)
	}

	refund, err := u.gateway.CreateRefund(ctx, donation.PaymentID.String, donation.Amount)
	if err != nil {
		return nil, domainerrors.BadGateway("payment gateway unavailable", err)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.donationRepo.MarkRefunded(txCtx, donation.ID, refund.ID); err != nil {
			return err
		}
		if donation.CampaignID != nil {
			return u.campaignRepo.IncrementRaised(txCtx, *donation.CampaignID, -donation.Amount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.donationRepo.GetByID(ctx, donationID)
}

// GetByID returns one donation, restricted to its owner unless admin.
func (u *DonationUsecase) GetByID(ctx context.Context, requesterID uuid.UUID, isAdmin bool, id uuid.UUID) (*entities.Donation, error) {
	donation, err := u.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && donation.DonorID != requesterID {
		return nil, domainerrors.Forbidden("donation belongs to another donor")
	}
	return donation, nil
}

// ListByDonor returns a donor's donation history
func (u *DonationUsecase) ListByDonor(ctx context.Context, donorID uuid.UUID, limit, offset int) ([]*entities.Donation, int, error) {
	return u.donationRepo.GetByDonorID(ctx, donorID, limit, offset)
}

// ListByCampaign returns donations toward a campaign
func (u *DonationUsecase) ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]*entities.Donation, int, error) {
	donations, total, err := u.donationRepo.GetByCampaignID(ctx, campaignID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	// This listing is public; anonymous donors stay anonymous.
	for _, donation := range donations {
		if donation.IsAnonymous {
			donation.DonorID = uuid.Nil
		}
	}
	return donations, total, nil
}

// List returns all donations (admin)
func (u *DonationUsecase) List(ctx context.Context, limit, offset int) ([]*entities.Donation, int, error) {
	return u.donationRepo.List(ctx, limit, offset)
}

// minDonation returns the admin-configured minimum for one-off donations,
// or 0 when no minimum is configured.
func (u *DonationUsecase) minDonation(ctx context.Context) int64 {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil || settings.MinDonationAmount <= 0 {
		return 0
	}
	return settings.MinDonationAmount
}

func (u *DonationUsecase) sendReceipt(ctx context.Context, donation *entities.Donation, receiptNumber string) {
	donor, err := u.userRepo.GetByID(ctx, donation.DonorID)
	if err != nil {
		logger.Warn(ctx, "receipt email skipped, donor lookup failed",
			zap.String("donation_id", donation.ID.String()), zap.Error(err))
		return
	}

	receipted := *donation
	receipted.ReceiptNumber.SetValid(receiptNumber)
	if donation.CampaignID != nil && receipted.Campaign == nil {
		if campaign, err := u.campaignRepo.GetByID(ctx, *donation.CampaignID); err == nil {
			receipted.Campaign = campaign
		}
	}
	u.mail.Dispatch(ctx, email.DonationReceipt(donor.Email, donor.Name, &receipted))
}

// newReceiptNumber builds a receipt id like RCPT-20260829-4F2A9C1B.
func newReceiptNumber(now time.Time) (string, error) {
	token, err := crypto.GenerateRandomToken(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("RCPT-%s-%s", now.Format("20060102"), strings.ToUpper(token)), nil
}
