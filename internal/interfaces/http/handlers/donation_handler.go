package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/interfaces/http/middleware"
	"sahaaya.backend/internal/interfaces/http/response"
	"sahaaya.backend/pkg/utils"
)

type DonationService interface {
	CreateOrder(ctx context.Context, donorID uuid.UUID, input *entities.CreateOrderInput) (*entities.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, donorID uuid.UUID, input *entities.VerifyPaymentInput) (*entities.VerifyPaymentResponse, error)
	Refund(ctx context.Context, donationID uuid.UUID) (*entities.Donation, error)
	GetByID(ctx context.Context, requesterID uuid.UUID, isAdmin bool, id uuid.UUID) (*entities.Donation, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID, limit, offset int) ([]*entities.Donation, int, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]*entities.Donation, int, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Donation, int, error)
}

// DonationHandler handles donation endpoints
type DonationHandler struct {
	donationUsecase DonationService
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationUsecase DonationService) *DonationHandler {
	return &DonationHandler{donationUsecase: donationUsecase}
}

// CreateOrder opens a donation order at the payment gateway
// POST /api/v1/donations/create-order
func (h *DonationHandler) CreateOrder(c *gin.Context) {
	donorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.donationUsecase.CreateOrder(c.Request.Context(), donorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// VerifyPayment verifies the gateway callback signature
// POST /api/v1/donations/verify
func (h *DonationHandler) VerifyPayment(c *gin.Context) {
	donorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.donationUsecase.VerifyPayment(c.Request.Context(), donorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetDonation gets a donation by ID
// GET /api/v1/donations/:id
func (h *DonationHandler) GetDonation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid donation ID"))
		return
	}

	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	donation, err := h.donationUsecase.GetByID(c.Request.Context(), requesterID, middleware.IsAdmin(c), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Donation not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"donation": donation})
}

// ListMine lists the authenticated donor's donations
// GET /api/v1/donations
func (h *DonationHandler) ListMine(c *gin.Context) {
	donorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	limit, offset, params := paginate(c)
	donations, total, err := h.donationUsecase.ListByDonor(c.Request.Context(), donorID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"donations":  donations,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// ListByCampaign lists donations toward a campaign
// GET /api/v1/campaigns/:id/donations
func (h *DonationHandler) ListByCampaign(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid campaign ID"))
		return
	}

	limit, offset, params := paginate(c)
	donations, total, err := h.donationUsecase.ListByCampaign(c.Request.Context(), campaignID, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"donations":  donations,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// ListAll lists all donations (admin)
// GET /api/v1/admin/donations
func (h *DonationHandler) ListAll(c *gin.Context) {
	limit, offset, params := paginate(c)
	donations, total, err := h.donationUsecase.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"donations":  donations,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// Refund refunds a completed donation (admin)
// POST /api/v1/admin/donations/:id/refund
func (h *DonationHandler) Refund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid donation ID"))
		return
	}

	donation, err := h.donationUsecase.Refund(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"donation": donation})
}
