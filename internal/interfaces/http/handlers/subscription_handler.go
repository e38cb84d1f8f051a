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
)

type SubscriptionService interface {
	Create(ctx context.Context, donorID uuid.UUID, input *entities.CreateSubscriptionInput) (*entities.CreateSubscriptionResponse, error)
	Cancel(ctx context.Context, donorID, id uuid.UUID) error
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]*entities.Subscription, error)
}

// SubscriptionHandler handles recurring donation endpoints
type SubscriptionHandler struct {
	subscriptionUsecase SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptionUsecase SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUsecase: subscriptionUsecase}
}

// Create opens a recurring donation mandate
// POST /api/v1/donations/create-subscription
func (h *SubscriptionHandler) Create(c *gin.Context) {
	donorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.subscriptionUsecase.Create(c.Request.Context(), donorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ListMine lists the authenticated donor's subscriptions
// GET /api/v1/subscriptions
func (h *SubscriptionHandler) ListMine(c *gin.Context) {
	donorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	subscriptions, err := h.subscriptionUsecase.ListByDonor(c.Request.Context(), donorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subscriptions": subscriptions})
}

// Cancel cancels a subscription
// DELETE /api/v1/subscriptions/:id
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	donorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid subscription ID"))
		return
	}

	if err := h.subscriptionUsecase.Cancel(c.Request.Context(), donorID, id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Subscription not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Subscription cancelled"})
}
