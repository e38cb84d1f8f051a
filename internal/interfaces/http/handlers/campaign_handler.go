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

type CampaignService interface {
	Create(ctx context.Context, creatorID uuid.UUID, input *entities.CreateCampaignInput) (*entities.Campaign, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Campaign, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entities.Campaign, int, error)
	Update(ctx context.Context, requesterID uuid.UUID, isAdmin bool, id uuid.UUID, input *entities.UpdateCampaignInput) (*entities.Campaign, error)
	AddUpdate(ctx context.Context, requesterID uuid.UUID, isAdmin bool, campaignID uuid.UUID, input *entities.CampaignUpdateInput) (*entities.CampaignUpdate, error)
	GetUpdates(ctx context.Context, campaignID uuid.UUID) ([]*entities.CampaignUpdate, error)
}

// CampaignHandler handles campaign endpoints
type CampaignHandler struct {
	campaignUsecase CampaignService
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignUsecase CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignUsecase: campaignUsecase}
}

// Create creates a campaign
// POST /api/v1/campaigns
func (h *CampaignHandler) Create(c *gin.Context) {
	creatorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateCampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	campaign, err := h.campaignUsecase.Create(c.Request.Context(), creatorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"campaign": campaign})
}

// Get gets a campaign by ID
// GET /api/v1/campaigns/:id
func (h *CampaignHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid campaign ID"))
		return
	}

	campaign, err := h.campaignUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Campaign not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaign": campaign})
}

// List lists campaigns, optionally filtered by status
// GET /api/v1/campaigns
func (h *CampaignHandler) List(c *gin.Context) {
	limit, offset, params := paginate(c)
	campaigns, total, err := h.campaignUsecase.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"campaigns":  campaigns,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// Update applies mutable campaign fields
// PATCH /api/v1/campaigns/:id
func (h *CampaignHandler) Update(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid campaign ID"))
		return
	}

	var input entities.UpdateCampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	campaign, err := h.campaignUsecase.Update(c.Request.Context(), requesterID, middleware.IsAdmin(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaign": campaign})
}

// AddUpdate appends to a campaign's update feed
// POST /api/v1/campaigns/:id/updates
func (h *CampaignHandler) AddUpdate(c *gin.Context) {
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid campaign ID"))
		return
	}

	var input entities.CampaignUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	update, err := h.campaignUsecase.AddUpdate(c.Request.Context(), requesterID, middleware.IsAdmin(c), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"update": update})
}

// GetUpdates returns a campaign's update feed
// GET /api/v1/campaigns/:id/updates
func (h *CampaignHandler) GetUpdates(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid campaign ID"))
		return
	}

	updates, err := h.campaignUsecase.GetUpdates(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Campaign not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updates": updates})
}
