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

type ContactService interface {
	Submit(ctx context.Context, input *entities.CreateContactInput) (*entities.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error)
	List(ctx context.Context, status, priority string, limit, offset int) ([]*entities.Contact, int, error)
	Respond(ctx context.Context, adminID, id uuid.UUID, input *entities.RespondInput) (*entities.Contact, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ContactStatus) (*entities.Contact, error)
}

// ContactHandler handles public inquiry endpoints
type ContactHandler struct {
	contactUsecase ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactUsecase ContactService) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase}
}

// Submit records a public inquiry (no auth)
// POST /api/v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var input entities.CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	contact, err := h.contactUsecase.Submit(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"contact": contact})
}

// List lists inquiries filtered by status and priority (admin)
// GET /api/v1/admin/contacts
func (h *ContactHandler) List(c *gin.Context) {
	limit, offset, params := paginate(c)
	contacts, total, err := h.contactUsecase.List(
		c.Request.Context(), c.Query("status"), c.Query("priority"), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"contacts":   contacts,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// Get gets an inquiry by ID (admin)
// GET /api/v1/admin/contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid contact ID"))
		return
	}

	contact, err := h.contactUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Contact not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"contact": contact})
}

// Respond stores an admin response and emails the submitter (admin)
// POST /api/v1/admin/contacts/:id/respond
func (h *ContactHandler) Respond(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid contact ID"))
		return
	}

	var input entities.RespondInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	contact, err := h.contactUsecase.Respond(c.Request.Context(), adminID, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"contact": contact})
}

// UpdateStatus moves an inquiry through the handling states (admin)
// PATCH /api/v1/admin/contacts/:id/status
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid contact ID"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	contact, err := h.contactUsecase.UpdateStatus(c.Request.Context(), id, entities.ContactStatus(input.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"contact": contact})
}
