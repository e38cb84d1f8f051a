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

type VolunteerService interface {
	Apply(ctx context.Context, userID uuid.UUID, input *entities.ApplyInput) (*entities.Volunteer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Volunteer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Volunteer, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entities.Volunteer, int, error)
	Review(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) (*entities.Volunteer, error)
	AddAssignment(ctx context.Context, volunteerID uuid.UUID, input *entities.AssignmentInput) (*entities.Assignment, error)
	LogHours(ctx context.Context, userID uuid.UUID, input *entities.LogHoursInput) error
	AddReview(ctx context.Context, reviewerID, volunteerID uuid.UUID, input *entities.ReviewInput) (*entities.VolunteerReview, error)
}

// VolunteerHandler handles volunteer endpoints
type VolunteerHandler struct {
	volunteerUsecase VolunteerService
}

// NewVolunteerHandler creates a new volunteer handler
func NewVolunteerHandler(volunteerUsecase VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{volunteerUsecase: volunteerUsecase}
}

// Apply submits a volunteer application
// POST /api/v1/volunteers/apply
func (h *VolunteerHandler) Apply(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	volunteer, err := h.volunteerUsecase.Apply(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"volunteer": volunteer})
}

// Me returns the caller's own application
// GET /api/v1/volunteers/me
func (h *VolunteerHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	volunteer, err := h.volunteerUsecase.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("No volunteer application found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"volunteer": volunteer})
}

// List lists volunteers, optionally filtered by application status (admin)
// GET /api/v1/admin/volunteers
func (h *VolunteerHandler) List(c *gin.Context) {
	limit, offset, params := paginate(c)
	volunteers, total, err := h.volunteerUsecase.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"volunteers": volunteers,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// Get gets a volunteer by ID (admin)
// GET /api/v1/admin/volunteers/:id
func (h *VolunteerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid volunteer ID"))
		return
	}

	volunteer, err := h.volunteerUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Volunteer not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"volunteer": volunteer})
}

// Review decides a pending application (admin)
// POST /api/v1/admin/volunteers/:id/review
func (h *VolunteerHandler) Review(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid volunteer ID"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	volunteer, err := h.volunteerUsecase.Review(c.Request.Context(), id, entities.ApplicationStatus(input.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"volunteer": volunteer})
}

// AddAssignment creates an assignment for an approved volunteer (admin)
// POST /api/v1/admin/volunteers/:id/assignments
func (h *VolunteerHandler) AddAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid volunteer ID"))
		return
	}

	var input entities.AssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	assignment, err := h.volunteerUsecase.AddAssignment(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"assignment": assignment})
}

// LogHours records hours against one of the caller's assignments
// POST /api/v1/volunteers/hours
func (h *VolunteerHandler) LogHours(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.LogHoursInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.volunteerUsecase.LogHours(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Hours logged"})
}

// AddReview rates a volunteer (admin)
// POST /api/v1/admin/volunteers/:id/reviews
func (h *VolunteerHandler) AddReview(c *gin.Context) {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid volunteer ID"))
		return
	}

	var input entities.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	review, err := h.volunteerUsecase.AddReview(c.Request.Context(), reviewerID, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": review})
}
