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

type NotificationService interface {
	Create(ctx context.Context, authorID uuid.UUID, input *entities.CreateNotificationInput) (*entities.Notification, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Notification, int, error)
	Send(ctx context.Context, id uuid.UUID) (*entities.Notification, error)
}

// NotificationHandler handles broadcast endpoints (admin)
type NotificationHandler struct {
	notificationUsecase NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUsecase NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// Create drafts a broadcast
// POST /api/v1/admin/notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	notification, err := h.notificationUsecase.Create(c.Request.Context(), authorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"notification": notification})
}

// List lists broadcasts, newest first
// GET /api/v1/admin/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	limit, offset, params := paginate(c)
	notifications, total, err := h.notificationUsecase.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": notifications,
		"pagination":    utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// Get gets a broadcast by ID
// GET /api/v1/admin/notifications/:id
func (h *NotificationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid notification ID"))
		return
	}

	notification, err := h.notificationUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Notification not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notification": notification})
}

// Send fans a draft out to its audience
// POST /api/v1/admin/notifications/:id/send
func (h *NotificationHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid notification ID"))
		return
	}

	notification, err := h.notificationUsecase.Send(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notification": notification})
}
