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

type EventService interface {
	Create(ctx context.Context, input *entities.CreateEventInput) (*entities.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Event, int, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateEventInput) (*entities.Event, error)
	Register(ctx context.Context, eventID, userID uuid.UUID) error
	GetAttendees(ctx context.Context, eventID uuid.UUID) ([]*entities.Attendee, error)
}

// EventHandler handles event endpoints
type EventHandler struct {
	eventUsecase EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventUsecase EventService) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

// Create creates an event (admin)
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var input entities.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	event, err := h.eventUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"event": event})
}

// Get gets an event by ID
// GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event ID"))
		return
	}

	event, err := h.eventUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Event not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"event": event})
}

// List lists events ordered by date
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	limit, offset, params := paginate(c)
	events, total, err := h.eventUsecase.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"events":     events,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// Update applies mutable event fields (admin)
// PATCH /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event ID"))
		return
	}

	var input entities.UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	event, err := h.eventUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"event": event})
}

// Register registers the authenticated user for an event
// POST /api/v1/events/:id/register
func (h *EventHandler) Register(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event ID"))
		return
	}

	if err := h.eventUsecase.Register(c.Request.Context(), eventID, userID); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Event not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "Registered"})
}

// GetAttendees returns an event's roster (admin)
// GET /api/v1/events/:id/attendees
func (h *EventHandler) GetAttendees(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid event ID"))
		return
	}

	attendees, err := h.eventUsecase.GetAttendees(c.Request.Context(), eventID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Event not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"attendees": attendees})
}
