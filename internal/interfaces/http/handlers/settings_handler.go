package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/interfaces/http/response"
)

type SettingsService interface {
	Get(ctx context.Context) (*entities.Settings, error)
	Update(ctx context.Context, input *entities.UpdateSettingsInput) (*entities.Settings, error)
}

// SettingsHandler handles organisation settings endpoints (admin)
type SettingsHandler struct {
	settingsUsecase SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsUsecase SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsUsecase: settingsUsecase}
}

// Get returns the settings document
// GET /api/v1/admin/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsUsecase.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}

// Update replaces the settings document
// PUT /api/v1/admin/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var input entities.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	settings, err := h.settingsUsecase.Update(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}
