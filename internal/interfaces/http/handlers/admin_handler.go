package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"sahaaya.backend/internal/domain/entities"
	"sahaaya.backend/internal/interfaces/http/response"
	"sahaaya.backend/internal/usecases"
	"sahaaya.backend/pkg/utils"
)

type AdminService interface {
	GetDashboardStats(ctx context.Context) (*usecases.DashboardStats, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*entities.User, int, error)
}

// AdminHandler handles back-office endpoints
type AdminHandler struct {
	adminUsecase AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase AdminService) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// GetStats returns the dashboard counters
// GET /api/v1/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUsecase.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// ListUsers lists users for the back office
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, offset, params := paginate(c)
	users, total, err := h.adminUsecase.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users":      users,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}
