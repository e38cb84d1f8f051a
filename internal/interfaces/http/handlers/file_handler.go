package handlers

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/interfaces/http/middleware"
	"sahaaya.backend/internal/interfaces/http/response"
	"sahaaya.backend/pkg/utils"
)

type FileService interface {
	Upload(ctx context.Context, uploaderID uuid.UUID, header *multipart.FileHeader) (*entities.FileAsset, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.FileAsset, error)
	List(ctx context.Context, limit, offset int) ([]*entities.FileAsset, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileHandler handles upload endpoints (admin)
type FileHandler struct {
	fileUsecase FileService
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileUsecase FileService) *FileHandler {
	return &FileHandler{fileUsecase: fileUsecase}
}

// Upload stores a binary in the asset store
// POST /api/v1/admin/files
func (h *FileHandler) Upload(c *gin.Context) {
	uploaderID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("A 'file' form field is required"))
		return
	}

	asset, err := h.fileUsecase.Upload(c.Request.Context(), uploaderID, header)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"file": asset})
}

// List lists uploaded assets
// GET /api/v1/admin/files
func (h *FileHandler) List(c *gin.Context) {
	limit, offset, params := paginate(c)
	files, total, err := h.fileUsecase.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"files":      files,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// Delete removes an asset and its metadata
// DELETE /api/v1/admin/files/:id
func (h *FileHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid file ID"))
		return
	}

	if err := h.fileUsecase.Delete(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("File not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "File deleted"})
}
