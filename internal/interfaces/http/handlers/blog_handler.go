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

type BlogService interface {
	Create(ctx context.Context, authorID uuid.UUID, input *entities.CreateBlogPostInput) (*entities.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, isAdmin bool) (*entities.BlogPost, error)
	List(ctx context.Context, isAdmin bool, limit, offset int) ([]*entities.BlogPost, int, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.CreateBlogPostInput) (*entities.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BlogHandler handles content endpoints
type BlogHandler struct {
	blogUsecase BlogService
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogUsecase BlogService) *BlogHandler {
	return &BlogHandler{blogUsecase: blogUsecase}
}

// List lists posts; drafts are only visible to admins
// GET /api/v1/blog
func (h *BlogHandler) List(c *gin.Context) {
	limit, offset, params := paginate(c)
	posts, total, err := h.blogUsecase.List(c.Request.Context(), middleware.IsAdmin(c), limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"posts":      posts,
		"pagination": utils.CalculateMeta(int64(total), params.Page, params.Limit),
	})
}

// GetBySlug gets a post by slug
// GET /api/v1/blog/:slug
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blogUsecase.GetBySlug(c.Request.Context(), c.Param("slug"), middleware.IsAdmin(c))
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Blog post not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"post": post})
}

// Create creates a post (admin)
// POST /api/v1/admin/blog
func (h *BlogHandler) Create(c *gin.Context) {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateBlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	post, err := h.blogUsecase.Create(c.Request.Context(), authorID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"post": post})
}

// Update modifies a post (admin)
// PUT /api/v1/admin/blog/:id
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid post ID"))
		return
	}

	var input entities.CreateBlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	post, err := h.blogUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"post": post})
}

// Delete removes a post (admin)
// DELETE /api/v1/admin/blog/:id
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid post ID"))
		return
	}

	if err := h.blogUsecase.Delete(c.Request.Context(), id); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("Blog post not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Post deleted"})
}
