package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/usecases"
)

func TestBlogUsecase_Create_SlugFromTitle(t *testing.T) {
	blogs := new(MockBlogRepository)
	uc := usecases.NewBlogUsecase(blogs)
	ctx := context.Background()

	blogs.On("GetBySlug", ctx, "annual-report-2026-highlights").Return(nil, domainerrors.ErrNotFound).Once()
	blogs.On("Create", ctx, mock.MatchedBy(func(p *entities.BlogPost) bool {
		return p.Slug == "annual-report-2026-highlights"
	})).Return(nil).Once()

	post, err := uc.Create(ctx, uuid.New(), &entities.CreateBlogPostInput{
		Title:   "Annual Report 2026: Highlights!",
		Content: "A year in review.",
	})

	require.NoError(t, err)
	assert.Equal(t, "annual-report-2026-highlights", post.Slug)
}

func TestBlogUsecase_Create_SlugCollisionGetsSuffix(t *testing.T) {
	blogs := new(MockBlogRepository)
	uc := usecases.NewBlogUsecase(blogs)
	ctx := context.Background()

	blogs.On("GetBySlug", ctx, "hello-world").
		Return(&entities.BlogPost{Slug: "hello-world"}, nil).Once()
	blogs.On("GetBySlug", ctx, "hello-world-2").Return(nil, domainerrors.ErrNotFound).Once()
	blogs.On("Create", ctx, mock.MatchedBy(func(p *entities.BlogPost) bool {
		return p.Slug == "hello-world-2"
	})).Return(nil).Once()

	post, err := uc.Create(ctx, uuid.New(), &entities.CreateBlogPostInput{
		Title:   "Hello, World",
		Content: "First post.",
	})

	require.NoError(t, err)
	assert.Equal(t, "hello-world-2", post.Slug)
}

func TestBlogUsecase_GetBySlug_HidesDraftsFromPublic(t *testing.T) {
	blogs := new(MockBlogRepository)
	uc := usecases.NewBlogUsecase(blogs)
	ctx := context.Background()

	draft := &entities.BlogPost{Slug: "unreleased", Published: false}
	blogs.On("GetBySlug", ctx, "unreleased").Return(draft, nil).Twice()

	_, err := uc.GetBySlug(ctx, "unreleased", false)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	post, err := uc.GetBySlug(ctx, "unreleased", true)
	require.NoError(t, err)
	assert.Equal(t, "unreleased", post.Slug)
}

func TestBlogUsecase_Update_SlugStableOncePublished(t *testing.T) {
	blogs := new(MockBlogRepository)
	uc := usecases.NewBlogUsecase(blogs)
	ctx := context.Background()
	postID := uuid.New()

	blogs.On("GetByID", ctx, postID).Return(&entities.BlogPost{
		ID:        postID,
		Title:     "Old Title",
		Slug:      "old-title",
		Published: true,
	}, nil).Once()
	blogs.On("Update", ctx, mock.MatchedBy(func(p *entities.BlogPost) bool {
		return p.Title == "New Title" && p.Slug == "old-title"
	})).Return(nil).Once()

	post, err := uc.Update(ctx, postID, &entities.CreateBlogPostInput{
		Title:     "New Title",
		Published: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "old-title", post.Slug)
}
