package usecases

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/domain/repositories"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// BlogUsecase handles content publication
type BlogUsecase struct {
	blogRepo repositories.BlogRepository
}

// NewBlogUsecase creates a new blog usecase
func NewBlogUsecase(blogRepo repositories.BlogRepository) *BlogUsecase {
	return &BlogUsecase{blogRepo: blogRepo}
}

// Create creates a blog post with a slug derived from the title. When the
// slug is taken, a numeric suffix disambiguates.
func (u *BlogUsecase) Create(ctx context.Context, authorID uuid.UUID, input *entities.CreateBlogPostInput) (*entities.BlogPost, error) {
	slug, err := u.uniqueSlug(ctx, slugify(input.Title))
	if err != nil {
		return nil, err
	}

	post := &entities.BlogPost{
		AuthorID:  authorID,
		Title:     input.Title,
		Slug:      slug,
		Content:   input.Content,
		Tags:      input.Tags,
		Published: input.Published,
	}
	if err := u.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetBySlug returns a post by slug; unpublished posts are only visible to
// admins.
func (u *BlogUsecase) GetBySlug(ctx context.Context, slug string, isAdmin bool) (*entities.BlogPost, error) {
	post, err := u.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published && !isAdmin {
		return nil, domainerrors.NotFound("blog post not found")
	}
	return post, nil
}

// List returns posts; non-admin callers see published posts only
func (u *BlogUsecase) List(ctx context.Context, isAdmin bool, limit, offset int) ([]*entities.BlogPost, int, error) {
	return u.blogRepo.List(ctx, !isAdmin, limit, offset)
}

// Update modifies a post's content or visibility. The slug is stable once
// published so shared links keep working.
func (u *BlogUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.CreateBlogPostInput) (*entities.BlogPost, error) {
	post, err := u.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" && input.Title != post.Title && !post.Published {
		slug, err := u.uniqueSlug(ctx, slugify(input.Title))
		if err != nil {
			return nil, err
		}
		post.Slug = slug
	}
	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	post.Published = input.Published

	if err := u.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete soft-deletes a post
func (u *BlogUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.blogRepo.Delete(ctx, id)
}

func (u *BlogUsecase) uniqueSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		_, err := u.blogRepo.GetBySlug(ctx, slug)
		if errors.Is(err, domainerrors.ErrNotFound) {
			return slug, nil
		}
		if err != nil {
			return "", err
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "post"
	}
	return slug
}
