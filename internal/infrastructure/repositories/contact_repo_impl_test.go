package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
)

func TestContactRepository_Flow(t *testing.T) {
	db := newTestDB(t)
	createContactTable(t, db)
	repo := NewContactRepository(db)
	ctx := context.Background()

	c := &entities.Contact{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.org",
		Subject:  "Tax receipt missing",
		Message:  "I donated last week but never received a receipt.",
		Status:   entities.ContactStatusNew,
		Priority: entities.ContactPriorityMedium,
	}
	require.NoError(t, repo.Create(ctx, c))

	adminID := uuid.New()
	now := time.Now()
	c.Status = entities.ContactStatusResolved
	c.Response = "Receipt re-sent to your email."
	c.RespondedBy = &adminID
	c.RespondedAt = &now
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ContactStatusResolved, got.Status)
	require.Equal(t, "Receipt re-sent to your email.", got.Response)
	require.NotNil(t, got.RespondedBy)

	resolved, total, err := repo.List(ctx, entities.ContactStatusResolved, "", 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, resolved, 1)

	urgent, total, err := repo.List(ctx, "", entities.ContactPriorityUrgent, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 0, total)
	require.Empty(t, urgent)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBlogRepository_Flow(t *testing.T) {
	db := newTestDB(t)
	createBlogTable(t, db)
	repo := NewBlogRepository(db)
	ctx := context.Background()

	p := &entities.BlogPost{
		AuthorID:  uuid.New(),
		Title:     "Annual Impact Report",
		Slug:      "annual-impact-report",
		Content:   "This year we reached 12 villages...",
		Tags:      []string{"impact", "report"},
		Published: false,
	}
	require.NoError(t, repo.Create(ctx, p))

	bySlug, err := repo.GetBySlug(ctx, "annual-impact-report")
	require.NoError(t, err)
	require.Equal(t, p.ID, bySlug.ID)
	require.Equal(t, []string{"impact", "report"}, bySlug.Tags)

	// Drafts stay out of the public listing.
	public, total, err := repo.List(ctx, true, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 0, total)
	require.Empty(t, public)

	bySlug.Published = true
	require.NoError(t, repo.Update(ctx, bySlug))

	public, total, err = repo.List(ctx, true, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, public, 1)

	// Slug is unique.
	require.Error(t, repo.Create(ctx, &entities.BlogPost{
		AuthorID: uuid.New(),
		Title:    "Duplicate",
		Slug:     "annual-impact-report",
		Content:  "x",
	}))

	require.NoError(t, repo.Delete(ctx, p.ID))
	_, err = repo.GetByID(ctx, p.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Delete(ctx, p.ID), domainerrors.ErrNotFound)
}
