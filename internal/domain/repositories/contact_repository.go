package repositories

import (
	"context"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
)

// ContactRepository defines inquiry data operations
type ContactRepository interface {
	Create(ctx context.Context, contact *entities.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error)
	List(ctx context.Context, status entities.ContactStatus, priority entities.ContactPriority, limit, offset int) ([]*entities.Contact, int, error)
	Update(ctx context.Context, contact *entities.Contact) error
}

// BlogRepository defines content data operations
type BlogRepository interface {
	Create(ctx context.Context, post *entities.BlogPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*entities.BlogPost, error)
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*entities.BlogPost, int, error)
	Update(ctx context.Context, post *entities.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}
