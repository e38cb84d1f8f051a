package repositories

import (
	"context"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	ListByRole(ctx context.Context, role entities.UserRole) ([]*entities.User, error)
	List(ctx context.Context, limit, offset int) ([]*entities.User, int, error)
	Count(ctx context.Context) (int64, error)
}
