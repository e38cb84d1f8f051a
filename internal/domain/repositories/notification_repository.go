package repositories

import (
	"context"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
)

// NotificationRepository defines broadcast data operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Notification, int, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

// FileRepository defines upload metadata operations
type FileRepository interface {
	Create(ctx context.Context, asset *entities.FileAsset) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.FileAsset, error)
	List(ctx context.Context, limit, offset int) ([]*entities.FileAsset, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettingsRepository stores the single settings document
type SettingsRepository interface {
	Get(ctx context.Context) (*entities.Settings, error)
	Put(ctx context.Context, settings *entities.Settings) error
}
