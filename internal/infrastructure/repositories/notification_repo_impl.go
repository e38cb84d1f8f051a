package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/infrastructure/models"
	"sahaaya.backend/pkg/utils"
)

// NotificationRepository implements broadcast data operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new broadcast in DRAFT state
func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = utils.GenerateUUIDv7()
	}
	m := &models.Notification{
		ID:       notification.ID,
		AuthorID: notification.AuthorID,
		Title:    notification.Title,
		Body:     notification.Body,
		Audience: string(notification.Audience),
		Status:   string(notification.Status),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	notification.CreatedAt = m.CreatedAt
	notification.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a broadcast by ID
func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	var m models.Notification
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns broadcasts, newest first
func (r *NotificationRepository) List(ctx context.Context, limit, offset int) ([]*entities.Notification, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Notification
	if err := db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]*entities.Notification, 0, len(ms))
	for i := range ms {
		notifications = append(notifications, r.toEntity(&ms[i]))
	}
	return notifications, int(total), nil
}

// MarkSent transitions DRAFT -> SENT. Sending is one-shot: a broadcast
// already sent matches zero rows.
func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND status = ?", id, entities.NotificationStatusDraft).
		Updates(map[string]interface{}{
			"status":     entities.NotificationStatusSent,
			"sent_at":    now,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) toEntity(m *models.Notification) *entities.Notification {
	return &entities.Notification{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Title:     m.Title,
		Body:      m.Body,
		Audience:  entities.UserRole(m.Audience),
		Status:    entities.NotificationStatus(m.Status),
		SentAt:    m.SentAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FileRepository implements upload metadata operations
type FileRepository struct {
	db *gorm.DB
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

// Create records upload metadata
func (r *FileRepository) Create(ctx context.Context, asset *entities.FileAsset) error {
	if asset.ID == uuid.Nil {
		asset.ID = utils.GenerateUUIDv7()
	}
	m := &models.FileAsset{
		ID:         asset.ID,
		URL:        asset.URL,
		PublicID:   asset.PublicID,
		Bytes:      asset.Bytes,
		Format:     asset.Format,
		Folder:     asset.Folder,
		UploadedBy: asset.UploadedBy,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	asset.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets upload metadata by ID
func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.FileAsset, error) {
	var m models.FileAsset
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.FileAsset{
		ID:         m.ID,
		URL:        m.URL,
		PublicID:   m.PublicID,
		Bytes:      m.Bytes,
		Format:     m.Format,
		Folder:     m.Folder,
		UploadedBy: m.UploadedBy,
		CreatedAt:  m.CreatedAt,
	}, nil
}

// List returns upload metadata, newest first
func (r *FileRepository) List(ctx context.Context, limit, offset int) ([]*entities.FileAsset, int, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.FileAsset{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.FileAsset
	if err := db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	assets := make([]*entities.FileAsset, 0, len(ms))
	for i := range ms {
		assets = append(assets, &entities.FileAsset{
			ID:         ms[i].ID,
			URL:        ms[i].URL,
			PublicID:   ms[i].PublicID,
			Bytes:      ms[i].Bytes,
			Format:     ms[i].Format,
			Folder:     ms[i].Folder,
			UploadedBy: ms[i].UploadedBy,
			CreatedAt:  ms[i].CreatedAt,
		})
	}
	return assets, int(total), nil
}

// Delete soft-deletes upload metadata
func (r *FileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.FileAsset{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// settingsRowID pins the settings table to a single row.
const settingsRowID = 1

// SettingsRepository stores the organisation settings as one JSON
// document in a single-row table.
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings document, or ErrNotFound before first Put
func (r *SettingsRepository) Get(ctx context.Context) (*entities.Settings, error) {
	var m models.Setting
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", settingsRowID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	var settings entities.Settings
	if err := json.Unmarshal([]byte(m.Document), &settings); err != nil {
		return nil, err
	}
	settings.UpdatedAt = m.UpdatedAt
	return &settings, nil
}

// Put upserts the settings document
func (r *SettingsRepository) Put(ctx context.Context, settings *entities.Settings) error {
	doc, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	db := GetDB(ctx, r.db)
	now := time.Now()
	result := db.WithContext(ctx).Model(&models.Setting{}).
		Where("id = ?", settingsRowID).
		Updates(map[string]interface{}{
			"document":   string(doc),
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return db.WithContext(ctx).Create(&models.Setting{
			ID:        settingsRowID,
			Document:  string(doc),
			UpdatedAt: now,
		}).Error
	}
	return nil
}
