package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/infrastructure/models"
	"sahaaya.backend/pkg/utils"
)

// ContactRepository implements inquiry data operations
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create creates a new inquiry
func (r *ContactRepository) Create(ctx context.Context, contact *entities.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = utils.GenerateUUIDv7()
	}
	m := &models.Contact{
		ID:       contact.ID,
		Name:     contact.Name,
		Email:    contact.Email,
		Subject:  contact.Subject,
		Message:  contact.Message,
		Status:   string(contact.Status),
		Priority: string(contact.Priority),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	contact.CreatedAt = m.CreatedAt
	contact.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an inquiry by ID
func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error) {
	var m models.Contact
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns inquiries filtered by status and priority
func (r *ContactRepository) List(ctx context.Context, status entities.ContactStatus, priority entities.ContactPriority, limit, offset int) ([]*entities.Contact, int, error) {
	db := GetDB(ctx, r.db)

	query := db.WithContext(ctx).Model(&models.Contact{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if priority != "" {
		query = query.Where("priority = ?", priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Contact
	if err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	contacts := make([]*entities.Contact, 0, len(ms))
	for i := range ms {
		contacts = append(contacts, r.toEntity(&ms[i]))
	}
	return contacts, int(total), nil
}

// Update persists inquiry handling state
func (r *ContactRepository) Update(ctx context.Context, contact *entities.Contact) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Contact{}).
		Where("id = ?", contact.ID).
		Updates(map[string]interface{}{
			"status":       contact.Status,
			"priority":     contact.Priority,
			"response":     contact.Response,
			"responded_by": contact.RespondedBy,
			"responded_at": contact.RespondedAt,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) toEntity(m *models.Contact) *entities.Contact {
	return &entities.Contact{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Subject:     m.Subject,
		Message:     m.Message,
		Status:      entities.ContactStatus(m.Status),
		Priority:    entities.ContactPriority(m.Priority),
		Response:    m.Response,
		RespondedBy: m.RespondedBy,
		RespondedAt: m.RespondedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// BlogRepository implements content data operations
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create creates a new blog post
func (r *BlogRepository) Create(ctx context.Context, post *entities.BlogPost) error {
	if post.ID == uuid.Nil {
		post.ID = utils.GenerateUUIDv7()
	}
	m := &models.BlogPost{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Slug:      post.Slug,
		Content:   post.Content,
		Tags:      encodeStrings(post.Tags),
		Published: post.Published,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	post.CreatedAt = m.CreatedAt
	post.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a blog post by ID
func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BlogPost, error) {
	var m models.BlogPost
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.blogToEntity(&m), nil
}

// GetBySlug gets a blog post by its slug
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	var m models.BlogPost
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.blogToEntity(&m), nil
}

// List returns blog posts, newest first
func (r *BlogRepository) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*entities.BlogPost, int, error) {
	db := GetDB(ctx, r.db)

	query := db.WithContext(ctx).Model(&models.BlogPost{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.BlogPost
	if err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*entities.BlogPost, 0, len(ms))
	for i := range ms {
		posts = append(posts, r.blogToEntity(&ms[i]))
	}
	return posts, int(total), nil
}

// Update persists mutable blog post fields
func (r *BlogRepository) Update(ctx context.Context, post *entities.BlogPost) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.BlogPost{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":      post.Title,
			"slug":       post.Slug,
			"content":    post.Content,
			"tags":       encodeStrings(post.Tags),
			"published":  post.Published,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete soft-deletes a blog post
func (r *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.BlogPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) blogToEntity(m *models.BlogPost) *entities.BlogPost {
	return &entities.BlogPost{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Title:     m.Title,
		Slug:      m.Slug,
		Content:   m.Content,
		Tags:      decodeStrings(m.Tags),
		Published: m.Published,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
