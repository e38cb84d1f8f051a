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

// VolunteerRepository implements volunteer data operations
type VolunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// Create creates a volunteer profile. The unique index on user_id backs
// the one-application-per-user rule.
func (r *VolunteerRepository) Create(ctx context.Context, volunteer *entities.Volunteer) error {
	if volunteer.ID == uuid.Nil {
		volunteer.ID = utils.GenerateUUIDv7()
	}
	m := &models.Volunteer{
		ID:                    volunteer.ID,
		UserID:                volunteer.UserID,
		ApplicationStatus:     string(volunteer.ApplicationStatus),
		Skills:                encodeStrings(volunteer.Skills),
		Availability:          string(volunteer.Availability),
		Motivation:            volunteer.Motivation,
		EmergencyName:         volunteer.EmergencyContact.Name,
		EmergencyRelationship: volunteer.EmergencyContact.Relationship,
		EmergencyPhone:        volunteer.EmergencyContact.Phone,
		TotalHours:            volunteer.TotalHours,
		Rating:                volunteer.Rating,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	volunteer.CreatedAt = m.CreatedAt
	volunteer.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a volunteer by ID
func (r *VolunteerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Volunteer, error) {
	var m models.Volunteer
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUserID gets a volunteer profile by the owning user
func (r *VolunteerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Volunteer, error) {
	var m models.Volunteer
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// List returns volunteers, optionally filtered by application status
func (r *VolunteerRepository) List(ctx context.Context, status entities.ApplicationStatus, limit, offset int) ([]*entities.Volunteer, int, error) {
	db := GetDB(ctx, r.db)

	query := db.WithContext(ctx).Model(&models.Volunteer{})
	if status != "" {
		query = query.Where("application_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Volunteer
	if err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	volunteers := make([]*entities.Volunteer, 0, len(ms))
	for i := range ms {
		volunteers = append(volunteers, r.toEntity(&ms[i]))
	}
	return volunteers, int(total), nil
}

// UpdateApplicationStatus moves an application through review
func (r *VolunteerRepository) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Volunteer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"application_status": status,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AddAssignment creates an assignment for a volunteer
func (r *VolunteerRepository) AddAssignment(ctx context.Context, assignment *entities.Assignment) error {
	if assignment.ID == uuid.Nil {
		assignment.ID = utils.GenerateUUIDv7()
	}
	m := &models.Assignment{
		ID:          assignment.ID,
		VolunteerID: assignment.VolunteerID,
		Role:        assignment.Role,
		StartDate:   assignment.StartDate,
		EndDate:     assignment.EndDate,
		Status:      string(assignment.Status),
		HoursLogged: assignment.HoursLogged,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	assignment.CreatedAt = m.CreatedAt
	return nil
}

// GetAssignment gets an assignment by ID
func (r *VolunteerRepository) GetAssignment(ctx context.Context, id uuid.UUID) (*entities.Assignment, error) {
	var m models.Assignment
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Assignment{
		ID:          m.ID,
		VolunteerID: m.VolunteerID,
		Role:        m.Role,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      entities.AssignmentStatus(m.Status),
		HoursLogged: m.HoursLogged,
		CreatedAt:   m.CreatedAt,
	}, nil
}

// AddHours increments the assignment's logged hours and the volunteer's
// running total, both as SQL expressions inside one transaction.
func (r *VolunteerRepository) AddHours(ctx context.Context, assignmentID uuid.UUID, hours float64) error {
	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Assignment
		if err := tx.Where("id = ?", assignmentID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrNotFound
			}
			return err
		}

		if err := tx.Model(&models.Assignment{}).
			Where("id = ?", assignmentID).
			Update("hours_logged", gorm.Expr("hours_logged + ?", hours)).Error; err != nil {
			return err
		}

		return tx.Model(&models.Volunteer{}).
			Where("id = ?", m.VolunteerID).
			Updates(map[string]interface{}{
				"total_hours": gorm.Expr("total_hours + ?", hours),
				"updated_at":  time.Now(),
			}).Error
	})
}

// AddReview records a review of a volunteer's work
func (r *VolunteerRepository) AddReview(ctx context.Context, review *entities.VolunteerReview) error {
	if review.ID == uuid.Nil {
		review.ID = utils.GenerateUUIDv7()
	}
	m := &models.VolunteerReview{
		ID:          review.ID,
		VolunteerID: review.VolunteerID,
		ReviewerID:  review.ReviewerID,
		Rating:      review.Rating,
		Comment:     review.Comment,
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	review.CreatedAt = m.CreatedAt
	return nil
}

// GetReviews returns a volunteer's reviews, newest first
func (r *VolunteerRepository) GetReviews(ctx context.Context, volunteerID uuid.UUID) ([]*entities.VolunteerReview, error) {
	var ms []models.VolunteerReview
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).
		Where("volunteer_id = ?", volunteerID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	reviews := make([]*entities.VolunteerReview, 0, len(ms))
	for i := range ms {
		reviews = append(reviews, &entities.VolunteerReview{
			ID:          ms[i].ID,
			VolunteerID: ms[i].VolunteerID,
			ReviewerID:  ms[i].ReviewerID,
			Rating:      ms[i].Rating,
			Comment:     ms[i].Comment,
			CreatedAt:   ms[i].CreatedAt,
		})
	}
	return reviews, nil
}

// SetRating stores the recomputed mean review rating
func (r *VolunteerRepository) SetRating(ctx context.Context, id uuid.UUID, rating float64) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Volunteer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":     rating,
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

// Count returns the total number of volunteers
func (r *VolunteerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Model(&models.Volunteer{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *VolunteerRepository) toEntity(m *models.Volunteer) *entities.Volunteer {
	return &entities.Volunteer{
		ID:                m.ID,
		UserID:            m.UserID,
		ApplicationStatus: entities.ApplicationStatus(m.ApplicationStatus),
		Skills:            decodeStrings(m.Skills),
		Availability:      entities.Availability(m.Availability),
		Motivation:        m.Motivation,
		EmergencyContact: entities.EmergencyContact{
			Name:         m.EmergencyName,
			Relationship: m.EmergencyRelationship,
			Phone:        m.EmergencyPhone,
		},
		TotalHours: m.TotalHours,
		Rating:     m.Rating,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
