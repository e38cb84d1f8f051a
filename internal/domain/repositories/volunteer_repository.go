package repositories

import (
	"context"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
)

// VolunteerRepository defines volunteer data operations
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *entities.Volunteer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Volunteer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Volunteer, error)
	List(ctx context.Context, status entities.ApplicationStatus, limit, offset int) ([]*entities.Volunteer, int, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) error
	AddAssignment(ctx context.Context, assignment *entities.Assignment) error
	GetAssignment(ctx context.Context, id uuid.UUID) (*entities.Assignment, error)
	// AddHours increments the assignment's logged hours and the
	// volunteer's total atomically.
	AddHours(ctx context.Context, assignmentID uuid.UUID, hours float64) error
	AddReview(ctx context.Context, review *entities.VolunteerReview) error
	GetReviews(ctx context.Context, volunteerID uuid.UUID) ([]*entities.VolunteerReview, error)
	SetRating(ctx context.Context, id uuid.UUID, rating float64) error
	Count(ctx context.Context) (int64, error)
}
