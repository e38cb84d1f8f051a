package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/domain/repositories"
	"sahaaya.backend/internal/infrastructure/email"
	"sahaaya.backend/pkg/logger"
)

// VolunteerUsecase handles volunteer applications, assignments and reviews
type VolunteerUsecase struct {
	volunteerRepo repositories.VolunteerRepository
	userRepo      repositories.UserRepository
	mail          MailDispatcher
}

// NewVolunteerUsecase creates a new volunteer usecase
func NewVolunteerUsecase(volunteerRepo repositories.VolunteerRepository, userRepo repositories.UserRepository, mail MailDispatcher) *VolunteerUsecase {
	return &VolunteerUsecase{
		volunteerRepo: volunteerRepo,
		userRepo:      userRepo,
		mail:          mail,
	}
}

// Apply submits a volunteer application. One application per user.
func (u *VolunteerUsecase) Apply(ctx context.Context, userID uuid.UUID, input *entities.ApplyInput) (*entities.Volunteer, error) {
	availability := entities.Availability(input.Availability)
	if !entities.ValidAvailability(availability) {
		return nil, domainerrors.BadRequest("unknown availability window")
	}
	if input.EmergencyContact.Name == "" || input.EmergencyContact.Phone == "" {
		return nil, domainerrors.BadRequest("emergency contact name and phone are required")
	}
	if countDigits(input.EmergencyContact.Phone) < minPhoneDigits {
		return nil, domainerrors.BadRequest("emergency contact phone must have at least 10 digits")
	}

	_, err := u.volunteerRepo.GetByUserID(ctx, userID)
	if err == nil {
		return nil, domainerrors.Conflict("a volunteer application already exists", domainerrors.ErrAlreadyApplied)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	volunteer := &entities.Volunteer{
		UserID:            userID,
		ApplicationStatus: entities.ApplicationStatusPending,
		Skills:            input.Skills,
		Availability:      availability,
		Motivation:        input.Motivation,
		EmergencyContact:  input.EmergencyContact,
	}
	if err := u.volunteerRepo.Create(ctx, volunteer); err != nil {
		return nil, err
	}

	u.sendApplicationReceived(ctx, userID)
	return volunteer, nil
}

const minPhoneDigits = 10

// countDigits counts digits only, so formatted numbers like
// "+91 98000-00000" pass on their digit count.
func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// sendApplicationReceived acknowledges the application by email. A mail
// failure never fails the application itself.
func (u *VolunteerUsecase) sendApplicationReceived(ctx context.Context, userID uuid.UUID) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "application email skipped, user lookup failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	u.mail.Dispatch(ctx, email.VolunteerApplicationReceived(user.Email, user.Name))
}

// GetByID returns a volunteer profile with assignments and reviews
func (u *VolunteerUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Volunteer, error) {
	return u.volunteerRepo.GetByID(ctx, id)
}

// GetByUserID returns the caller's own application
func (u *VolunteerUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Volunteer, error) {
	return u.volunteerRepo.GetByUserID(ctx, userID)
}

// List returns volunteers, optionally filtered by application status
func (u *VolunteerUsecase) List(ctx context.Context, status string, limit, offset int) ([]*entities.Volunteer, int, error) {
	return u.volunteerRepo.List(ctx, entities.ApplicationStatus(status), limit, offset)
}

// Review decides a pending application. Approval promotes the user to the
// VOLUNTEER role and sends a welcome email fire-and-forget.
func (u *VolunteerUsecase) Review(ctx context.Context, id uuid.UUID, status entities.ApplicationStatus) (*entities.Volunteer, error) {
	switch status {
	case entities.ApplicationStatusApproved, entities.ApplicationStatusRejected, entities.ApplicationStatusOnHold:
	default:
		return nil, domainerrors.BadRequest("status must be APPROVED, REJECTED or ON_HOLD")
	}

	volunteer, err := u.volunteerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if volunteer.ApplicationStatus == entities.ApplicationStatusApproved {
		return nil, domainerrors.Conflict("application is already approved", domainerrors.ErrAlreadyExists)
	}

	if err := u.volunteerRepo.UpdateApplicationStatus(ctx, id, status); err != nil {
		return nil, err
	}
	volunteer.ApplicationStatus = status

	if status == entities.ApplicationStatusApproved {
		u.promote(ctx, volunteer.UserID)
	}
	return volunteer, nil
}

// AddAssignment creates an assignment for an approved volunteer
func (u *VolunteerUsecase) AddAssignment(ctx context.Context, volunteerID uuid.UUID, input *entities.AssignmentInput) (*entities.Assignment, error) {
	volunteer, err := u.volunteerRepo.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if volunteer.ApplicationStatus != entities.ApplicationStatusApproved {
		return nil, domainerrors.Conflict("volunteer is not approved", domainerrors.ErrInvalidInput)
	}

	startDate, err := time.Parse(time.RFC3339, input.StartDate)
	if err != nil {
		return nil, domainerrors.BadRequest("startDate must be RFC3339")
	}
	assignment := &entities.Assignment{
		VolunteerID: volunteer.ID,
		Role:        input.Role,
		StartDate:   startDate,
		Status:      entities.AssignmentStatusActive,
	}
	if input.EndDate != "" {
		endDate, err := time.Parse(time.RFC3339, input.EndDate)
		if err != nil {
			return nil, domainerrors.BadRequest("endDate must be RFC3339")
		}
		if !endDate.After(startDate) {
			return nil, domainerrors.BadRequest("endDate must be after startDate")
		}
		assignment.EndDate = &endDate
	}

	if err := u.volunteerRepo.AddAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// LogHours records hours against one of the caller's assignments
func (u *VolunteerUsecase) LogHours(ctx context.Context, userID uuid.UUID, input *entities.LogHoursInput) error {
	assignmentID, err := uuid.Parse(input.AssignmentID)
	if err != nil {
		return domainerrors.BadRequest("invalid assignment id")
	}

	volunteer, err := u.volunteerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	assignment, err := u.volunteerRepo.GetAssignment(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment.VolunteerID != volunteer.ID {
		return domainerrors.Forbidden("assignment belongs to another volunteer")
	}
	if assignment.Status != entities.AssignmentStatusActive {
		return domainerrors.Conflict("assignment is not active", domainerrors.ErrInvalidInput)
	}

	return u.volunteerRepo.AddHours(ctx, assignmentID, input.Hours)
}

// AddReview rates a volunteer and recomputes the mean rating.
func (u *VolunteerUsecase) AddReview(ctx context.Context, reviewerID, volunteerID uuid.UUID, input *entities.ReviewInput) (*entities.VolunteerReview, error) {
	volunteer, err := u.volunteerRepo.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}

	review := &entities.VolunteerReview{
		VolunteerID: volunteer.ID,
		ReviewerID:  reviewerID,
		Rating:      input.Rating,
		Comment:     input.Comment,
	}
	if err := u.volunteerRepo.AddReview(ctx, review); err != nil {
		return nil, err
	}

	reviews, err := u.volunteerRepo.GetReviews(ctx, volunteer.ID)
	if err != nil {
		return nil, err
	}
	if err := u.volunteerRepo.SetRating(ctx, volunteer.ID, entities.MeanRating(reviews)); err != nil {
		return nil, err
	}
	return review, nil
}

// promote moves the user to the VOLUNTEER role and emails them. Neither
// step may fail the approval that triggered it.
func (u *VolunteerUsecase) promote(ctx context.Context, userID uuid.UUID) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "volunteer promotion skipped, user lookup failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	if user.Role == entities.UserRoleDonor {
		user.Role = entities.UserRoleVolunteer
		if err := u.userRepo.Update(ctx, user); err != nil {
			logger.Error(ctx, "failed to promote user to volunteer role",
				zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	u.mail.Dispatch(ctx, email.VolunteerApproved(user.Email, user.Name))
}
