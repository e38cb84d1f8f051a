package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/usecases"
)

func newVolunteerUsecase() (*usecases.VolunteerUsecase, *MockVolunteerRepository, *MockUserRepository, *MockMailDispatcher) {
	volunteers := new(MockVolunteerRepository)
	users := new(MockUserRepository)
	mail := new(MockMailDispatcher)
	return usecases.NewVolunteerUsecase(volunteers, users, mail), volunteers, users, mail
}

func validApplyInput() *entities.ApplyInput {
	return &entities.ApplyInput{
		Skills:       []string{"first-aid", "driving"},
		Availability: "WEEKENDS",
		Motivation:   "I want to help at medical camps.",
		EmergencyContact: entities.EmergencyContact{
			Name:         "Meera",
			Relationship: "sister",
			Phone:        "+91-9800000000",
		},
	}
}

func TestVolunteerUsecase_Apply_Success(t *testing.T) {
	uc, volunteers, users, mail := newVolunteerUsecase()
	ctx := context.Background()
	userID := uuid.New()

	volunteers.On("GetByUserID", ctx, userID).Return(nil, domainerrors.ErrNotFound).Once()
	volunteers.On("Create", ctx, mock.MatchedBy(func(v *entities.Volunteer) bool {
		return v.ApplicationStatus == entities.ApplicationStatusPending && v.UserID == userID
	})).Return(nil).Once()
	users.On("GetByID", ctx, userID).
		Return(&entities.User{ID: userID, Email: "applicant@example.com", Name: "Meena"}, nil).Once()
	mail.On("Dispatch", ctx, mock.Anything).Once()

	volunteer, err := uc.Apply(ctx, userID, validApplyInput())

	require.NoError(t, err)
	assert.Equal(t, entities.ApplicationStatusPending, volunteer.ApplicationStatus)
	volunteers.AssertExpectations(t)
	mail.AssertNumberOfCalls(t, "Dispatch", 1)
}

func TestVolunteerUsecase_Apply_MailFailureDoesNotFailApplication(t *testing.T) {
	uc, volunteers, users, mail := newVolunteerUsecase()
	ctx := context.Background()
	userID := uuid.New()

	volunteers.On("GetByUserID", ctx, userID).Return(nil, domainerrors.ErrNotFound).Once()
	volunteers.On("Create", ctx, mock.Anything).Return(nil).Once()
	users.On("GetByID", ctx, userID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Apply(ctx, userID, validApplyInput())

	require.NoError(t, err)
	mail.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestVolunteerUsecase_Apply_AlreadyApplied(t *testing.T) {
	uc, volunteers, _, _ := newVolunteerUsecase()
	ctx := context.Background()
	userID := uuid.New()

	volunteers.On("GetByUserID", ctx, userID).
		Return(&entities.Volunteer{UserID: userID}, nil).Once()

	_, err := uc.Apply(ctx, userID, validApplyInput())

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyApplied)
}

func TestVolunteerUsecase_Apply_Validation(t *testing.T) {
	uc, volunteers, _, _ := newVolunteerUsecase()
	ctx := context.Background()

	badAvailability := validApplyInput()
	badAvailability.Availability = "NIGHTS"
	_, err := uc.Apply(ctx, uuid.New(), badAvailability)
	assert.Error(t, err)

	noContact := validApplyInput()
	noContact.EmergencyContact.Phone = ""
	_, err = uc.Apply(ctx, uuid.New(), noContact)
	assert.Error(t, err)

	volunteers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVolunteerUsecase_Apply_ShortPhoneRejectedBeforeWrite(t *testing.T) {
	uc, volunteers, users, _ := newVolunteerUsecase()
	ctx := context.Background()

	cases := map[string]string{
		"five digits":          "12345",
		"nine digits":          "980000000",
		"separators only pad":  "+9-8 0(000)00",
		"letters do not count": "ninedigits",
	}
	for name, phone := range cases {
		t.Run(name, func(t *testing.T) {
			input := validApplyInput()
			input.EmergencyContact.Phone = phone

			_, err := uc.Apply(ctx, uuid.New(), input)

			var appErr *domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.Status)
		})
	}

	// A formatted number with ten digits still passes the digit count.
	formatted := validApplyInput()
	formatted.EmergencyContact.Phone = "+91 98000-00000"
	userID := uuid.New()
	volunteers.On("GetByUserID", ctx, userID).Return(nil, domainerrors.ErrNotFound).Once()
	volunteers.On("Create", ctx, mock.Anything).Return(nil).Once()
	users.On("GetByID", ctx, userID).Return(nil, domainerrors.ErrNotFound).Once()
	_, err := uc.Apply(ctx, userID, formatted)
	require.NoError(t, err)
}

func TestVolunteerUsecase_Review_ApprovePromotesUser(t *testing.T) {
	uc, volunteers, users, mail := newVolunteerUsecase()
	ctx := context.Background()
	volunteerID := uuid.New()
	userID := uuid.New()

	volunteers.On("GetByID", ctx, volunteerID).Return(&entities.Volunteer{
		ID:                volunteerID,
		UserID:            userID,
		ApplicationStatus: entities.ApplicationStatusPending,
	}, nil).Once()
	volunteers.On("UpdateApplicationStatus", ctx, volunteerID, entities.ApplicationStatusApproved).Return(nil).Once()
	users.On("GetByID", ctx, userID).
		Return(&entities.User{ID: userID, Email: "vol@example.com", Name: "Ravi", Role: entities.UserRoleDonor}, nil).Once()
	users.On("Update", ctx, mock.MatchedBy(func(u *entities.User) bool {
		return u.Role == entities.UserRoleVolunteer
	})).Return(nil).Once()
	mail.On("Dispatch", ctx, mock.Anything).Once()

	volunteer, err := uc.Review(ctx, volunteerID, entities.ApplicationStatusApproved)

	require.NoError(t, err)
	assert.Equal(t, entities.ApplicationStatusApproved, volunteer.ApplicationStatus)
	users.AssertExpectations(t)
	mail.AssertExpectations(t)
}

func TestVolunteerUsecase_Review_RejectSkipsPromotion(t *testing.T) {
	uc, volunteers, users, mail := newVolunteerUsecase()
	ctx := context.Background()
	volunteerID := uuid.New()

	volunteers.On("GetByID", ctx, volunteerID).Return(&entities.Volunteer{
		ID:                volunteerID,
		UserID:            uuid.New(),
		ApplicationStatus: entities.ApplicationStatusPending,
	}, nil).Once()
	volunteers.On("UpdateApplicationStatus", ctx, volunteerID, entities.ApplicationStatusRejected).Return(nil).Once()

	_, err := uc.Review(ctx, volunteerID, entities.ApplicationStatusRejected)

	require.NoError(t, err)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mail.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestVolunteerUsecase_AddAssignment_RequiresApproval(t *testing.T) {
	uc, volunteers, _, _ := newVolunteerUsecase()
	ctx := context.Background()
	volunteerID := uuid.New()

	volunteers.On("GetByID", ctx, volunteerID).Return(&entities.Volunteer{
		ID:                volunteerID,
		ApplicationStatus: entities.ApplicationStatusPending,
	}, nil).Once()

	_, err := uc.AddAssignment(ctx, volunteerID, &entities.AssignmentInput{
		Role:      "camp coordinator",
		StartDate: time.Now().Format(time.RFC3339),
	})

	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
	volunteers.AssertNotCalled(t, "AddAssignment", mock.Anything, mock.Anything)
}

func TestVolunteerUsecase_LogHours_OwnershipAndState(t *testing.T) {
	uc, volunteers, _, _ := newVolunteerUsecase()
	ctx := context.Background()
	userID := uuid.New()
	volunteerID := uuid.New()
	assignmentID := uuid.New()

	volunteers.On("GetByUserID", ctx, userID).
		Return(&entities.Volunteer{ID: volunteerID, UserID: userID}, nil).Times(3)

	volunteers.On("GetAssignment", ctx, assignmentID).Return(&entities.Assignment{
		ID:          assignmentID,
		VolunteerID: volunteerID,
		Status:      entities.AssignmentStatusActive,
	}, nil).Once()
	volunteers.On("AddHours", ctx, assignmentID, 3.5).Return(nil).Once()

	require.NoError(t, uc.LogHours(ctx, userID, &entities.LogHoursInput{
		AssignmentID: assignmentID.String(),
		Hours:        3.5,
	}))

	// Someone else's assignment.
	volunteers.On("GetAssignment", ctx, assignmentID).Return(&entities.Assignment{
		ID:          assignmentID,
		VolunteerID: uuid.New(),
		Status:      entities.AssignmentStatusActive,
	}, nil).Once()
	err := uc.LogHours(ctx, userID, &entities.LogHoursInput{AssignmentID: assignmentID.String(), Hours: 1})
	assert.Error(t, err)

	// Completed assignment.
	volunteers.On("GetAssignment", ctx, assignmentID).Return(&entities.Assignment{
		ID:          assignmentID,
		VolunteerID: volunteerID,
		Status:      entities.AssignmentStatusCompleted,
	}, nil).Once()
	err = uc.LogHours(ctx, userID, &entities.LogHoursInput{AssignmentID: assignmentID.String(), Hours: 1})
	assert.Error(t, err)
}

func TestVolunteerUsecase_AddReview_RecomputesRating(t *testing.T) {
	uc, volunteers, _, _ := newVolunteerUsecase()
	ctx := context.Background()
	volunteerID := uuid.New()
	reviewerID := uuid.New()

	volunteers.On("GetByID", ctx, volunteerID).
		Return(&entities.Volunteer{ID: volunteerID}, nil).Once()
	volunteers.On("AddReview", ctx, mock.Anything).Return(nil).Once()
	volunteers.On("GetReviews", ctx, volunteerID).Return([]*entities.VolunteerReview{
		{Rating: 5},
		{Rating: 4},
	}, nil).Once()
	volunteers.On("SetRating", ctx, volunteerID, 4.5).Return(nil).Once()

	review, err := uc.AddReview(ctx, reviewerID, volunteerID, &entities.ReviewInput{Rating: 4})

	require.NoError(t, err)
	assert.Equal(t, reviewerID, review.ReviewerID)
	volunteers.AssertExpectations(t)
}
