package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/domain/repositories"
	"sahaaya.backend/internal/infrastructure/email"
	"sahaaya.backend/pkg/logger"
)

// NotificationUsecase handles admin broadcasts
type NotificationUsecase struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	mail             MailDispatcher
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	mail MailDispatcher,
) *NotificationUsecase {
	return &NotificationUsecase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mail:             mail,
	}
}

// Create drafts a broadcast for a target audience role
func (u *NotificationUsecase) Create(ctx context.Context, authorID uuid.UUID, input *entities.CreateNotificationInput) (*entities.Notification, error) {
	audience := entities.UserRole(input.Audience)
	switch audience {
	case entities.UserRoleAdmin, entities.UserRoleDonor, entities.UserRoleVolunteer, entities.UserRoleCreator:
	default:
		return nil, domainerrors.BadRequest("unknown audience role")
	}

	notification := &entities.Notification{
		AuthorID: authorID,
		Title:    input.Title,
		Body:     input.Body,
		Audience: audience,
		Status:   entities.NotificationStatusDraft,
	}
	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// GetByID returns one broadcast
func (u *NotificationUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	return u.notificationRepo.GetByID(ctx, id)
}

// List returns broadcasts, newest first
func (u *NotificationUsecase) List(ctx context.Context, limit, offset int) ([]*entities.Notification, int, error) {
	return u.notificationRepo.List(ctx, limit, offset)
}

// Send marks a draft SENT, then fans out one email per user of the target
// role through the dispatcher. The DRAFT guard in the repository makes
// double-sends impossible; individual mail failures are absorbed by the
// dispatcher and never resurface here.
func (u *NotificationUsecase) Send(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	notification, err := u.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.Status != entities.NotificationStatusDraft {
		return nil, domainerrors.Conflict("notification has already been sent", domainerrors.ErrAlreadyExists)
	}

	if err := u.notificationRepo.MarkSent(ctx, id); err != nil {
		return nil, err
	}

	recipients, err := u.userRepo.ListByRole(ctx, notification.Audience)
	if err != nil {
		logger.Error(ctx, "broadcast fan-out skipped, recipient lookup failed",
			zap.String("notification_id", id.String()), zap.Error(err))
	} else {
		for _, recipient := range recipients {
			u.mail.Dispatch(ctx, email.Broadcast(recipient.Email, recipient.Name, notification))
		}
	}

	return u.notificationRepo.GetByID(ctx, id)
}
