package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"sahaaya.backend/internal/domain/entities"
	domainerrors "sahaaya.backend/internal/domain/errors"
	"sahaaya.backend/internal/domain/repositories"
	"sahaaya.backend/internal/infrastructure/email"
)

// ContactUsecase handles public inquiries and admin responses
type ContactUsecase struct {
	contactRepo repositories.ContactRepository
	mail        MailDispatcher
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(contactRepo repositories.ContactRepository, mail MailDispatcher) *ContactUsecase {
	return &ContactUsecase{
		contactRepo: contactRepo,
		mail:        mail,
	}
}

// Submit records a public inquiry. Priority is inferred from the subject
// so urgent messages surface first in the admin queue.
func (u *ContactUsecase) Submit(ctx context.Context, input *entities.CreateContactInput) (*entities.Contact, error) {
	contact := &entities.Contact{
		Name:     input.Name,
		Email:    input.Email,
		Subject:  input.Subject,
		Message:  input.Message,
		Status:   entities.ContactStatusNew,
		Priority: inferPriority(input.Subject),
	}
	if err := u.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// GetByID returns one inquiry
func (u *ContactUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Contact, error) {
	return u.contactRepo.GetByID(ctx, id)
}

// List returns inquiries filtered by status and priority
func (u *ContactUsecase) List(ctx context.Context, status, priority string, limit, offset int) ([]*entities.Contact, int, error) {
	return u.contactRepo.List(ctx, entities.ContactStatus(status), entities.ContactPriority(priority), limit, offset)
}

// Respond stores an admin response, marks the inquiry resolved and emails
// the submitter fire-and-forget.
func (u *ContactUsecase) Respond(ctx context.Context, adminID, id uuid.UUID, input *entities.RespondInput) (*entities.Contact, error) {
	contact, err := u.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact.Status == entities.ContactStatusResolved || contact.Status == entities.ContactStatusClosed {
		return nil, domainerrors.Conflict("inquiry is already resolved", domainerrors.ErrAlreadyExists)
	}

	now := time.Now()
	contact.Response = input.Response
	contact.RespondedBy = &adminID
	contact.RespondedAt = &now
	contact.Status = entities.ContactStatusResolved

	if err := u.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}

	u.mail.Dispatch(ctx, email.ContactResponse(contact))
	return contact, nil
}

// UpdateStatus moves an inquiry through the handling states
func (u *ContactUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ContactStatus) (*entities.Contact, error) {
	switch status {
	case entities.ContactStatusNew, entities.ContactStatusInProgress, entities.ContactStatusResolved, entities.ContactStatusClosed:
	default:
		return nil, domainerrors.BadRequest("unknown contact status")
	}

	contact, err := u.contactRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	contact.Status = status
	if err := u.contactRepo.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func inferPriority(subject string) entities.ContactPriority {
	lowered := strings.ToLower(subject)
	switch {
	case strings.Contains(lowered, "urgent") || strings.Contains(lowered, "emergency"):
		return entities.ContactPriorityUrgent
	case strings.Contains(lowered, "complaint") || strings.Contains(lowered, "refund"):
		return entities.ContactPriorityHigh
	}
	return entities.ContactPriorityMedium
}
