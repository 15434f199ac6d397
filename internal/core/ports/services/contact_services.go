package services

import (
	"context"

	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/dto"
)

// ContactSvcFacade defines the contact-form operations.
type ContactSvcFacade interface {
	SubmitMessage(ctx context.Context, req dto.ContactRequest) (*domain.ContactMessage, error)
	ListMessages(ctx context.Context, limit int, offset int) ([]domain.ContactMessage, error)
}
