package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abdout/abushala-backend/internal/core/domain"
	"github.com/abdout/abushala-backend/internal/core/ports"
	portssvc "github.com/abdout/abushala-backend/internal/core/ports/services"
	"github.com/abdout/abushala-backend/internal/dto"
)

type ContactService struct {
	contactRepo ports.ContactRepository
}

func NewContactService(contactRepo ports.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

var _ portssvc.ContactSvcFacade = (*ContactService)(nil)

func (s *ContactService) SubmitMessage(ctx context.Context, req dto.ContactRequest) (*domain.ContactMessage, error) {
	message := domain.ContactMessage{
		MessageID: uuid.NewString(),
		Name:      req.Name,
		Email:     NormalizeEmail(req.Email),
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.SaveMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	return &message, nil
}

func (s *ContactService) ListMessages(ctx context.Context, limit int, offset int) ([]domain.ContactMessage, error) {
	messages, err := s.contactRepo.ListMessages(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	if messages == nil {
		return []domain.ContactMessage{}, nil
	}
	return messages, nil
}
