package dto

import (
	"time"

	"github.com/abdout/abushala-backend/internal/core/domain"
)

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// ContactMessageResponse is the admin view of a stored contact message.
type ContactMessageResponse struct {
	MessageID string    `json:"messageID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListContactMessagesParams defines query parameters for listing messages.
type ListContactMessagesParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ToContactMessageResponse converts a domain.ContactMessage to its DTO.
func ToContactMessageResponse(m *domain.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		MessageID: m.MessageID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// ToListContactMessageResponse converts a slice of messages to DTOs.
func ToListContactMessageResponse(messages []domain.ContactMessage) []ContactMessageResponse {
	res := make([]ContactMessageResponse, len(messages))
	for i := range messages {
		res[i] = ToContactMessageResponse(&messages[i])
	}
	return res
}
