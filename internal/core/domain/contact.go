package domain

import "time"

// ContactMessage is a message submitted through the public contact form.
// Messages are stored for the admins to read; no mail is sent.
type ContactMessage struct {
	MessageID string    `json:"messageID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
