package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage represents a submitted contact-form message. Messages are
// immutable once stored except for the read flag.
type ContactMessage struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Read      bool      `json:"read" bson:"read"`
}

// ContactMessageCreate holds the client-supplied fields of a submission
type ContactMessageCreate struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// NewContactMessage builds a stored message with read unset
func NewContactMessage(input ContactMessageCreate) ContactMessage {
	return ContactMessage{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
		Read:      false,
	}
}
