package models

import (
	"time"

	"github.com/google/uuid"
)

// Biography is a singleton record: at most one instance exists, replaced in
// place while keeping its original id.
type Biography struct {
	ID        string    `json:"id" bson:"id"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// BiographyCreate holds the client-supplied biography content
type BiographyCreate struct {
	Content string `json:"content" validate:"required"`
}

// NewBiography builds a fresh biography record
func NewBiography(input BiographyCreate) Biography {
	now := time.Now().UTC()
	return Biography{
		ID:        uuid.NewString(),
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
