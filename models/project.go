package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project as stored
type Project struct {
	ID           string    `json:"id" bson:"id"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Image        string    `json:"image" bson:"image"`
	Technologies []string  `json:"technologies" bson:"technologies"`
	LiveDemo     string    `json:"live_demo" bson:"live_demo"`
	Github       string    `json:"github" bson:"github"`
	Featured     bool      `json:"featured" bson:"featured"`
	Category     string    `json:"category" bson:"category"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// ProjectCreate holds the client-supplied fields for a new project
type ProjectCreate struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Image        string   `json:"image" validate:"required"`
	Technologies []string `json:"technologies"`
	LiveDemo     string   `json:"live_demo" validate:"required,url"`
	Github       string   `json:"github" validate:"required,url"`
	Featured     bool     `json:"featured"`
	Category     string   `json:"category" validate:"required"`
}

// ProjectUpdate is a partial update. Nil fields leave the stored value
// unchanged; present fields overwrite it.
type ProjectUpdate struct {
	Title        *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Description  *string   `json:"description,omitempty" validate:"omitempty,min=1"`
	Image        *string   `json:"image,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	LiveDemo     *string   `json:"live_demo,omitempty" validate:"omitempty,url"`
	Github       *string   `json:"github,omitempty" validate:"omitempty,url"`
	Featured     *bool     `json:"featured,omitempty"`
	Category     *string   `json:"category,omitempty"`
}

// NewProject builds a stored project from a create input, assigning the
// server-owned id and timestamps.
func NewProject(input ProjectCreate) Project {
	now := time.Now().UTC()
	technologies := input.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return Project{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Image:        input.Image,
		Technologies: technologies,
		LiveDemo:     input.LiveDemo,
		Github:       input.Github,
		Featured:     input.Featured,
		Category:     input.Category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
