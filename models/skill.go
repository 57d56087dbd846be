package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill groups an ordered list of skills under a category. The category acts
// as the natural key for upserts; the insert path does not enforce
// uniqueness.
type Skill struct {
	ID        string    `json:"id" bson:"id"`
	Category  string    `json:"category" bson:"category"`
	Skills    []string  `json:"skills" bson:"skills"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// SkillCreate holds the client-supplied fields for a new skill category
type SkillCreate struct {
	Category string   `json:"category" validate:"required"`
	Skills   []string `json:"skills"`
}

// NewSkill builds a stored skill category from a create input
func NewSkill(input SkillCreate) Skill {
	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}
	return Skill{
		ID:        uuid.NewString(),
		Category:  input.Category,
		Skills:    skills,
		CreatedAt: time.Now().UTC(),
	}
}
