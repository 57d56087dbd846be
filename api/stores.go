package api

import (
	"context"

	"github.com/taranjyot-singh/portfolio-backend/models"
)

// Store interfaces consumed by the handlers, satisfied by the database
// repositories. Handlers never touch storage through anything else.

type projectStore interface {
	Add(ctx context.Context, project *models.Project) error
	FindAll(ctx context.Context, featuredOnly bool) ([]models.Project, error)
	FindByID(ctx context.Context, id string) (*models.Project, error)
	Update(ctx context.Context, id string, input models.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type contactStore interface {
	Add(ctx context.Context, message *models.ContactMessage) error
	FindAll(ctx context.Context, limit int64) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (bool, error)
}

type skillStore interface {
	Add(ctx context.Context, skill *models.Skill) error
	FindAll(ctx context.Context) ([]models.Skill, error)
	UpsertByCategory(ctx context.Context, category string, skills []string) (*models.Skill, error)
}

type biographyStore interface {
	Upsert(ctx context.Context, content string) (*models.Biography, error)
	Find(ctx context.Context) (*models.Biography, error)
}
