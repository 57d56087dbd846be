package api

import (
	"context"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taranjyot-singh/portfolio-backend/models"
)

// In-memory store fakes mirroring the repository contracts.

type fakeProjectStore struct {
	projects map[string]models.Project
	err      error
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: map[string]models.Project{}}
}

func (f *fakeProjectStore) Add(_ context.Context, project *models.Project) error {
	if f.err != nil {
		return f.err
	}
	f.projects[project.ID] = *project
	return nil
}

func (f *fakeProjectStore) FindAll(_ context.Context, featuredOnly bool) ([]models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Project{}
	for _, p := range f.projects {
		if featuredOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeProjectStore) FindByID(_ context.Context, id string) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.projects[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeProjectStore) Update(_ context.Context, id string, input models.ProjectUpdate) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Image != nil {
		p.Image = *input.Image
	}
	if input.Technologies != nil {
		p.Technologies = *input.Technologies
	}
	if input.LiveDemo != nil {
		p.LiveDemo = *input.LiveDemo
	}
	if input.Github != nil {
		p.Github = *input.Github
	}
	if input.Featured != nil {
		p.Featured = *input.Featured
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	p.UpdatedAt = time.Now().UTC()
	f.projects[id] = p
	return &p, nil
}

func (f *fakeProjectStore) Delete(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.projects[id]; !ok {
		return false, nil
	}
	delete(f.projects, id)
	return true, nil
}

type fakeContactStore struct {
	messages map[string]models.ContactMessage
	err      error
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{messages: map[string]models.ContactMessage{}}
}

func (f *fakeContactStore) Add(_ context.Context, message *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.messages[message.ID] = *message
	return nil
}

func (f *fakeContactStore) FindAll(_ context.Context, limit int64) ([]models.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.ContactMessage{}
	for _, m := range f.messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeContactStore) MarkRead(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	m, ok := f.messages[id]
	if !ok || m.Read {
		return false, nil
	}
	m.Read = true
	f.messages[id] = m
	return true, nil
}

type fakeSkillStore struct {
	skills []models.Skill
	err    error
}

func (f *fakeSkillStore) Add(_ context.Context, skill *models.Skill) error {
	if f.err != nil {
		return f.err
	}
	f.skills = append(f.skills, *skill)
	return nil
}

func (f *fakeSkillStore) FindAll(_ context.Context) ([]models.Skill, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]models.Skill{}, f.skills...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func (f *fakeSkillStore) UpsertByCategory(ctx context.Context, category string, skills []string) (*models.Skill, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.skills {
		if f.skills[i].Category == category {
			f.skills[i].Skills = skills
			return &f.skills[i], nil
		}
	}
	skill := models.NewSkill(models.SkillCreate{Category: category, Skills: skills})
	f.skills = append(f.skills, skill)
	return &skill, nil
}

type fakeBiographyStore struct {
	bio *models.Biography
	err error
}

func (f *fakeBiographyStore) Upsert(_ context.Context, content string) (*models.Biography, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.bio == nil {
		bio := models.NewBiography(models.BiographyCreate{Content: content})
		f.bio = &bio
	} else {
		f.bio.Content = content
		f.bio.UpdatedAt = time.Now().UTC()
	}
	out := *f.bio
	return &out, nil
}

func (f *fakeBiographyStore) Find(_ context.Context) (*models.Biography, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.bio == nil {
		return nil, nil
	}
	out := *f.bio
	return &out, nil
}

type testStores struct {
	projects  *fakeProjectStore
	contacts  *fakeContactStore
	skills    *fakeSkillStore
	biography *fakeBiographyStore
}

func newTestRouter() (*chi.Mux, testStores) {
	stores := testStores{
		projects:  newFakeProjectStore(),
		contacts:  newFakeContactStore(),
		skills:    &fakeSkillStore{},
		biography: &fakeBiographyStore{},
	}

	handlers := &routeHandlers{
		healthHandler:    newHealthHandler(),
		projectHandler:   newProjectHandler(stores.projects),
		contactHandler:   newContactHandler(stores.contacts),
		skillHandler:     newSkillHandler(stores.skills),
		biographyHandler: newBiographyHandler(stores.biography),
	}

	router := chi.NewRouter()
	setupRoutes(router, handlers)
	return router, stores
}
