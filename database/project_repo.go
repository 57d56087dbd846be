package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taranjyot-singh/portfolio-backend/models"
)

type ProjectRepo struct {
	collection *mongo.Collection
}

func NewProjectRepo(db *mongo.Database) *ProjectRepo {
	return &ProjectRepo{db.Collection("projects")}
}

// Add inserts a new project document
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	_, err := r.collection.InsertOne(ctx, project)
	return err
}

// FindAll returns projects newest-first, optionally restricted to featured
// ones. No pagination; the full matching set is returned.
func (r *ProjectRepo) FindAll(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	filter := bson.M{}
	if featuredOnly {
		filter["featured"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID returns the project with the given id, or nil if absent
func (r *ProjectRepo) FindByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Update applies the present fields of the partial update in a single
// conditional write, always refreshing updated_at. Returns the stored
// document after the update, or nil if the id is unknown.
func (r *ProjectRepo) Update(ctx context.Context, id string, input models.ProjectUpdate) (*models.Project, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Technologies != nil {
		set["technologies"] = *input.Technologies
	}
	if input.LiveDemo != nil {
		set["live_demo"] = *input.LiveDemo
	}
	if input.Github != nil {
		set["github"] = *input.Github
	}
	if input.Featured != nil {
		set["featured"] = *input.Featured
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var project models.Project
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes a project, reporting whether a document existed. Deleting
// an unknown id is a no-op, not an error.
func (r *ProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
