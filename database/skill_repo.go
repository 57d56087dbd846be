package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taranjyot-singh/portfolio-backend/models"
)

type SkillRepo struct {
	collection *mongo.Collection
}

func NewSkillRepo(db *mongo.Database) *SkillRepo {
	return &SkillRepo{db.Collection("skills")}
}

// Add inserts a new skill category unconditionally. Only the upsert path
// enforces one record per category.
func (r *SkillRepo) Add(ctx context.Context, skill *models.Skill) error {
	_, err := r.collection.InsertOne(ctx, skill)
	return err
}

// FindAll returns skill categories sorted by category ascending
func (r *SkillRepo) FindAll(ctx context.Context) ([]models.Skill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	skills := []models.Skill{}
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// UpsertByCategory replaces the skill list of an existing category, or
// creates the category in the same conditional write. The re-read afterwards
// should always hit; a nil result means the document vanished in between.
func (r *SkillRepo) UpsertByCategory(ctx context.Context, category string, skills []string) (*models.Skill, error) {
	if skills == nil {
		skills = []string{}
	}

	update := bson.M{
		"$set": bson.M{"skills": skills},
		"$setOnInsert": bson.M{
			"id":         uuid.NewString(),
			"category":   category,
			"created_at": time.Now().UTC(),
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{"category": category}, update, opts); err != nil {
		return nil, err
	}

	var skill models.Skill
	err := r.collection.FindOne(ctx, bson.M{"category": category}).Decode(&skill)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}
