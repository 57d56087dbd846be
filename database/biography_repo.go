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

type BiographyRepo struct {
	collection *mongo.Collection
}

func NewBiographyRepo(db *mongo.Database) *BiographyRepo {
	return &BiographyRepo{db.Collection("biography")}
}

// Upsert overwrites the singleton biography, creating it on first use. A
// single conditional write keeps the original id and created_at across
// overwrites and avoids the check-then-insert race.
func (r *BiographyRepo) Upsert(ctx context.Context, content string) (*models.Biography, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"content":    content,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"id":         uuid.NewString(),
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	var bio models.Biography
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&bio); err != nil {
		return nil, err
	}
	return &bio, nil
}

// Find returns the singleton biography, or nil if it was never created
func (r *BiographyRepo) Find(ctx context.Context) (*models.Biography, error) {
	var bio models.Biography
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&bio)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bio, nil
}
