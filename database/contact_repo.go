package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taranjyot-singh/portfolio-backend/models"
)

// DefaultMessageLimit caps a message listing when the caller gives no limit
const DefaultMessageLimit = 100

type ContactRepo struct {
	collection *mongo.Collection
}

func NewContactRepo(db *mongo.Database) *ContactRepo {
	return &ContactRepo{db.Collection("contact_messages")}
}

// Add inserts a new contact message document
func (r *ContactRepo) Add(ctx context.Context, message *models.ContactMessage) error {
	_, err := r.collection.InsertOne(ctx, message)
	return err
}

// FindAll returns messages newest-first, capped at limit
func (r *ContactRepo) FindAll(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	messages := []models.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead sets the read flag on a message. The result reports whether a
// document was actually modified: an unknown id and an already-read message
// both count as not modified.
func (r *ContactRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}
