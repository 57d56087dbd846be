package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database is the single point of access to persisted state. It owns the
// process-wide client, opened once at startup and released at shutdown, and
// bundles one repository per collection sharing that client.
type Database struct {
	client        *mongo.Client
	projectRepo   *ProjectRepo
	contactRepo   *ContactRepo
	skillRepo     *SkillRepo
	biographyRepo *BiographyRepo
}

// Connect opens the client, verifies the connection with a ping and returns
// the assembled Database handle.
func Connect(ctx context.Context, uri, dbName string) (Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return Database{}, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return Database{}, err
	}
	return New(client, dbName), nil
}

// New initializes a Database with each repository using a shared client
func New(client *mongo.Client, dbName string) Database {
	db := client.Database(dbName)
	return Database{
		client:        client,
		projectRepo:   NewProjectRepo(db),
		contactRepo:   NewContactRepo(db),
		skillRepo:     NewSkillRepo(db),
		biographyRepo: NewBiographyRepo(db),
	}
}

// Close releases the connection
func (d Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) BiographyRepo() *BiographyRepo {
	return d.biographyRepo
}
