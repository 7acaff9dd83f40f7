// Package database handles the MongoDB connection and index management.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shermanburwell3/social-media-api/internal/config"
	"github.com/shermanburwell3/social-media-api/internal/middleware"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// UsersCollection holds user documents.
	UsersCollection = "users"
	// ThoughtsCollection holds thought documents with embedded reactions.
	ThoughtsCollection = "thoughts"

	connectTimeout = 10 * time.Second
)

// Connect opens a client, verifies the deployment is reachable and ensures
// the unique indexes the user collection relies on.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(cfg.DBName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	middleware.Logger.Info("Connected to MongoDB",
		slog.String("database", cfg.DBName),
	)

	return db, nil
}

// Disconnect closes the underlying client connection.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}
	return db.Client().Disconnect(ctx)
}

// ensureIndexes creates the unique username/email indexes. Uniqueness is
// enforced here rather than by read-then-write checks so concurrent creates
// cannot race past validation.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	_, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	})
	return err
}
