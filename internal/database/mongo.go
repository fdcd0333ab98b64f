// Package database manages the MongoDB connection shared by all requests.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"shopapi/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultDatabase is used when the URI names no database.
const DefaultDatabase = "CRUD"

// Mongo wraps the process-wide client and the selected database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and pings the primary so that an unreachable server
// is reported at startup rather than on the first request.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout).SetServerSelectionTimeout(cfg.ConnectTimeout)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	name := DatabaseName(cfg.URI, cfg.Database)
	slog.Info("connected to MongoDB", "database", name)
	return &Mongo{client: client, db: client.Database(name)}, nil
}

// Collection returns a handle to the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping checks that the primary is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	slog.Info("MongoDB connection closed")
	return nil
}

// DatabaseName picks the database to use: override when set, otherwise the
// path of uri, otherwise DefaultDatabase.
func DatabaseName(uri, override string) string {
	if override != "" {
		return override
	}
	u, err := url.Parse(uri)
	if err != nil {
		return DefaultDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return DefaultDatabase
}
