package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Mongo wraps a single MongoDB client and database handle shared by
// all requests. The wrapper may be degraded (never connected): callers
// must check Connected before touching collections so a missing
// database fails individual requests instead of the process.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the MongoDB connection. It always returns a
// usable *Mongo: on failure the returned handle is degraded and the
// error describes why, letting the caller decide to continue without
// a database.
func Connect(ctx context.Context, databaseURL, databaseName string) (*Mongo, error) {
	if databaseURL == "" {
		return &Mongo{}, fmt.Errorf("database URL cannot be empty")
	}
	if databaseName == "" {
		return &Mongo{}, fmt.Errorf("database name cannot be empty")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(databaseURL))
	if err != nil {
		return &Mongo{}, fmt.Errorf("failed to create mongo client: %w", err)
	}

	// Verify the connection up front; a lazy client would otherwise
	// defer the failure to the first request.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return &Mongo{}, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(databaseName),
	}, nil
}

// Connected reports whether the handle holds a live database.
func (m *Mongo) Connected() bool {
	return m != nil && m.db != nil
}

// Collection returns a handle to the named collection. The collection
// name is the entity kind ("party", "product", ...).
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping verifies the connection end to end.
func (m *Mongo) Ping(ctx context.Context) error {
	if !m.Connected() {
		return fmt.Errorf("mongo not connected")
	}
	return m.client.Ping(ctx, readpref.Primary())
}

// ListCollectionNames lists collection names known to the database.
func (m *Mongo) ListCollectionNames(ctx context.Context) ([]string, error) {
	if !m.Connected() {
		return nil, fmt.Errorf("mongo not connected")
	}
	return m.db.ListCollectionNames(ctx, bson.D{})
}

// Close disconnects the client. Safe to call on a degraded handle.
func (m *Mongo) Close(ctx context.Context) error {
	if m == nil || m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
