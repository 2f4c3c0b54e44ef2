// Package store provides a MongoDB-backed document store with generic
// insert and list operations over named collections.
//
// The store holds a single process-wide client established at startup.
// When no connection string is configured the store runs degraded: every
// operation fails immediately with ErrUnavailable, and the diagnostic
// endpoint reports the state instead of the process crashing.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/flamescrm/agent-platform/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// System defines the document store operations used by HTTP handlers.
type System interface {
	Available() bool
	DatabaseName() string
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	FindByID(ctx context.Context, collection string, id string) (bson.M, error)
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type store struct {
	client *mongo.Client
	db     *mongo.Database
	name   string
	logger *slog.Logger
}

// Open connects to the document store described by the configuration.
// An empty URI yields a degraded store and no error. A URI that cannot be
// parsed is an error. A reachable-looking URI whose ping fails keeps the
// client: the driver reconnects on its own once the store comes up.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (System, error) {
	logger = logger.With("system", "store")

	if cfg.URI == "" {
		logger.Warn("no connection string configured, store unavailable")
		return &store{name: cfg.Name, logger: logger}, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return &store{name: cfg.Name, logger: logger}, fmt.Errorf("connect: %w", err)
	}

	s := &store{
		client: client,
		db:     client.Database(cfg.Name),
		name:   cfg.Name,
		logger: logger,
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnTimeoutDuration())
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		logger.Warn("store not reachable at startup", "error", err)
	} else {
		logger.Info("store connected", "database", cfg.Name)
	}

	return s, nil
}

// Available reports whether a client was ever established.
func (s *store) Available() bool {
	return s.client != nil
}

// DatabaseName returns the configured database name.
func (s *store) DatabaseName() string {
	return s.name
}

// Insert writes a single document to the named collection and returns the
// store-assigned identifier as a hex string. Every call creates a new
// record; there is no deduplication or upsert.
func (s *store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert %s: unexpected id type %T", collection, res.InsertedID)
	}

	s.logger.Debug("document created", "collection", collection, "id", oid.Hex())
	return oid.Hex(), nil
}

// Find returns documents from the named collection matching the equality
// filter, capped at limit. Results are sorted ascending by _id, which
// ObjectIDs make insertion order, so callers see a stable sequence.
// Identifiers are converted to plain strings before documents leave this
// layer.
func (s *store) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit)

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}

	for _, doc := range docs {
		stringifyID(doc)
	}
	return docs, nil
}

// FindByID returns the single document with the given identifier, or
// ErrNotFound. A malformed identifier is ErrInvalidID.
func (s *store) FindByID(ctx context.Context, collection string, id string) (bson.M, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var doc bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s/%s: %w", collection, id, err)
	}

	stringifyID(doc)
	return doc, nil
}

// Collections lists the collection names present in the database.
func (s *store) Collections(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// Ping verifies the store is reachable.
func (s *store) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrUnavailable
	}
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client. A degraded store closes without error.
func (s *store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

func stringifyID(doc bson.M) {
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
}
