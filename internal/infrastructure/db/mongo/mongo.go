package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// defaultTimeout bounds the initial dial and every repository call in
// this package.
const defaultTimeout = 10 * time.Second

// Config holds the connection settings for the records database.
type Config struct {
	URI      string
	Database string
}

// Connect dials MongoDB and pings the primary before handing the database
// back, so a bad URI or unreachable server fails at startup rather than on
// the first request. The returned client is kept for the disconnect on
// shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %q: %w", cfg.Database, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping %q: %w", cfg.Database, err)
	}

	return client, client.Database(cfg.Database), nil
}
