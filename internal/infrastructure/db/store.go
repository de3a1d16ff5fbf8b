// Package db opens the repositories selected by STORE_DRIVER.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hrmsystem/hrm-api/internal/core/ports"
	"github.com/hrmsystem/hrm-api/internal/infrastructure/config"
	"github.com/hrmsystem/hrm-api/internal/infrastructure/db/memory"
	"github.com/hrmsystem/hrm-api/internal/infrastructure/db/mongo"
	"github.com/hrmsystem/hrm-api/internal/infrastructure/db/postgres"
)

// Store is an opened persistence backend.
type Store struct {
	Repos *ports.Repositories
	// Ping checks the backend; nil for the memory driver.
	Ping func(ctx context.Context) error
	// Close releases the backend connections.
	Close func(ctx context.Context) error
}

// Open connects to the configured driver and prepares its schema.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case "mongo":
		return openMongo(ctx, cfg.Mongo, log)
	case "postgres":
		return openPostgres(ctx, cfg.Postgres, log)
	case "memory":
		log.Warn().Msg("using in-memory store; data is lost on restart")
		return &Store{Repos: memory.New(), Close: func(context.Context) error { return nil }}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func openMongo(ctx context.Context, cfg config.MongoConfig, log zerolog.Logger) (*Store, error) {
	client, database, err := mongo.Connect(ctx, mongo.Config{URI: cfg.URI, Database: cfg.Database})
	if err != nil {
		return nil, err
	}
	store := mongo.NewStore(database)
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	log.Info().Str("database", cfg.Database).Msg("connected to mongo")

	return &Store{
		Repos: store.Repos,
		Ping:  func(ctx context.Context) error { return client.Ping(ctx, nil) },
		Close: client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, cfg config.PostgresConfig, log zerolog.Logger) (*Store, error) {
	if err := postgres.Migrate(cfg.DSN, log); err != nil {
		return nil, err
	}
	pool, err := postgres.Connect(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}
	log.Info().Msg("connected to postgres")

	return &Store{
		Repos: postgres.NewStore(pool),
		Ping:  func(ctx context.Context) error { return postgres.Ping(ctx, pool) },
		Close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}
