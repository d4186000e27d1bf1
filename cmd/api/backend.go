package main

import (
	"context"
	"fmt"

	"github.com/PaulBabatuyi/liveChat-gRPC/internal/config"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data/bolt"
	mongostore "github.com/PaulBabatuyi/liveChat-gRPC/internal/data/mongo"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/data/postgres"
	"github.com/PaulBabatuyi/liveChat-gRPC/internal/db"
)

// openBackend connects the store selected by cfg.Store.Driver and prepares
// its schema.
func openBackend(ctx context.Context, cfg config.StoreConfig) (*data.Backend, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverPostgres:
		return postgres.NewBackend(ctx, cfg.DatabaseURL)
	case config.DriverBolt:
		return bolt.NewBackend(cfg.BoltPath)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func openMongo(ctx context.Context, cfg config.StoreConfig) (*data.Backend, error) {
	client, err := db.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	// Ensure indexes exist
	if err := client.CreateIndexes(ctx); err != nil {
		_ = client.Close(ctx)
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return &data.Backend{
		Name:     config.DriverMongo,
		Users:    mongostore.NewUsersStore(client.UsersCollection()),
		Messages: mongostore.NewMessagesStore(client.MessagesCollection()),
		Ping:     client.Ping,
		Close:    client.Close,
	}, nil
}
