package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"digital-physician-backend/config"
	"digital-physician-backend/logger"
)

const memorySessionTTL = 24 * time.Hour

// Stores bundles every data source the services depend on
type Stores struct {
    Conditions ConditionRepository
    Messages   MessageStore
    Settings   SettingsStore

    kind   string
    client *mongo.Client
}

// Connect opens the stores selected by cfg.Database.Type
func Connect(cfg *config.Config, log logger.Logger) (*Stores, error) {
    stores := &Stores{
        Conditions: NewStaticConditionRepository(),
        kind:       cfg.Database.Type,
    }

    switch cfg.Database.Type {
    case "mongodb":
        ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()

        client, db, err := ConnectMongoDB(ctx, cfg, log)
        if err != nil {
            return nil, err
        }
        stores.client = client
        stores.Messages = NewMongoMessageStore(db)
        stores.Settings = NewMongoSettingsStore(db)
    case "memory":
        stores.Messages = NewMemoryMessageStore(memorySessionTTL)
        stores.Settings = NewMemorySettingsStore()
        log.Info("database", "Using in-memory stores", nil)
    default:
        return nil, fmt.Errorf("unsupported database type: %s", cfg.Database.Type)
    }

    return stores, nil
}

// NewMemoryStores returns in-memory stores. Used by tests.
func NewMemoryStores() *Stores {
    return &Stores{
        Conditions: NewStaticConditionRepository(),
        Messages:   NewMemoryMessageStore(memorySessionTTL),
        Settings:   NewMemorySettingsStore(),
        kind:       "memory",
    }
}

// Kind reports which backend the stores use
func (s *Stores) Kind() string {
    return s.kind
}

// Disconnect closes database connection
func (s *Stores) Disconnect(ctx context.Context) error {
    if s.client == nil {
        return nil
    }
    if err := s.client.Disconnect(ctx); err != nil {
        return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
    }
    return nil
}

// HealthCheck performs a database health check
func (s *Stores) HealthCheck(ctx context.Context) error {
    if s.client == nil {
        return nil
    }
    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()
    return s.client.Ping(ctx, readpref.Primary())
}
