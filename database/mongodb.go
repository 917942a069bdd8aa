package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"digital-physician-backend/config"
	"digital-physician-backend/logger"
)

// ConnectMongoDB establishes connection to MongoDB and prepares indexes
func ConnectMongoDB(ctx context.Context, cfg *config.Config, log logger.Logger) (*mongo.Client, *mongo.Database, error) {
    clientOptions := options.Client().
        ApplyURI(cfg.BuildDatabaseURI()).
        SetMaxPoolSize(uint64(cfg.Database.MaxConnections)).
        SetMinPoolSize(uint64(cfg.Database.MinConnections)).
        SetMaxConnIdleTime(cfg.Database.MaxIdleTime)

    client, err := mongo.Connect(ctx, clientOptions)
    if err != nil {
        return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
    }

    if err := client.Ping(ctx, readpref.Primary()); err != nil {
        _ = client.Disconnect(ctx)
        return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
    }

    db := client.Database(cfg.Database.Name)
    log.Info("database", "Connected to MongoDB", map[string]interface{}{"database": cfg.Database.Name})

    if err := createIndexes(ctx, db); err != nil {
        _ = client.Disconnect(ctx)
        return nil, nil, fmt.Errorf("failed to create indexes: %w", err)
    }
    log.Info("database", "Database indexes created", nil)

    return client, db, nil
}

// createIndexes creates the indexes the stores query by
func createIndexes(ctx context.Context, db *mongo.Database) error {
    messageIndexes := []mongo.IndexModel{
        {
            Keys: bson.D{
                {Key: "session_id", Value: 1},
                {Key: "timestamp", Value: -1},
                {Key: "_id", Value: -1},
            },
        },
        {
            Keys: bson.D{{Key: "kind", Value: 1}},
        },
    }
    if _, err := db.Collection(messagesCollection).Indexes().CreateMany(ctx, messageIndexes); err != nil {
        return fmt.Errorf("failed to create message indexes: %w", err)
    }

    settingIndexes := []mongo.IndexModel{
        {
            Keys:    bson.D{{Key: "key", Value: 1}},
            Options: options.Index().SetUnique(true),
        },
    }
    if _, err := db.Collection(settingsCollection).Indexes().CreateMany(ctx, settingIndexes); err != nil {
        return fmt.Errorf("failed to create setting indexes: %w", err)
    }

    return nil
}
