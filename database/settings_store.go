package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsCollection = "settings"

// SettingOracleAPIKey holds the credential for the diagnosis oracle
const SettingOracleAPIKey = "oracle_api_key"

var ErrSettingNotFound = errors.New("setting not found")

// SettingsStore persists small named configuration values
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type setting struct {
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type MongoSettingsStore struct {
	collection *mongo.Collection
}

func NewMongoSettingsStore(db *mongo.Database) *MongoSettingsStore {
	return &MongoSettingsStore{collection: db.Collection(settingsCollection)}
}

func (s *MongoSettingsStore) Get(ctx context.Context, key string) (string, error) {
	var doc setting
	err := s.collection.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("%s: %w", key, ErrSettingNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return doc.Value, nil
}

func (s *MongoSettingsStore) Set(ctx context.Context, key, value string) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"key": key},
		bson.M{"$set": bson.M{"value": value, "updated_at": time.Now()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

// MemorySettingsStore keeps settings for the life of the process
type MemorySettingsStore struct {
	cache *cache.Cache
}

func NewMemorySettingsStore() *MemorySettingsStore {
	return &MemorySettingsStore{cache: cache.New(cache.NoExpiration, 0)}
}

func (s *MemorySettingsStore) Get(ctx context.Context, key string) (string, error) {
	if x, found := s.cache.Get(key); found {
		return x.(string), nil
	}
	return "", fmt.Errorf("%s: %w", key, ErrSettingNotFound)
}

func (s *MemorySettingsStore) Set(ctx context.Context, key, value string) error {
	s.cache.Set(key, value, cache.NoExpiration)
	return nil
}
