package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"digital-physician-backend/models"
)

const messagesCollection = "messages"

// MessageStore keeps the conversation turns of each session
type MessageStore interface {
	Save(ctx context.Context, msg *models.Message) error
	// History returns up to limit of the newest messages of a session,
	// oldest first. A limit of 0 returns the whole session.
	History(ctx context.Context, sessionID string, limit int) ([]models.Message, error)
}

type MongoMessageStore struct {
	collection *mongo.Collection
}

func NewMongoMessageStore(db *mongo.Database) *MongoMessageStore {
	return &MongoMessageStore{collection: db.Collection(messagesCollection)}
}

func (s *MongoMessageStore) Save(ctx context.Context, msg *models.Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

func (s *MongoMessageStore) History(ctx context.Context, sessionID string, limit int) ([]models.Message, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"session_id": sessionID}, historyOptions(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}

	reverse(messages)
	return messages, nil
}

// historyOptions sorts newest first. Timestamps only keep milliseconds, so
// the user and bot turn of one exchange tie and _id breaks the tie.
func historyOptions(limit int) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{
		{Key: "timestamp", Value: -1},
		{Key: "_id", Value: -1},
	})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return opts
}

// MemoryMessageStore keeps sessions in process memory. Idle sessions expire.
type MemoryMessageStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewMemoryMessageStore(sessionTTL time.Duration) *MemoryMessageStore {
	return &MemoryMessageStore{cache: cache.New(sessionTTL, 10*time.Minute)}
}

func (s *MemoryMessageStore) Save(ctx context.Context, msg *models.Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var session []models.Message
	if x, found := s.cache.Get(msg.SessionID); found {
		session = x.([]models.Message)
	}
	// copy on write so readers holding the old slice are unaffected
	next := make([]models.Message, len(session), len(session)+1)
	copy(next, session)
	next = append(next, *msg)

	s.cache.Set(msg.SessionID, next, cache.DefaultExpiration)
	return nil
}

func (s *MemoryMessageStore) History(ctx context.Context, sessionID string, limit int) ([]models.Message, error) {
	s.mu.Lock()
	x, found := s.cache.Get(sessionID)
	s.mu.Unlock()
	if !found {
		return []models.Message{}, nil
	}

	session := x.([]models.Message)
	if limit > 0 && len(session) > limit {
		session = session[len(session)-limit:]
	}
	out := make([]models.Message, len(session))
	copy(out, session)
	return out, nil
}

func reverse(messages []models.Message) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
