package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "session:"
	defaultSessionTTL = 24 * time.Hour
)

// Store manages founder sessions in Redis. The session value is the founder ID.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// Create stores a new session for the founder and returns its ID.
func (s *Store) Create(ctx context.Context, founderID string) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+id, founderID, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// GetFounderID resolves a session ID to the founder it belongs to.
func (s *Store) GetFounderID(ctx context.Context, id string) (string, bool) {
	founderID, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil || founderID == "" {
		return "", false
	}
	return founderID, true
}

// Delete removes a session by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}
