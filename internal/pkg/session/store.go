package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Record is the server-side state bound to a session token.
type Record struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Store is a keyed session store. Resolve returns a nil Record for tokens
// that are unknown, expired, or destroyed (the anonymous state).
type Store interface {
	Create(ctx context.Context, rec Record) (string, error)
	Resolve(ctx context.Context, token string) (*Record, error)
	Destroy(ctx context.Context, token string) error
}

// RedisStore keeps session records in Redis with a TTL per session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Ensure RedisStore implements Store
var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Create issues a fresh opaque token bound to rec.
func (s *RedisStore) Create(ctx context.Context, rec Record) (string, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal session record: %w", err)
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve reads the record for token. Idempotent; never extends the TTL.
func (s *RedisStore) Resolve(ctx context.Context, token string) (*Record, error) {
	data, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session record: %w", err)
	}
	return &rec, nil
}

// Destroy removes the session. Resolving the same token afterwards returns
// the anonymous state.
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
