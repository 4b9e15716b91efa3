package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const statePrefix = "oauth_state:"

// StateStore keeps one-time OAuth login state nonces in Redis so the callback
// can reject forged or replayed requests.
type StateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStateStore builds the store with the given nonce lifetime.
func NewStateStore(client *redis.Client, ttl time.Duration) *StateStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &StateStore{client: client, ttl: ttl}
}

// Issue stores and returns a fresh state nonce.
func (s *StateStore) Issue(ctx context.Context) (string, error) {
	state := uuid.NewString()
	if err := s.client.Set(ctx, statePrefix+state, "1", s.ttl).Err(); err != nil {
		return "", err
	}
	return state, nil
}

// Consume atomically removes the nonce and reports whether it existed. A
// second consume of the same state returns false.
func (s *StateStore) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	res, err := s.client.GetDel(ctx, statePrefix+state).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return res != "", nil
}
