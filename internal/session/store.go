package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rental-storefront/internal/model"

	"github.com/go-redis/redis/v8"
)

const identityKeyPrefix = "session:identity:"

// IdentityStore persists the remote-service identity for the lifetime of a
// browser session. The stored user carries the remote API token, which never
// goes into the session JWT.
type IdentityStore interface {
	Save(ctx context.Context, user *model.User, ttl time.Duration) error
	Get(ctx context.Context, userID string) (*model.User, bool, error)
	Delete(ctx context.Context, userID string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, user *model.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	if err := s.client.Set(ctx, identityKeyPrefix+user.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("save identity: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*model.User, bool, error) {
	payload, err := s.client.Get(ctx, identityKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get identity: %w", err)
	}

	var user model.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, false, fmt.Errorf("decode identity: %w", err)
	}
	return &user, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, identityKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}
	return nil
}
