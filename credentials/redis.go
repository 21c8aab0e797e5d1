// credentials/redis.go
package credentials

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is used when NewRedisStore is given an empty key.
const DefaultRedisKey = "storefront:credentials"

// RedisStore persists the credential pair as a JSON value under a single key,
// so Set and Clear stay atomic from the reader's point of view.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// NewRedisStoreFromURL connects to redisURL and verifies the connection
// before returning a store.
func NewRedisStoreFromURL(ctx context.Context, redisURL, key string) (*RedisStore, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(options)
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return NewRedisStore(client, key), nil
}

func (s *RedisStore) Get(ctx context.Context) (Pair, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if err == redis.Nil {
			return Pair{}, ErrNotFound
		}
		return Pair{}, fmt.Errorf("reading credentials: %w", err)
	}

	var pair Pair
	if err := json.Unmarshal([]byte(raw), &pair); err != nil {
		return Pair{}, fmt.Errorf("decoding stored credentials: %w", err)
	}
	return pair, nil
}

func (s *RedisStore) Set(ctx context.Context, pair Pair) error {
	raw, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	return nil
}

// Close closes the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
