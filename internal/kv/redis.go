package kv

import (
	"context" // Context for Redis operations

	"github.com/redis/go-redis/v9" // Redis client
)

// RedisStore is a Store backed by a Redis server
type RedisStore struct {
	rdb *redis.Client // Underlying Redis client
}

// NewRedisStore returns a RedisStore using the given client
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Get retrieves the value stored under key
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return "", false, nil // Key does not exist
	} else if err != nil {
		return "", false, err // Other Redis error
	}
	return val, true, nil // Return the stored value
}

// Set stores value under key with no expiry (wallet data is not a cache)
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err() // Set value in Redis without TTL
}

// Delete removes key from Redis
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err() // Delete key from Redis
}
