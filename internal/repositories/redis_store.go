package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisDialTimeout  = 3 * time.Second
	redisReadTimeout  = 2 * time.Second
	redisWriteTimeout = 2 * time.Second
	redisPingTimeout  = 2 * time.Second
)

// RedisKV is the part of the go-redis client RedisDocumentStore uses.
type RedisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisDocumentStore keeps the catalog under a single Redis key with no expiry.
type RedisDocumentStore struct {
	client RedisKV
	key    string
}

// NewRedisClient parses a Redis URL and returns a client that has answered a ping.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}
	options.DialTimeout = redisDialTimeout
	options.ReadTimeout = redisReadTimeout
	options.WriteTimeout = redisWriteTimeout

	client := redis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", options.Addr, err)
	}
	log.Printf("Redis client connected to %s", options.Addr)
	return client, nil
}

// NewRedisDocumentStore creates a RedisDocumentStore. *redis.Client satisfies client.
func NewRedisDocumentStore(client RedisKV, key string) *RedisDocumentStore {
	return &RedisDocumentStore{client: client, key: key}
}

// Read returns the stored value, or ErrNoDocument if the key is unset.
func (s *RedisDocumentStore) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("failed to get redis key %s: %w", s.key, err)
	}
	return data, nil
}

// Write sets the key to data.
func (s *RedisDocumentStore) Write(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set redis key %s: %w", s.key, err)
	}
	return nil
}
