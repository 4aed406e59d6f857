package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/skillcircuit/internal/config"
)

// RedisKV backs the key-value boundary with a Redis instance.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV connects to Redis using the provided configuration.
func NewRedisKV(cfg config.RedisConfig, logger *zap.Logger) *RedisKV {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisKV{client: client}
}

// Get reads the blob for key, or ErrKeyNotFound.
func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	return data, err
}

// Set stores the blob without expiry; collections live until overwritten.
func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Delete removes the key; absent keys are not an error.
func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Ping verifies Redis connectivity.
func (r *RedisKV) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("redis client not configured")
	}
	return r.client.Ping(ctx).Err()
}

// Close closes the client.
func (r *RedisKV) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}
