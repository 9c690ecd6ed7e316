package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ikkim/pcbuild-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type redisStateRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisStateRepository keeps blobs as plain Redis strings under prefix+key, without expiry.
func NewRedisStateRepository(client *redis.Client, prefix string) StateRepository {
	return &redisStateRepository{client: client, prefix: prefix}
}

func (r *redisStateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	logger.Debug("Loading state from redis", map[string]interface{}{
		"key": r.prefix + key,
	})

	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrStateNotFound
	}
	if err != nil {
		logger.Error("Failed to load state from redis", err, map[string]interface{}{
			"key": r.prefix + key,
		})
		return nil, err
	}
	return data, nil
}

func (r *redisStateRepository) Save(ctx context.Context, key string, data []byte) error {
	if !json.Valid(data) {
		return ErrInvalidState
	}

	if err := r.client.Set(ctx, r.prefix+key, data, 0).Err(); err != nil {
		logger.Error("Failed to save state to redis", err, map[string]interface{}{
			"key": r.prefix + key,
		})
		return err
	}

	logger.Debug("State saved to redis", map[string]interface{}{
		"key":   r.prefix + key,
		"bytes": len(data),
	})
	return nil
}
