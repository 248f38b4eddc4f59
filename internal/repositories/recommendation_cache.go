package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/senda7/internal/logger"
)

// ErrCacheMiss is returned when a key is not cached.
var ErrCacheMiss = errors.New("recommendation not found in cache")

// RecommendationCacheRepository caches generated recommendations in Redis.
type RecommendationCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached recommendations
}

// NewRecommendationCacheRepository creates a new repository instance.
func NewRecommendationCacheRepository(client *redis.Client, expiration time.Duration) *RecommendationCacheRepository {
	return &RecommendationCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached recommendation stored under key.
func (r *RecommendationCacheRepository) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Debugw("cache lookup",
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set caches a recommendation under key with the repository expiration.
func (r *RecommendationCacheRepository) Set(ctx context.Context, key, value string) error {
	err := r.client.Set(ctx, key, value, r.exp).Err()

	logger.Log.Debugw("cache store",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
