package services

//go:generate mockgen -source=recommendation.go -destination=mock_recommendation.go -package=services

import (
	"context"

	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/sbilibin2017/senda7/internal/recommendations"
)

// RecommendationCache stores generated advice.
type RecommendationCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// RecommendationService produces advice for the recommendation pages.
type RecommendationService struct {
	cache RecommendationCache
}

// NewRecommendationService creates a new service. cache may be nil.
func NewRecommendationService(cache RecommendationCache) *RecommendationService {
	return &RecommendationService{cache: cache}
}

// Recommend returns the advice for in, served from the cache when possible.
// Cache failures degrade to generating the advice.
func (svc *RecommendationService) Recommend(ctx context.Context, in recommendations.Input) (string, error) {
	if svc.cache == nil {
		return recommendations.Generate(in), nil
	}

	key := recommendations.CacheKey(in)
	if advice, err := svc.cache.Get(ctx, key); err == nil {
		return advice, nil
	}

	advice := recommendations.Generate(in)
	if err := svc.cache.Set(ctx, key, advice); err != nil {
		logger.Log.Warnw("failed to cache recommendation", "topic", in.Topic(), "error", err)
	}

	return advice, nil
}
