package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/giving/internal/pkg/constants"
	"github.com/piresc/giving/internal/pkg/database"
	"github.com/piresc/giving/internal/pkg/models"
)

// ProcessedCacheRepo remembers processed event ids in Redis
type ProcessedCacheRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProcessedCacheRepository(cfg *models.Config, redisClient *database.RedisClient) *ProcessedCacheRepo {
	ttl := cfg.Webhook.CacheTTL
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &ProcessedCacheRepo{
		client: redisClient.Client,
		ttl:    ttl,
	}
}

func (r *ProcessedCacheRepo) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	n, err := r.client.Exists(ctx, fmt.Sprintf(constants.KeyWebhookProcessed, eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check processed cache: %w", err)
	}
	return n > 0, nil
}

func (r *ProcessedCacheRepo) MarkProcessed(ctx context.Context, eventID string) error {
	if err := r.client.Set(ctx, fmt.Sprintf(constants.KeyWebhookProcessed, eventID), "1", r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write processed cache: %w", err)
	}
	return nil
}
