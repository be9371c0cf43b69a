package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/git-abhijeet/credit-risk/internal/pkg/logger"
	"github.com/git-abhijeet/credit-risk/internal/pkg/models"

	"github.com/redis/go-redis/v9"
)

const snapshotKey = "admin:metrics:snapshot"

// SnapshotCache keeps the most recent metrics snapshot in Redis for a short
// TTL so dashboard refreshes do not hammer the aggregation pipeline. Cache
// trouble degrades to a recompute, never to a request failure.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

func (c *SnapshotCache) Get(ctx context.Context) (*models.MetricsSnapshot, bool) {
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn(ctx, "cache : snapshot read failed: %v", err)
		}
		return nil, false
	}

	var snapshot models.MetricsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		logger.Warn(ctx, "cache : snapshot decode failed: %v", err)
		return nil, false
	}
	return &snapshot, true
}

func (c *SnapshotCache) Set(ctx context.Context, snapshot models.MetricsSnapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Warn(ctx, "cache : snapshot encode failed: %v", err)
		return
	}

	if err := c.client.Set(ctx, snapshotKey, data, c.ttl).Err(); err != nil {
		logger.Warn(ctx, "cache : snapshot write failed: %v", err)
	}
}
