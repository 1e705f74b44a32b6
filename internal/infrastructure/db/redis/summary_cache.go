package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nevseti/fincloud-system/internal/api/metrics"
	"github.com/nevseti/fincloud-system/internal/core/ports"
)

// SummaryCache stores rendered financial summaries in Redis for a short
// TTL, keyed by caller scope. A cold or unreachable cache degrades to a
// rebuild, never to a request failure.
type SummaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a SummaryCache wrapping the given Redis client.
func NewSummaryCache(client *redis.Client) *SummaryCache {
	return &SummaryCache{client: client}
}

// Get returns the cached summary for key, reporting a miss via ok=false.
func (c *SummaryCache) Get(ctx context.Context, key string) (*ports.SummaryResult, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("summary cache get: %w", err)
	}

	var summary ports.SummaryResult
	if err := json.Unmarshal(raw, &summary); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		metrics.ReportCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}

	metrics.ReportCacheTotal.WithLabelValues("hit").Inc()
	return &summary, true, nil
}

// Set stores the summary under key with the given TTL.
func (c *SummaryCache) Set(ctx context.Context, key string, summary *ports.SummaryResult, ttl time.Duration) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("summary cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}
