package cache

import (
	"context"
	"strings"

	"campusfaq/internal/model"

	"github.com/redis/go-redis/v9"
)

// StatsCache tracks queries the engine could not answer. Admins use the top of
// this list to decide which FAQ entries to write next.
type StatsCache interface {
	RecordUnmatched(ctx context.Context, query string) error
	TopUnmatched(ctx context.Context, limit int) ([]model.UnmatchedQuery, error)
}

type statsCache struct {
	client *redis.Client
}

const unmatchedKey = "faq:stats:unmatched"

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
	}
}

func (c *statsCache) RecordUnmatched(ctx context.Context, query string) error {
	member := strings.ToLower(strings.TrimSpace(query))
	if member == "" {
		return nil
	}
	return c.client.ZIncrBy(ctx, unmatchedKey, 1, member).Err()
}

func (c *statsCache) TopUnmatched(ctx context.Context, limit int) ([]model.UnmatchedQuery, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, unmatchedKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	queries := make([]model.UnmatchedQuery, len(results))
	for i, z := range results {
		queries[i] = model.UnmatchedQuery{
			Query: z.Member.(string),
			Count: int64(z.Score),
		}
	}
	return queries, nil
}
