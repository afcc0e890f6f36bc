package cache

import (
	"context"
	"encoding/json"
	"time"

	"campusfaq/internal/model"

	"github.com/redis/go-redis/v9"
)

// CorpusCache holds a Redis snapshot of the active FAQ corpus so chat queries
// don't hit Mongo on every call
type CorpusCache interface {
	Get(ctx context.Context) ([]*model.FAQEntry, error)
	Set(ctx context.Context, entries []*model.FAQEntry) error
	Invalidate(ctx context.Context) error
}

type corpusCache struct {
	client *redis.Client
	ttl    time.Duration
}

const corpusKey = "faq:corpus:active"

// NewCorpusCache creates a new corpus cache
func NewCorpusCache(client *redis.Client) CorpusCache {
	return &corpusCache{
		client: client,
		ttl:    10 * time.Minute, // refreshed from Mongo after expiry
	}
}

// Get returns the cached corpus, or nil on a miss. Entry order is preserved,
// which matters because ranking ties break on corpus order.
func (c *corpusCache) Get(ctx context.Context) ([]*model.FAQEntry, error) {
	data, err := c.client.Get(ctx, corpusKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []*model.FAQEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *corpusCache) Set(ctx context.Context, entries []*model.FAQEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, corpusKey, data, c.ttl).Err()
}

func (c *corpusCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, corpusKey).Err()
}
