package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"kredi/internal/scoring"
	"kredi/pkg/domain"
	"kredi/pkg/platform/sentinel"
)

// RedisResultCache keeps the latest record per borrower hot. It is a pure
// read-through helper: misses and failures are reported via sentinels so the
// service can fall back to the store.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{client: client, ttl: ttl}
}

func latestKey(borrowerID domain.BorrowerID) string {
	return "score:latest:" + borrowerID.String()
}

func (c *RedisResultCache) SetLatest(ctx context.Context, record *scoring.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal score record: %w", err)
	}
	if err := c.client.Set(ctx, latestKey(record.BorrowerID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache score record: %w", err)
	}
	return nil
}

func (c *RedisResultCache) GetLatest(ctx context.Context, borrowerID domain.BorrowerID) (*scoring.Record, error) {
	payload, err := c.client.Get(ctx, latestKey(borrowerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("read cached score record: %w", err)
	}
	var record scoring.Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshal cached score record: %w", err)
	}
	return &record, nil
}
