package postinginfra

import (
	"context"
	"fmt"

	"github.com/internlink/internlink/pkg/kernel"
	"github.com/redis/go-redis/v9"
)

const viewKeyPrefix = "posting:views:"

// RedisViewCounter implements posting.ViewCounter on Redis INCR. The row
// counter in Postgres trails this one; Redis absorbs the write volume.
type RedisViewCounter struct {
	client *redis.Client
}

// NewRedisViewCounter creates a Redis-backed view counter
func NewRedisViewCounter(client *redis.Client) *RedisViewCounter {
	return &RedisViewCounter{
		client: client,
	}
}

// Record registers one view and returns the running count
func (c *RedisViewCounter) Record(ctx context.Context, id kernel.JobID) (int64, error) {
	count, err := c.client.Incr(ctx, viewKeyPrefix+id.String()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to record view: %w", err)
	}
	return count, nil
}

// Count returns the running count without recording a view
func (c *RedisViewCounter) Count(ctx context.Context, id kernel.JobID) (int64, error) {
	count, err := c.client.Get(ctx, viewKeyPrefix+id.String()).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read view count: %w", err)
	}
	return count, nil
}
