package route

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ijalalfrz/flight-path-planner/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RouteCache stores ranked paths per request. Keys are namespaced by the
// fingerprint of the loaded data set so results of a different flight file
// are never served.
type RouteCache struct {
	redis   RedisClient
	dataSet string
}

func NewRouteCache(redis RedisClient, dataSet string) *RouteCache {
	return &RouteCache{
		redis:   redis,
		dataSet: dataSet,
	}
}

func (c *RouteCache) GetLockKey(req dto.RouteRequest) string {
	return fmt.Sprintf("route:lock:%s:%s:%s:%s",
		c.dataSet, req.Origin, req.Destination, req.Metric)
}

func (c *RouteCache) GetCacheKey(req dto.RouteRequest) string {
	return fmt.Sprintf("route:cache:%s:%s:%s:%s",
		c.dataSet, req.Origin, req.Destination, req.Metric)
}

func (c *RouteCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *RouteCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *RouteCache) SetPaths(ctx context.Context,
	key string,
	paths []dto.Path,
	expiration time.Duration,
) error {
	data, err := json.Marshal(paths)
	if err != nil {
		return fmt.Errorf("failed to marshal paths: %w", err)
	}

	err = c.redis.Set(ctx, key, data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set paths: %w", err)
	}

	return nil
}

func (c *RouteCache) GetPaths(ctx context.Context, key string) ([]dto.Path, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var paths []dto.Path
	if err := json.Unmarshal(data, &paths); err != nil {
		return nil, err
	}

	return paths, nil
}
