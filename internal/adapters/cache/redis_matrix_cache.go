package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
)

const redisKeyPrefix = "tripplanner:matrix:"

// RedisMatrixCache stores distance matrices as JSON in redis with a TTL,
// sharing cached lookups across service instances.
type RedisMatrixCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMatrixCache(client *redis.Client, ttl time.Duration) *RedisMatrixCache {
	return &RedisMatrixCache{Client: client, TTL: ttl}
}

func (c *RedisMatrixCache) Get(ctx context.Context, key string) (domain.DistanceMatrix, bool, error) {
	if c.Client == nil {
		return domain.DistanceMatrix{}, false, errors.New("matrix cache: redis client is nil")
	}

	raw, err := c.Client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DistanceMatrix{}, false, nil
	}
	if err != nil {
		return domain.DistanceMatrix{}, false, fmt.Errorf("get matrix cache: redis get: %w", err)
	}

	var payload struct {
		Mode    domain.Mode         `json:"mode"`
		Entries []domain.TravelTime `json:"entries"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.DistanceMatrix{}, false, fmt.Errorf("get matrix cache: decode payload: %w", err)
	}

	return domain.NewDistanceMatrix(payload.Mode, payload.Entries), true, nil
}

func (c *RedisMatrixCache) Put(ctx context.Context, key string, matrix domain.DistanceMatrix) error {
	if c.Client == nil {
		return errors.New("matrix cache: redis client is nil")
	}

	payload := struct {
		Mode    domain.Mode         `json:"mode"`
		Entries []domain.TravelTime `json:"entries"`
	}{Mode: matrix.Mode, Entries: matrix.Entries}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("put matrix cache: encode payload: %w", err)
	}

	if err := c.Client.Set(ctx, redisKeyPrefix+key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put matrix cache: redis set: %w", err)
	}
	return nil
}
