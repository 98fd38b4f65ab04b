package cache

import (
	"context"
	"sync"

	"trip-planner-service/internal/domain"
)

// MemoryMatrixCache is a process-local matrix cache. Safe for concurrent use.
type MemoryMatrixCache struct {
	mu   sync.RWMutex
	data map[string]domain.DistanceMatrix
}

func NewMemoryMatrixCache() *MemoryMatrixCache {
	return &MemoryMatrixCache{data: make(map[string]domain.DistanceMatrix)}
}

func (c *MemoryMatrixCache) Get(ctx context.Context, key string) (domain.DistanceMatrix, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.data[key]
	return m, ok, nil
}

func (c *MemoryMatrixCache) Put(ctx context.Context, key string, matrix domain.DistanceMatrix) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = matrix
	return nil
}
