package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Cache boundary for distance matrices keyed by mode and POI set.
type MatrixCache interface {
	// Get returns the cached matrix for key, reporting whether it was present.
	Get(ctx context.Context, key string) (domain.DistanceMatrix, bool, error)
	// Put stores the matrix under key.
	Put(ctx context.Context, key string, matrix domain.DistanceMatrix) error
}
