package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Contract for retrieving pairwise travel-time estimates between POIs.
type RoutingProvider interface {
	// Return a sparse distance matrix covering the given POI set.
	Matrix(ctx context.Context, mode domain.Mode, pois []domain.CandidatePOI) (domain.DistanceMatrix, error)
}
