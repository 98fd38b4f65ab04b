package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Port: a boundary for retrieving stored POI records from a data source.
type POIRepository interface {
	// Retrieve POIs for a city ordered by popularity, optionally filtered by theme.
	ListPOIs(ctx context.Context, city string, themes []string, limit int) ([]domain.CandidatePOI, error)
}
