package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Contract for fetching POI candidates for a city, filtered by theme.
type POIProvider interface {
	// Return up to limit POI candidates for the given city and themes.
	Search(ctx context.Context, city string, themes []string, limit int) ([]domain.CandidatePOI, error)
}
