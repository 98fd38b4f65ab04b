package ports

import (
	"context"
	"time"

	"trip-planner-service/internal/domain"
)

// Contract for retrieving a day-indexed precipitation outlook.
type WeatherProvider interface {
	// Return a weather summary for the given city and dates.
	Summary(ctx context.Context, city string, dates []time.Time) (domain.WeatherSummary, error)
}
