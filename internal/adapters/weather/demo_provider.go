package weather

import (
	"context"
	"sort"
	"time"

	"trip-planner-service/internal/domain"
)

// DemoProvider returns a mild synthetic outlook: precipitation probability
// ramps gently across the trip and never exceeds 0.8.
type DemoProvider struct{}

func NewDemoProvider() *DemoProvider { return &DemoProvider{} }

func (p *DemoProvider) Summary(ctx context.Context, city string, dates []time.Time) (domain.WeatherSummary, error) {
	sorted := append([]time.Time(nil), dates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	days := make([]domain.WeatherDay, 0, len(sorted))
	for idx, day := range sorted {
		prob := 0.2 + 0.05*float64(idx)
		if prob > 0.8 {
			prob = 0.8
		}
		days = append(days, domain.WeatherDay{
			Date:       day,
			PrecipProb: prob,
			Note:       "Expect comfortable temperatures.",
		})
	}
	return domain.WeatherSummary{Days: days}, nil
}
