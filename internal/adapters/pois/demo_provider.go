package pois

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
)

const demoLimit = 10

// DemoProvider returns a deterministic synthetic POI set for demos and
// tests. No network access; records are derived from the city name alone.
type DemoProvider struct{}

func NewDemoProvider() *DemoProvider { return &DemoProvider{} }

func (p *DemoProvider) Search(ctx context.Context, city string, themes []string, limit int) ([]domain.CandidatePOI, error) {
	source := domain.POISource{
		Name:      "DemoPOI",
		URL:       "https://demo.local",
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if limit > demoLimit {
		limit = demoLimit
	}

	out := make([]domain.CandidatePOI, 0, limit)
	for idx := 0; idx < limit; idx++ {
		category := domain.CategoryOther
		if len(themes) > 0 {
			category = domain.Category(themes[idx%len(themes)])
		}

		popularity := 1.0 - float64(idx)*0.1
		if popularity < 0.3 {
			popularity = 0.3
		}

		out = append(out, domain.CandidatePOI{
			ID:         fmt.Sprintf("%s_%d", strings.ToLower(city), idx),
			Name:       fmt.Sprintf("%s Highlight %d", city, idx),
			Lat:        35.0 + float64(idx)*0.01,
			Lon:        135.0 + float64(idx)*0.01,
			Category:   category,
			Popularity: popularity,
			MinDwell:   60 + idx*15,
			Source:     source,
		})
	}
	return out, nil
}
