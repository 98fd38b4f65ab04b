package routing

import (
	"context"
	"math"

	"trip-planner-service/internal/domain"
)

// DemoProvider synthesizes travel-time estimates from POI list positions.
// Driving and transit get discounted estimates relative to walking.
type DemoProvider struct{}

func NewDemoProvider() *DemoProvider { return &DemoProvider{} }

func (p *DemoProvider) Matrix(ctx context.Context, mode domain.Mode, pois []domain.CandidatePOI) (domain.DistanceMatrix, error) {
	var entries []domain.TravelTime
	for i := range pois {
		for j := i + 1; j < len(pois); j++ {
			eta := 12.0 + math.Abs(float64(i-j))*6.0
			switch mode {
			case domain.ModeDrive:
				eta *= 0.6
			case domain.ModeTransit:
				eta *= 0.9
			}
			entries = append(entries, domain.TravelTime{
				Origin:      pois[i].ID,
				Destination: pois[j].ID,
				Minutes:     eta,
			})
		}
	}
	return domain.NewDistanceMatrix(mode, entries), nil
}
