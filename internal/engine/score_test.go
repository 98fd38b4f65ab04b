package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trip-planner-service/internal/domain"
)

func makePOI(id string, category domain.Category, popularity float64) domain.CandidatePOI {
	return domain.CandidatePOI{
		ID:         id,
		Name:       "POI " + id,
		Lat:        35.0,
		Lon:        135.0,
		Category:   category,
		Popularity: popularity,
		MinDwell:   60,
	}
}

func TestScorePOIsMonotonicWithinCategory(t *testing.T) {
	pois := []domain.CandidatePOI{
		makePOI("a", domain.CategoryMuseum, 0.9),
		makePOI("b", domain.CategoryMuseum, 0.5),
	}
	weights := map[string]float64{"museum": 1.2, "other": 0.7}

	scores := ScorePOIs(pois, weights)

	assert.Greater(t, scores["a"], scores["b"])
}

func TestScorePOIsWeighsByCategory(t *testing.T) {
	pois := []domain.CandidatePOI{
		makePOI("museum", domain.CategoryMuseum, 0.5),
		makePOI("food", domain.CategoryFood, 0.5),
	}
	weights := map[string]float64{"museum": 1.2, "food": 0.8, "other": 0.5}

	scores := ScorePOIs(pois, weights)

	assert.InDelta(t, 0.6, scores["museum"], 1e-9)
	assert.InDelta(t, 0.4, scores["food"], 1e-9)
}

func TestScorePOIsUnknownCategoryFallsBackToOther(t *testing.T) {
	pois := []domain.CandidatePOI{
		makePOI("odd", domain.Category("street_art"), 1.0),
	}
	weights := map[string]float64{"museum": 1.2, "other": 0.7}

	scores := ScorePOIs(pois, weights)

	assert.InDelta(t, 0.7, scores["odd"], 1e-9)
}
