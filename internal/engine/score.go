package engine

import "trip-planner-service/internal/domain"

// ScorePOIs computes a ranking value per POI: popularity weighted by the
// traveler's theme preference for the POI's category. Unknown categories fall
// back to the "other" weight; DeriveRoutingParams guarantees that entry exists.
//
// Called once per planning run; the returned id -> score map is reused by
// clustering and day assignment so ranking stays consistent across stages.
func ScorePOIs(pois []domain.CandidatePOI, themeWeights map[string]float64) map[string]float64 {
	scores := make(map[string]float64, len(pois))
	for _, poi := range pois {
		weight, ok := themeWeights[string(poi.Category)]
		if !ok {
			weight = themeWeights[string(domain.CategoryOther)]
		}
		scores[poi.ID] = poi.Popularity * weight
	}
	return scores
}
