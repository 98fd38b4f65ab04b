package domain

// Derived routing preferences consumed by the timeline builder and scorer.
// ThemeWeights always carries a weight for every known category, including
// the "other" fallback; DeriveRoutingParams guarantees this before scoring.
type RoutingParams struct {
	PrimaryMode  Mode
	PaceCoeff    float64
	ThemeWeights map[string]float64
	BufferRatio  float64
}
