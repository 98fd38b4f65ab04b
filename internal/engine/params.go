package engine

import "trip-planner-service/internal/domain"

const (
	// BaseBufferRatio inflates raw travel estimates under normal conditions.
	BaseBufferRatio = 0.15
	// RainBufferRatio replaces the base ratio when any trip day looks wet.
	RainBufferRatio = 0.25
	// RainThreshold is the precipitation probability above which a day counts as wet.
	RainThreshold = 0.5

	// FallbackThemeWeight applies to every category the traveler did not request.
	FallbackThemeWeight = 0.7
)

var paceCoefficients = map[domain.Pace]float64{
	domain.PaceRelaxed: 0.8,
	domain.PaceMedium:  1.0,
	domain.PaceTight:   1.2,
}

// DeriveRoutingParams turns trip constraints and an optional weather outlook
// into the routing parameters consumed by scoring and timeline building.
//
// Requested themes weigh 1.0; every known category (including "other") gets
// the fallback weight, so the scorer's weight lookup is total by construction.
// Missing weather is not an error: the buffer ratio stays at its base value.
func DeriveRoutingParams(constraints domain.TripConstraints, weather *domain.WeatherSummary) domain.RoutingParams {
	paceCoeff, ok := paceCoefficients[constraints.Pace]
	if !ok {
		paceCoeff = 1.0
	}

	bufferRatio := BaseBufferRatio
	if weather != nil && weather.AnyWetter(RainThreshold) {
		bufferRatio = RainBufferRatio
	}

	weights := make(map[string]float64, len(constraints.Themes)+len(domain.KnownCategories()))
	for _, theme := range constraints.Themes {
		weights[theme] = 1.0
	}
	for _, cat := range domain.KnownCategories() {
		if _, ok := weights[string(cat)]; !ok {
			weights[string(cat)] = FallbackThemeWeight
		}
	}

	return domain.RoutingParams{
		PrimaryMode:  constraints.Mode,
		PaceCoeff:    paceCoeff,
		ThemeWeights: weights,
		BufferRatio:  bufferRatio,
	}
}
