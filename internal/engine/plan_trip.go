package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// DefaultTopN is the number of POI candidates requested from the provider.
const DefaultTopN = 30

// Providers bundles the upstream collaborators the engine consumes.
type Providers struct {
	POIs    ports.POIProvider
	Routing ports.RoutingProvider
	Weather ports.WeatherProvider
}

// PlannerOptions tunes a planning run. Zero values fall back to the defaults
// documented on each field's constant.
type PlannerOptions struct {
	TopN        int
	MinClusters int
	MaxClusters int
	Assign      AssignOptions
}

func (o PlannerOptions) withDefaults() PlannerOptions {
	if o.TopN <= 0 {
		o.TopN = DefaultTopN
	}
	if o.MinClusters <= 0 {
		o.MinClusters = DefaultMinClusters
	}
	if o.MaxClusters <= 0 {
		o.MaxClusters = DefaultMaxClusters
	}
	return o
}

// PlanTrip runs the full scheduling pipeline for one trip: fetch candidates,
// derive routing parameters, score, partition, assign days, and lay out each
// day's timeline.
//
// An empty candidate set is a valid "nothing to schedule" outcome and yields
// a plan with zero days. A failed weather lookup degrades to the base buffer
// ratio rather than failing the run.
func PlanTrip(
	ctx context.Context,
	log zerolog.Logger,
	constraints domain.TripConstraints,
	providers Providers,
	opts PlannerOptions,
) (domain.TripPlan, error) {
	opts = opts.withDefaults()

	pois, err := providers.POIs.Search(ctx, constraints.City, constraints.Themes, opts.TopN)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("plan trip: search pois: %w", err)
	}
	if len(pois) == 0 {
		log.Info().Str("city", constraints.City).Msg("no poi candidates, planning zero days")
		return AssembleTripPlan(constraints.City, constraints.Dates.Days(), nil), nil
	}

	// Matrix and weather lookups are independent; fetch them concurrently.
	var (
		wg         sync.WaitGroup
		matrix     domain.DistanceMatrix
		matrixErr  error
		weather    domain.WeatherSummary
		weatherErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		matrix, matrixErr = providers.Routing.Matrix(ctx, constraints.Mode, pois)
	}()
	go func() {
		defer wg.Done()
		weather, weatherErr = providers.Weather.Summary(ctx, constraints.City, constraints.Dates.Days())
	}()
	wg.Wait()

	if matrixErr != nil {
		return domain.TripPlan{}, fmt.Errorf("plan trip: fetch distance matrix: %w", matrixErr)
	}

	var weatherRef *domain.WeatherSummary
	if weatherErr != nil {
		log.Warn().Err(weatherErr).Msg("weather lookup failed, using base buffer ratio")
	} else {
		weatherRef = &weather
	}

	params := DeriveRoutingParams(constraints, weatherRef)
	scores := ScorePOIs(pois, params.ThemeWeights)
	clusters := PartitionPOIs(pois, opts.MinClusters, opts.MaxClusters)
	rankedIDs := RankClusters(clusters, scores)

	numDays := constraints.Dates.NumDays()
	assignments := AssignDays(rankedIDs, clusters, scores, pois, numDays, opts.Assign)

	days := make([]DayTimeline, 0, len(assignments))
	for _, dayPOIs := range assignments {
		days = append(days, BuildDayTimeline(dayPOIs, matrix, params))
	}

	plan := AssembleTripPlan(constraints.City, constraints.Dates.Days(), days)

	log.Info().
		Str("city", constraints.City).
		Int("pois", len(pois)).
		Int("clusters", len(clusters)).
		Int("days", len(plan.Days)).
		Float64("buffer_ratio", params.BufferRatio).
		Msg("trip plan assembled")

	return plan, nil
}
