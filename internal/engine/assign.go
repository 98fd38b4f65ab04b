package engine

import (
	"sort"

	"trip-planner-service/internal/domain"
)

const (
	// DefaultMinActivities is the floor a day is backfilled toward when its
	// cluster runs small.
	DefaultMinActivities = 3
	// DefaultMaxActivities caps the POIs selected for a single day.
	DefaultMaxActivities = 4
)

// AssignOptions tunes per-day POI selection.
type AssignOptions struct {
	MinActivities int
	MaxActivities int
	// ExcludeUsed removes POIs from later days once selected. The default
	// (false) allows a revisited cluster to repeat POIs on a later day.
	ExcludeUsed bool
}

func (o AssignOptions) withDefaults() AssignOptions {
	if o.MinActivities <= 0 {
		o.MinActivities = DefaultMinActivities
	}
	if o.MaxActivities <= 0 {
		o.MaxActivities = DefaultMaxActivities
	}
	return o
}

// AssignDays maps clusters to calendar days and selects each day's POIs.
//
// Days cycle through rankedIDs in order, wrapping around when numDays exceeds
// the cluster count, so a highly ranked cluster may host more than one day.
// Within a day the cluster's POIs are taken by score descending (stable on
// ties) and truncated to MaxActivities. When the selection falls short of
// MinActivities and the overall pool is large enough, the day is backfilled
// from pool order with POIs not already selected that day, then re-truncated.
//
// No clusters at all yields an empty result: zero days planned.
func AssignDays(
	rankedIDs []int,
	clusters map[int][]domain.CandidatePOI,
	scores map[string]float64,
	pool []domain.CandidatePOI,
	numDays int,
	opts AssignOptions,
) [][]domain.CandidatePOI {
	opts = opts.withDefaults()

	if len(rankedIDs) == 0 {
		return [][]domain.CandidatePOI{}
	}

	used := map[string]struct{}{}
	days := make([][]domain.CandidatePOI, 0, numDays)

	for day := 0; day < numDays; day++ {
		clusterID := rankedIDs[day%len(rankedIDs)]

		members := clusters[clusterID]
		if opts.ExcludeUsed {
			members = withoutIDs(members, used)
		}
		selected := selectTop(members, scores, opts.MaxActivities)

		if len(selected) < opts.MinActivities && len(pool) >= opts.MinActivities {
			candidates := pool
			if opts.ExcludeUsed {
				candidates = withoutIDs(candidates, used)
			}
			selected = backfill(selected, candidates, opts.MinActivities)
		}
		if len(selected) > opts.MaxActivities {
			selected = selected[:opts.MaxActivities]
		}

		if opts.ExcludeUsed {
			for _, poi := range selected {
				used[poi.ID] = struct{}{}
			}
		}
		days = append(days, selected)
	}

	return days
}

// selectTop returns up to limit POIs ordered by score descending. The sort is
// stable so ties keep their caller-supplied order.
func selectTop(members []domain.CandidatePOI, scores map[string]float64, limit int) []domain.CandidatePOI {
	sorted := append([]domain.CandidatePOI(nil), members...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return scores[sorted[i].ID] > scores[sorted[j].ID]
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// backfill extends selected with pool POIs not already present, in pool
// order, until it reaches target size or the pool runs out.
func backfill(selected, pool []domain.CandidatePOI, target int) []domain.CandidatePOI {
	have := make(map[string]struct{}, len(selected))
	for _, poi := range selected {
		have[poi.ID] = struct{}{}
	}
	for _, poi := range pool {
		if len(selected) >= target {
			break
		}
		if _, ok := have[poi.ID]; ok {
			continue
		}
		have[poi.ID] = struct{}{}
		selected = append(selected, poi)
	}
	return selected
}

func withoutIDs(pois []domain.CandidatePOI, exclude map[string]struct{}) []domain.CandidatePOI {
	if len(exclude) == 0 {
		return pois
	}
	out := make([]domain.CandidatePOI, 0, len(pois))
	for _, poi := range pois {
		if _, ok := exclude[poi.ID]; !ok {
			out = append(out, poi)
		}
	}
	return out
}
