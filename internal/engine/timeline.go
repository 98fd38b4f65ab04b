package engine

import (
	"time"

	"trip-planner-service/internal/domain"
)

// DefaultTravelMinutes is the fallback travel estimate when the distance
// matrix has no entry for a POI pair.
const DefaultTravelMinutes = 15.0

// LunchDurationMinutes is the fixed length of the single meal slot.
const LunchDurationMinutes = 60.0

var (
	dayStart  = time.Date(0, time.January, 1, 9, 0, 0, 0, time.UTC)
	lunchTime = time.Date(0, time.January, 1, 12, 30, 0, 0, time.UTC)
)

// DayTimeline is the laid-out schedule for one day.
type DayTimeline struct {
	Slots        []domain.Slot
	TotalMinutes float64
	TransitShare float64
}

// BuildDayTimeline lays out an ordered POI list as a sequence of
// non-overlapping travel, meal, and activity slots.
//
// The clock starts at 09:00. Each POI after the first is preceded by a
// transit slot whose length is the matrix estimate inflated by
// (1 + buffer ratio). Dwell is the POI's minimum dwell scaled by the pacing
// coefficient. When an activity interval would straddle 12:30, a 60-minute
// meal slot anchored exactly at 12:30 is inserted first; once the clock has
// passed the lunch window no further meal is attempted.
//
// An empty POI list yields zero slots, zero total, and a transit share of 0.
func BuildDayTimeline(pois []domain.CandidatePOI, matrix domain.DistanceMatrix, params domain.RoutingParams) DayTimeline {
	clock := dayStart
	slots := []domain.Slot{}
	transitTotal := 0.0

	var prev *domain.CandidatePOI
	for i := range pois {
		poi := pois[i]

		if prev != nil {
			eta := matrix.Lookup(prev.ID, poi.ID, DefaultTravelMinutes)
			travel := eta * (1.0 + params.BufferRatio)
			if travel > 0 {
				end := addMinutes(clock, travel)
				slots = append(slots, domain.Slot{
					Start: formatClock(clock),
					End:   formatClock(end),
					Type:  domain.SlotTypeTransit,
					Transport: &domain.TransportInfo{
						Mode:       params.PrimaryMode,
						ETAMinutes: travel,
					},
				})
				clock = end
				transitTotal += travel
			}
		}

		dwell := float64(poi.MinDwell) * params.PaceCoeff

		// Activity interval [clock, clock+dwell) straddles the lunch anchor.
		if !clock.After(lunchTime) && lunchTime.Before(addMinutes(clock, dwell)) {
			lunchEnd := addMinutes(lunchTime, LunchDurationMinutes)
			slots = append(slots, domain.Slot{
				Start: formatClock(lunchTime),
				End:   formatClock(lunchEnd),
				Type:  domain.SlotTypeMeal,
			})
			clock = lunchEnd
		}

		end := addMinutes(clock, dwell)
		slots = append(slots, domain.Slot{
			Start: formatClock(clock),
			End:   formatClock(end),
			POIID: poi.ID,
		})
		clock = end
		prev = &pois[i]
	}

	total := clock.Sub(dayStart).Minutes()
	share := 0.0
	if total > 0 {
		share = transitTotal / total
	}

	return DayTimeline{Slots: slots, TotalMinutes: total, TransitShare: share}
}

func addMinutes(t time.Time, minutes float64) time.Time {
	return t.Add(time.Duration(minutes * float64(time.Minute)))
}

func formatClock(t time.Time) string {
	return t.Format("15:04")
}
