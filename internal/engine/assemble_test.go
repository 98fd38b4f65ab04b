package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
)

func TestAssembleTripPlanZipsDatesAndDays(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	}
	days := []DayTimeline{
		{Slots: []domain.Slot{{Start: "09:00", End: "10:00", POIID: "a"}}, TotalMinutes: 60, TransitShare: 0},
		{Slots: []domain.Slot{{Start: "09:00", End: "11:00", POIID: "b"}}, TotalMinutes: 120, TransitShare: 0},
	}

	plan := AssembleTripPlan("Kyoto", dates, days)

	require.Len(t, plan.Days, 2)
	assert.Equal(t, dates[0], plan.Days[0].Date)
	assert.Equal(t, dates[1], plan.Days[1].Date)
	assert.InDelta(t, 120.0, plan.Days[1].TotalTimeMinutes, 1e-9)
}

func TestAssembleTripPlanStopsAtShorterInput(t *testing.T) {
	dates := []time.Time{time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}
	days := []DayTimeline{{}, {}, {}}

	plan := AssembleTripPlan("Kyoto", dates, days)

	assert.Len(t, plan.Days, 1)
}

func TestAssembleTripPlanEmptyDays(t *testing.T) {
	dates := []time.Time{time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)}

	plan := AssembleTripPlan("Kyoto", dates, nil)

	assert.Empty(t, plan.Days)
	assert.Equal(t, PlanSources, plan.Sources)
}
