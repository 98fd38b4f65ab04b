package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
)

func mediumParams(bufferRatio float64) domain.RoutingParams {
	return domain.RoutingParams{
		PrimaryMode:  domain.ModeDrive,
		PaceCoeff:    1.0,
		ThemeWeights: map[string]float64{"other": 1.0},
		BufferRatio:  bufferRatio,
	}
}

func TestBuildDayTimelineSmallCityExactBoundaries(t *testing.T) {
	// Three POIs, 60-minute dwell each, no matrix entries so travel falls
	// back to the 15-minute default; buffer fixed at 0 for exact boundaries.
	pois := []domain.CandidatePOI{
		makePOI("p1", domain.CategoryOther, 0.9),
		makePOI("p2", domain.CategoryOther, 0.5),
		makePOI("p3", domain.CategoryOther, 0.3),
	}
	matrix := domain.NewDistanceMatrix(domain.ModeDrive, nil)

	tl := BuildDayTimeline(pois, matrix, mediumParams(0.0))

	require.Len(t, tl.Slots, 5)

	assert.Equal(t, "09:00", tl.Slots[0].Start)
	assert.Equal(t, "10:00", tl.Slots[0].End)
	assert.Equal(t, "p1", tl.Slots[0].POIID)

	assert.Equal(t, "10:00", tl.Slots[1].Start)
	assert.Equal(t, "10:15", tl.Slots[1].End)
	assert.Equal(t, domain.SlotTypeTransit, tl.Slots[1].Type)
	require.NotNil(t, tl.Slots[1].Transport)
	assert.Equal(t, domain.ModeDrive, tl.Slots[1].Transport.Mode)
	assert.InDelta(t, 15.0, tl.Slots[1].Transport.ETAMinutes, 1e-9)

	assert.Equal(t, "10:15", tl.Slots[2].Start)
	assert.Equal(t, "11:15", tl.Slots[2].End)
	assert.Equal(t, "p2", tl.Slots[2].POIID)

	assert.Equal(t, "11:15", tl.Slots[3].Start)
	assert.Equal(t, "11:30", tl.Slots[3].End)

	assert.Equal(t, "11:30", tl.Slots[4].Start)
	assert.Equal(t, "12:30", tl.Slots[4].End)
	assert.Equal(t, "p3", tl.Slots[4].POIID)

	assert.InDelta(t, 210.0, tl.TotalMinutes, 1e-9)
	assert.InDelta(t, 30.0/210.0, tl.TransitShare, 1e-9)
}

func TestBuildDayTimelineBufferInflatesTravel(t *testing.T) {
	pois := []domain.CandidatePOI{
		makePOI("p1", domain.CategoryOther, 0.9),
		makePOI("p2", domain.CategoryOther, 0.5),
	}
	matrix := domain.NewDistanceMatrix(domain.ModeWalk, []domain.TravelTime{
		{Origin: "p1", Destination: "p2", Minutes: 20},
	})

	tl := BuildDayTimeline(pois, matrix, mediumParams(0.15))

	require.Len(t, tl.Slots, 3)
	require.NotNil(t, tl.Slots[1].Transport)
	assert.InDelta(t, 23.0, tl.Slots[1].Transport.ETAMinutes, 1e-9)
}

func TestBuildDayTimelineLunchStraddle(t *testing.T) {
	// A single four-hour activity starting at 09:00 straddles 12:30: the
	// meal slot is anchored at 12:30 and the activity moves behind it.
	poi := makePOI("long", domain.CategoryOther, 0.9)
	poi.MinDwell = 240
	matrix := domain.NewDistanceMatrix(domain.ModeWalk, nil)

	tl := BuildDayTimeline([]domain.CandidatePOI{poi}, matrix, mediumParams(0.0))

	require.Len(t, tl.Slots, 2)

	assert.Equal(t, domain.SlotTypeMeal, tl.Slots[0].Type)
	assert.Equal(t, "12:30", tl.Slots[0].Start)
	assert.Equal(t, "13:30", tl.Slots[0].End)

	assert.Equal(t, "long", tl.Slots[1].POIID)
	assert.Equal(t, "13:30", tl.Slots[1].Start)
	assert.Equal(t, "17:30", tl.Slots[1].End)

	// Day total runs to the end of the last slot, covering the inserted
	// 60 meal minutes.
	assert.InDelta(t, 510.0, tl.TotalMinutes, 1e-9)
	assert.Zero(t, tl.TransitShare)
}

func TestBuildDayTimelineLunchOnlyOnce(t *testing.T) {
	p1 := makePOI("p1", domain.CategoryOther, 0.9)
	p1.MinDwell = 240
	p2 := makePOI("p2", domain.CategoryOther, 0.5)
	p2.MinDwell = 240
	matrix := domain.NewDistanceMatrix(domain.ModeWalk, nil)

	tl := BuildDayTimeline([]domain.CandidatePOI{p1, p2}, matrix, mediumParams(0.0))

	meals := 0
	for _, s := range tl.Slots {
		if s.Type == domain.SlotTypeMeal {
			meals++
		}
	}
	assert.Equal(t, 1, meals)
}

func TestBuildDayTimelineSinglePOINoTransport(t *testing.T) {
	poi := makePOI("solo", domain.CategoryOther, 0.9)
	matrix := domain.NewDistanceMatrix(domain.ModeWalk, nil)

	tl := BuildDayTimeline([]domain.CandidatePOI{poi}, matrix, mediumParams(0.15))

	require.Len(t, tl.Slots, 1)
	assert.Equal(t, "solo", tl.Slots[0].POIID)
	assert.Zero(t, tl.TransitShare)
}

func TestBuildDayTimelineEmptyDay(t *testing.T) {
	matrix := domain.NewDistanceMatrix(domain.ModeWalk, nil)

	tl := BuildDayTimeline(nil, matrix, mediumParams(0.15))

	assert.Empty(t, tl.Slots)
	assert.Zero(t, tl.TotalMinutes)
	assert.Zero(t, tl.TransitShare)
}

func TestBuildDayTimelineTransitShareRange(t *testing.T) {
	pois := []domain.CandidatePOI{
		makePOI("p1", domain.CategoryOther, 0.9),
		makePOI("p2", domain.CategoryOther, 0.5),
		makePOI("p3", domain.CategoryOther, 0.3),
	}
	matrix := domain.NewDistanceMatrix(domain.ModeWalk, []domain.TravelTime{
		{Origin: "p1", Destination: "p2", Minutes: 40},
		{Origin: "p2", Destination: "p3", Minutes: 55},
	})

	tl := BuildDayTimeline(pois, matrix, mediumParams(0.25))

	assert.GreaterOrEqual(t, tl.TransitShare, 0.0)
	assert.LessOrEqual(t, tl.TransitShare, 1.0)
	assert.Positive(t, tl.TransitShare)
}

func TestBuildDayTimelineIdempotent(t *testing.T) {
	pois := []domain.CandidatePOI{
		makePOI("p1", domain.CategoryOther, 0.9),
		makePOI("p2", domain.CategoryOther, 0.5),
	}
	matrix := domain.NewDistanceMatrix(domain.ModeTransit, []domain.TravelTime{
		{Origin: "p1", Destination: "p2", Minutes: 18},
	})
	params := mediumParams(0.15)

	first := BuildDayTimeline(pois, matrix, params)
	second := BuildDayTimeline(pois, matrix, params)

	assert.Equal(t, first, second)
}
