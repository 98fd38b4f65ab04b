package weather

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoProviderRampsPrecipitation(t *testing.T) {
	p := NewDemoProvider()
	dates := []time.Time{
		time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	}

	got, err := p.Summary(context.Background(), "Kyoto", dates)
	require.NoError(t, err)
	require.Len(t, got.Days, 3)

	// Entries come back date-ordered regardless of input order.
	assert.True(t, got.Days[0].Date.Before(got.Days[1].Date))
	assert.InDelta(t, 0.2, got.Days[0].PrecipProb, 1e-9)
	assert.InDelta(t, 0.3, got.Days[2].PrecipProb, 1e-9)

	for _, day := range got.Days {
		assert.LessOrEqual(t, day.PrecipProb, 0.8)
	}
}

func TestDemoProviderNeverTriggersRainBuffer(t *testing.T) {
	p := NewDemoProvider()
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = time.Date(2026, 9, 1+i, 0, 0, 0, 0, time.UTC)
	}

	got, err := p.Summary(context.Background(), "Kyoto", dates)
	require.NoError(t, err)

	// 0.2 + 0.05*6 = 0.5 stays at the rain threshold, never above it.
	assert.False(t, got.AnyWetter(0.5))
}
