package domain

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRangeRejectsReversedDates(t *testing.T) {
	_, err := NewDateRange(day(2026, 9, 3), day(2026, 9, 1))
	if err == nil {
		t.Fatal("expected error for end before start")
	}
}

func TestDateRangeDays(t *testing.T) {
	r, err := NewDateRange(day(2026, 9, 1), day(2026, 9, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.NumDays() != 3 {
		t.Fatalf("NumDays = %d, want 3", r.NumDays())
	}

	days := r.Days()
	if len(days) != 3 {
		t.Fatalf("len(Days) = %d, want 3", len(days))
	}
	if !days[0].Equal(day(2026, 9, 1)) || !days[2].Equal(day(2026, 9, 3)) {
		t.Fatalf("Days = %v, want 2026-09-01..2026-09-03", days)
	}
}

func TestDateRangeSingleDay(t *testing.T) {
	r, err := NewDateRange(day(2026, 9, 1), day(2026, 9, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NumDays() != 1 {
		t.Fatalf("NumDays = %d, want 1", r.NumDays())
	}
}

func TestNewTripConstraintsValidation(t *testing.T) {
	dates, err := NewDateRange(day(2026, 9, 1), day(2026, 9, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewTripConstraints("", dates, 2, ModeWalk, PaceMedium, nil); err == nil {
		t.Fatal("expected error for empty city")
	}
	if _, err := NewTripConstraints("Kyoto", dates, 0, ModeWalk, PaceMedium, nil); err == nil {
		t.Fatal("expected error for party size below 1")
	}

	c, err := NewTripConstraints("Kyoto", dates, 2, ModeDrive, PaceTight, []string{"food"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Mode != ModeDrive || c.Pace != PaceTight {
		t.Fatalf("constraints not preserved: %+v", c)
	}
}

func TestParseModeAndPace(t *testing.T) {
	if m, err := ParseMode(" Drive "); err != nil || m != ModeDrive {
		t.Fatalf("ParseMode = %v, %v", m, err)
	}
	if _, err := ParseMode("teleport"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if p, err := ParsePace("RELAXED"); err != nil || p != PaceRelaxed {
		t.Fatalf("ParsePace = %v, %v", p, err)
	}
	if _, err := ParsePace("frantic"); err == nil {
		t.Fatal("expected error for unknown pace")
	}
}
