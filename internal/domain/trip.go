package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Primary transport mode for a trip.
type Mode string

const (
	ModeWalk    Mode = "walk"
	ModeTransit Mode = "transit"
	ModeDrive   Mode = "drive"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeWalk:
		return ModeWalk, nil
	case ModeTransit:
		return ModeTransit, nil
	case ModeDrive:
		return ModeDrive, nil
	}
	return "", fmt.Errorf("parse mode: unknown mode %q", s)
}

// Pacing level controlling how rushed a day is laid out.
type Pace string

const (
	PaceRelaxed Pace = "relaxed"
	PaceMedium  Pace = "medium"
	PaceTight   Pace = "tight"
)

func ParsePace(s string) (Pace, error) {
	switch Pace(strings.ToLower(strings.TrimSpace(s))) {
	case PaceRelaxed:
		return PaceRelaxed, nil
	case PaceMedium:
		return PaceMedium, nil
	case PaceTight:
		return PaceTight, nil
	}
	return "", fmt.Errorf("parse pace: unknown pace %q", s)
}

// Inclusive calendar date range. End must not precede Start.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return DateRange{}, errors.New("date range: end date must not be earlier than start date")
	}
	return DateRange{Start: start, End: end}, nil
}

// NumDays returns the number of calendar days covered, inclusive of both ends.
func (r DateRange) NumDays() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Days returns every calendar date in the range in order.
func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0, r.NumDays())
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// User-supplied planning constraints for a single trip.
// Immutable once constructed; consumed read-only by every planning stage.
type TripConstraints struct {
	City      string
	Dates     DateRange
	PartySize int
	Mode      Mode
	Pace      Pace
	Themes    []string
}

func NewTripConstraints(city string, dates DateRange, partySize int, mode Mode, pace Pace, themes []string) (TripConstraints, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return TripConstraints{}, errors.New("trip constraints: city must be non-empty")
	}
	if partySize < 1 {
		return TripConstraints{}, fmt.Errorf("trip constraints: party size must be >= 1, got %d", partySize)
	}
	return TripConstraints{
		City:      city,
		Dates:     dates,
		PartySize: partySize,
		Mode:      mode,
		Pace:      pace,
		Themes:    append([]string(nil), themes...),
	}, nil
}
