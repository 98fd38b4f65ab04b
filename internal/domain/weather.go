package domain

import "time"

// Forecast entry for a single calendar date.
type WeatherDay struct {
	Date       time.Time `json:"date"`
	PrecipProb float64   `json:"precip_prob"`
	Note       string    `json:"note"`
}

// Day-indexed precipitation outlook covering a trip's date range.
type WeatherSummary struct {
	Days []WeatherDay `json:"by_date"`
}

// ForDate returns the forecast entry for the given calendar date, if present.
func (s WeatherSummary) ForDate(day time.Time) (WeatherDay, bool) {
	for _, d := range s.Days {
		if d.Date.Year() == day.Year() && d.Date.YearDay() == day.YearDay() {
			return d, true
		}
	}
	return WeatherDay{}, false
}

// AnyWetter reports whether any day's precipitation probability exceeds threshold.
func (s WeatherSummary) AnyWetter(threshold float64) bool {
	for _, d := range s.Days {
		if d.PrecipProb > threshold {
			return true
		}
	}
	return false
}
