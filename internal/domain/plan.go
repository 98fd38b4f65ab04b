package domain

import "time"

// Slot kinds. A slot carries exactly one of: a POI id (activity), a
// transport descriptor (transit), or a meal marker.
const (
	SlotTypeTransit = "transit"
	SlotTypeMeal    = "meal"
)

// Transport descriptor attached to a transit slot.
type TransportInfo struct {
	Mode       Mode    `json:"mode"`
	ETAMinutes float64 `json:"eta_min"`
}

// A single timeline entry within a day. Start and End are "HH:MM" 24-hour
// strings; slots are appended in order and never overlap in time.
type Slot struct {
	Start     string         `json:"start"`
	End       string         `json:"end"`
	POIID     string         `json:"poi_id,omitempty"`
	Type      string         `json:"type,omitempty"`
	Transport *TransportInfo `json:"transport,omitempty"`
}

// Planned timeline for one calendar day.
type DayPlan struct {
	Date             time.Time
	Slots            []Slot
	TotalTimeMinutes float64
	TransitShare     float64
}

// The assembled plan for a whole trip. ItineraryText and WhyThisPlan are
// filled by a downstream narration stage; empty strings are a valid default.
type TripPlan struct {
	City          string
	Days          []DayPlan
	Sources       []string
	ItineraryText string
	WhyThisPlan   string
}
