package dto

import "trip-planner-service/internal/domain"

type PlanRequest struct {
	City      string   `json:"city"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	PartySize int      `json:"party_size"`
	Mode      string   `json:"mode"`
	Pace      string   `json:"pace"`
	Themes    []string `json:"themes"`
}

type TransportResponse struct {
	Mode       string  `json:"mode"`
	ETAMinutes float64 `json:"eta_min"`
}

type SlotResponse struct {
	Start     string             `json:"start"`
	End       string             `json:"end"`
	POIID     string             `json:"poi_id,omitempty"`
	Type      string             `json:"type,omitempty"`
	Transport *TransportResponse `json:"transport,omitempty"`
}

type DayPlanResponse struct {
	Date            string         `json:"date"`
	Slots           []SlotResponse `json:"slots"`
	DayTotalTimeMin float64        `json:"day_total_time_min"`
	TransitShare    float64        `json:"transit_share"`
}

type TripPlanResponse struct {
	City          string            `json:"city"`
	Days          []DayPlanResponse `json:"days"`
	Sources       []string          `json:"sources"`
	ItineraryText string            `json:"itinerary_text"`
	WhyThisPlan   string            `json:"why_this_plan"`
}

// FromTripPlan converts the domain plan to its wire shape: ISO-8601 dates
// and "HH:MM" slot boundaries.
func FromTripPlan(plan domain.TripPlan) TripPlanResponse {
	days := make([]DayPlanResponse, 0, len(plan.Days))
	for _, day := range plan.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, s := range day.Slots {
			slot := SlotResponse{
				Start: s.Start,
				End:   s.End,
				POIID: s.POIID,
				Type:  s.Type,
			}
			if s.Transport != nil {
				slot.Transport = &TransportResponse{
					Mode:       string(s.Transport.Mode),
					ETAMinutes: s.Transport.ETAMinutes,
				}
			}
			slots = append(slots, slot)
		}
		days = append(days, DayPlanResponse{
			Date:            day.Date.Format("2006-01-02"),
			Slots:           slots,
			DayTotalTimeMin: day.TotalTimeMinutes,
			TransitShare:    day.TransitShare,
		})
	}

	return TripPlanResponse{
		City:          plan.City,
		Days:          days,
		Sources:       plan.Sources,
		ItineraryText: plan.ItineraryText,
		WhyThisPlan:   plan.WhyThisPlan,
	}
}
