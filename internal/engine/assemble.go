package engine

import (
	"time"

	"trip-planner-service/internal/domain"
)

// PlanSources labels the upstream collaborators whose data fed the plan.
var PlanSources = []string{"POIService", "RoutingService", "WeatherService"}

// AssembleTripPlan zips built day timelines with their calendar dates into
// the final trip plan. Production stops once either the date range or the
// day outputs are exhausted, whichever is shorter. Narrative fields are left
// empty for the downstream narration stage.
func AssembleTripPlan(city string, dates []time.Time, days []DayTimeline) domain.TripPlan {
	n := len(days)
	if len(dates) < n {
		n = len(dates)
	}

	dayPlans := make([]domain.DayPlan, 0, n)
	for i := 0; i < n; i++ {
		dayPlans = append(dayPlans, domain.DayPlan{
			Date:             dates[i],
			Slots:            days[i].Slots,
			TotalTimeMinutes: days[i].TotalMinutes,
			TransitShare:     days[i].TransitShare,
		})
	}

	return domain.TripPlan{
		City:          city,
		Days:          dayPlans,
		Sources:       append([]string(nil), PlanSources...),
		ItineraryText: "",
		WhyThisPlan:   "",
	}
}
