package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/engine"
	"trip-planner-service/internal/metrics"
	"trip-planner-service/internal/platform/obs"
)

// PlanHandler runs the scheduling engine for a requested trip.
type PlanHandler struct {
	Providers engine.Providers
	Opts      engine.PlannerOptions
	Log       zerolog.Logger
}

// Create validates the request, builds trip constraints, and invokes the
// planning pipeline. Validation failures surface before the engine runs.
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	constraints, errMsg := buildConstraints(req)
	if errMsg != "" {
		writeError(w, r, http.StatusBadRequest, errMsg)
		return
	}

	start := time.Now()
	done := obs.Time(r.Context(), h.Log, "plan.trip")
	plan, err := engine.PlanTrip(r.Context(), h.Log, constraints, h.Providers, h.Opts)
	done(&err)
	metrics.PlanDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PlanRuns.WithLabelValues("error").Inc()
		h.Log.Error().Err(err).Str("city", constraints.City).Msg("plan trip failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	metrics.PlanRuns.WithLabelValues("ok").Inc()
	metrics.PlannedDays.Observe(float64(len(plan.Days)))

	writeJSON(w, r, http.StatusOK, dto.FromTripPlan(plan))
}

// buildConstraints maps the wire request to validated trip constraints.
// Returns a user-facing message on validation failure.
func buildConstraints(req dto.PlanRequest) (domain.TripConstraints, string) {
	if strings.TrimSpace(req.City) == "" {
		return domain.TripConstraints{}, "city is required"
	}

	startDate, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		return domain.TripConstraints{}, "start must be a date in YYYY-MM-DD form"
	}
	endDate, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		return domain.TripConstraints{}, "end must be a date in YYYY-MM-DD form"
	}
	dates, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return domain.TripConstraints{}, "end date must not be earlier than start date"
	}

	party := req.PartySize
	if party == 0 {
		party = 2
	}
	if party < 1 || party > 20 {
		return domain.TripConstraints{}, "party_size must be between 1 and 20"
	}

	mode := domain.ModeWalk
	if req.Mode != "" {
		mode, err = domain.ParseMode(req.Mode)
		if err != nil {
			return domain.TripConstraints{}, "mode must be one of walk, transit, drive"
		}
	}

	pace := domain.PaceMedium
	if req.Pace != "" {
		pace, err = domain.ParsePace(req.Pace)
		if err != nil {
			return domain.TripConstraints{}, "pace must be one of relaxed, medium, tight"
		}
	}

	constraints, err := domain.NewTripConstraints(req.City, dates, party, mode, pace, req.Themes)
	if err != nil {
		return domain.TripConstraints{}, err.Error()
	}
	return constraints, ""
}
