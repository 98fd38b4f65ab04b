package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/ports"
)

// POIHandler exposes read-only POI candidate retrieval.
type POIHandler struct {
	Provider ports.POIProvider
	Log      zerolog.Logger
}

func (h *POIHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		writeError(w, r, http.StatusBadRequest, "city is required")
		return
	}

	themes := r.URL.Query()["theme"]

	limit := 30
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = n
	}

	pois, err := h.Provider.Search(r.Context(), city, themes, limit)
	if err != nil {
		h.Log.Error().Err(err).Str("city", city).Msg("list pois failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromPOIs(pois))
}
