package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/engine"
	"trip-planner-service/internal/metrics"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters behind the engine's provider ports.
func NewRouter(providers engine.Providers, opts engine.PlannerOptions, log zerolog.Logger) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	poiHandler := &handlers.POIHandler{Provider: providers.POIs, Log: log}
	planHandler := &handlers.PlanHandler{
		Providers: providers,
		Opts:      opts,
		Log:       log,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/pois", poiHandler.List)
	mux.HandleFunc("/plans", planHandler.Create)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return observe(log, mux)
}
