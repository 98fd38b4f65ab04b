package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/pois"
	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/adapters/weather"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/engine"
	"trip-planner-service/internal/platform/obs"
)

// planctl generates a trip plan offline using the demo providers and writes
// the result to stdout and an output file.
func main() {
	var (
		city     string
		start    string
		end      string
		party    int
		mode     string
		pace     string
		themes   []string
		outDir   string
		logLevel string
	)

	root := &cobra.Command{
		Use:   "planctl",
		Short: "Generate a demo trip plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := obs.NewLogger(logLevel)

			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("planctl: parse --start: %w", err)
			}
			endDate, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("planctl: parse --end: %w", err)
			}
			dates, err := domain.NewDateRange(startDate, endDate)
			if err != nil {
				return fmt.Errorf("planctl: %w", err)
			}

			modeVal, err := domain.ParseMode(mode)
			if err != nil {
				return fmt.Errorf("planctl: %w", err)
			}
			paceVal, err := domain.ParsePace(pace)
			if err != nil {
				return fmt.Errorf("planctl: %w", err)
			}

			constraints, err := domain.NewTripConstraints(city, dates, party, modeVal, paceVal, themes)
			if err != nil {
				return fmt.Errorf("planctl: %w", err)
			}

			providers := engine.Providers{
				POIs:    pois.NewDemoProvider(),
				Routing: routing.NewCachedProvider(routing.NewDemoProvider(), cache.NewMemoryMatrixCache(), log),
				Weather: weather.NewDemoProvider(),
			}

			plan, err := engine.PlanTrip(cmd.Context(), log, constraints, providers, engine.PlannerOptions{})
			if err != nil {
				return fmt.Errorf("planctl: plan trip: %w", err)
			}

			payload, err := json.MarshalIndent(dto.FromTripPlan(plan), "", "  ")
			if err != nil {
				return fmt.Errorf("planctl: encode plan: %w", err)
			}
			fmt.Println(string(payload))

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("planctl: create output dir: %w", err)
			}
			outPath := filepath.Join(outDir, fmt.Sprintf("trip_%s.json", time.Now().Format("2006-01-02")))
			if err := os.WriteFile(outPath, payload, 0o644); err != nil {
				return fmt.Errorf("planctl: write %q: %w", outPath, err)
			}
			log.Info().Str("path", outPath).Msg("plan written")
			return nil
		},
	}

	root.Flags().StringVar(&city, "city", "", "destination city")
	root.Flags().StringVar(&start, "start", "", "trip start date (YYYY-MM-DD)")
	root.Flags().StringVar(&end, "end", "", "trip end date (YYYY-MM-DD)")
	root.Flags().IntVar(&party, "party", 2, "party size")
	root.Flags().StringVar(&mode, "mode", "walk", "transport mode: walk, transit, drive")
	root.Flags().StringVar(&pace, "pace", "medium", "pacing level: relaxed, medium, tight")
	root.Flags().StringSliceVar(&themes, "themes", nil, "theme tags (e.g. food,museum)")
	root.Flags().StringVar(&outDir, "out", "output", "output directory for the plan JSON")
	root.Flags().StringVar(&logLevel, "log-level", "warn", "log level")

	_ = root.MarkFlagRequired("city")
	_ = root.MarkFlagRequired("start")
	_ = root.MarkFlagRequired("end")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
