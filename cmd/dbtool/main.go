package main

import (
	"os"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"trip-planner-service/internal/adapters/pois"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/platform/obs"
)

// dbtool initializes the POI schema and seeds it from a JSON file.
func main() {
	if err := godotenv.Load(); err != nil {
		os.Stderr.WriteString("no .env file found (using environment variables)\n")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := obs.NewLogger(cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("database_url is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	log.Info().Msg("initializing poi schema")
	if err := pois.InitSchema(conn); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}

	log.Info().Str("path", cfg.SeedPath).Msg("seeding pois")
	if err := pois.SeedFromJSON(conn, cfg.SeedPath); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seeding complete")
}
