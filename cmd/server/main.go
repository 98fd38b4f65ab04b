package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/pois"
	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/adapters/weather"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/engine"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters behind the engine's ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		// Not an error: environment variables may be set directly.
		os.Stderr.WriteString("no .env file found (using environment variables)\n")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := obs.NewLogger(cfg.LogLevel)

	// POI candidates come from Postgres when configured, demo data otherwise.
	var poiProvider ports.POIProvider
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("open database")
		}
		defer conn.Close()
		poiProvider = pois.NewSQLRepository(conn)
		log.Info().Msg("poi provider: postgres")
	} else {
		poiProvider = pois.NewDemoProvider()
		log.Info().Msg("poi provider: demo")
	}

	var matrixCache ports.MatrixCache
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		redisOpts, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse redis url")
		}
		matrixCache = cache.NewRedisMatrixCache(redis.NewClient(redisOpts), 24*time.Hour)
		log.Info().Msg("matrix cache: redis")
	default:
		matrixCache = cache.NewMemoryMatrixCache()
		log.Info().Msg("matrix cache: memory")
	}

	providers := engine.Providers{
		POIs:    poiProvider,
		Routing: routing.NewCachedProvider(routing.NewDemoProvider(), matrixCache, log),
		Weather: weather.NewDemoProvider(),
	}
	opts := engine.PlannerOptions{TopN: cfg.DefaultTopN}

	router := api.NewRouter(providers, opts, log)

	log.Info().Str("addr", ":"+cfg.Port).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}
