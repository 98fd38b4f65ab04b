package pois

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"trip-planner-service/internal/domain"
)

// SQLRepository is a Postgres-backed POI store. It satisfies both
// ports.POIRepository and ports.POIProvider so seeded cities can feed the
// planner directly.
type SQLRepository struct {
	DB *sql.DB
}

func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

// ListPOIs returns up to limit POIs for a city ordered by popularity
// descending. A non-empty theme list restricts results to those categories.
func (r *SQLRepository) ListPOIs(ctx context.Context, city string, themes []string, limit int) ([]domain.CandidatePOI, error) {
	if r.DB == nil {
		return nil, errors.New("poi repository: db is nil")
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return nil, errors.New("list pois: city must not be empty")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("list pois: limit must be positive, got %d", limit)
	}

	q := `
	SELECT poi_id, name, lat, lon, category, popularity, min_dwell,
	       source_name, source_url, source_fetched_at
	FROM pois
	WHERE lower(city) = lower($1)
	  AND (cardinality($2::text[]) = 0 OR category = ANY($2::text[]))
	ORDER BY popularity DESC, poi_id ASC
	LIMIT $3;
	`

	if themes == nil {
		themes = []string{}
	}

	rows, err := r.DB.QueryContext(ctx, q, city, themes, limit)
	if err != nil {
		return nil, fmt.Errorf("list pois: query pois table: %w", err)
	}
	defer rows.Close()

	var out []domain.CandidatePOI
	for rows.Next() {
		var poi domain.CandidatePOI
		var category string
		if err := rows.Scan(
			&poi.ID, &poi.Name, &poi.Lat, &poi.Lon, &category,
			&poi.Popularity, &poi.MinDwell,
			&poi.Source.Name, &poi.Source.URL, &poi.Source.FetchedAt,
		); err != nil {
			return nil, fmt.Errorf("list pois: scan rows: %w", err)
		}
		poi.Category = domain.Category(category)
		out = append(out, poi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pois: row iteration: %w", err)
	}

	return out, nil
}

// Search satisfies ports.POIProvider using the stored records.
func (r *SQLRepository) Search(ctx context.Context, city string, themes []string, limit int) ([]domain.CandidatePOI, error) {
	return r.ListPOIs(ctx, city, themes, limit)
}

// InitSchema creates the pois table if it does not exist.
func InitSchema(db *sql.DB) error {
	q := `
	CREATE TABLE IF NOT EXISTS pois (
		poi_id            TEXT PRIMARY KEY,
		city              TEXT NOT NULL,
		name              TEXT NOT NULL,
		lat               DOUBLE PRECISION NOT NULL,
		lon               DOUBLE PRECISION NOT NULL,
		category          TEXT NOT NULL,
		popularity        DOUBLE PRECISION NOT NULL,
		min_dwell         INTEGER NOT NULL,
		source_name       TEXT NOT NULL DEFAULT '',
		source_url        TEXT NOT NULL DEFAULT '',
		source_fetched_at TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS pois_city_idx ON pois (lower(city));
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create pois table: %w", err)
	}
	return nil
}

type seedPOI struct {
	POIID      string  `json:"poi_id"`
	City       string  `json:"city"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Category   string  `json:"category"`
	Popularity float64 `json:"popularity"`
	MinDwell   int     `json:"min_dwell"`
	SourceName string  `json:"source_name"`
	SourceURL  string  `json:"source_url"`
	FetchedAt  string  `json:"fetched_at"`
}

// SeedFromJSON loads POI records from a JSON file into the pois table,
// upserting on poi_id so reseeding local databases is safe.
func SeedFromJSON(db *sql.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed pois: read %q: %w", path, err)
	}

	var seeds []seedPOI
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("seed pois: parse %q: %w", path, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed pois: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO pois (poi_id, city, name, lat, lon, category, popularity, min_dwell,
	                  source_name, source_url, source_fetched_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (poi_id) DO UPDATE
	SET city = EXCLUDED.city,
		name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		category = EXCLUDED.category,
		popularity = EXCLUDED.popularity,
		min_dwell = EXCLUDED.min_dwell;
	`)
	if err != nil {
		return fmt.Errorf("seed pois: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, s := range seeds {
		if strings.TrimSpace(s.POIID) == "" {
			return errors.New("seed pois: record with empty poi_id")
		}
		if _, err := stmt.Exec(
			s.POIID, s.City, s.Name, s.Lat, s.Lon, s.Category, s.Popularity, s.MinDwell,
			s.SourceName, s.SourceURL, s.FetchedAt,
		); err != nil {
			return fmt.Errorf("seed pois: insert %q: %w", s.POIID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed pois: commit: %w", err)
	}

	return nil
}
