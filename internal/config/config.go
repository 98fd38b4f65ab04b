package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config is the full service configuration. Values come from an optional
// YAML file overridden by TRIP_-prefixed environment variables
// (TRIP_CACHE__BACKEND=redis maps to cache.backend).
type Config struct {
	Port     string `koanf:"port"`
	LogLevel string `koanf:"log_level"`

	DatabaseURL string `koanf:"database_url"`
	SeedPath    string `koanf:"seed_path"`

	Cache CacheConfig `koanf:"cache"`

	// DefaultTopN is the number of POI candidates requested per planning run.
	DefaultTopN int `koanf:"default_top_n_pois"`
}

type CacheConfig struct {
	Backend  string `koanf:"backend"`
	RedisURL string `koanf:"redis_url"`
}

func (c *Config) SetDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.SeedPath == "" {
		c.SeedPath = "data/seeds/pois.json"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheBackendMemory
	}
	if c.Cache.RedisURL == "" {
		c.Cache.RedisURL = "redis://localhost:6379/0"
	}
	if c.DefaultTopN == 0 {
		c.DefaultTopN = 30
	}
}

func (c Config) Validate() error {
	if c.Cache.Backend != CacheBackendMemory && c.Cache.Backend != CacheBackendRedis {
		return fmt.Errorf("config: unknown cache backend %q", c.Cache.Backend)
	}
	if c.DefaultTopN < 1 {
		return fmt.Errorf("config: default_top_n_pois must be positive, got %d", c.DefaultTopN)
	}
	return nil
}

// Load reads configuration from the given YAML file (skipped when path is
// empty) and applies environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("TRIP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "trip_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
