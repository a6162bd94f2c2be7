package config

import (
	"errors"
	"fmt"
	"itinerary-service/internal/domain"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the service configuration. Values come from, in increasing
// priority: built-in defaults, the YAML file named by CONFIG_PATH, and the
// environment (including a local .env file).
type Config struct {
	Port        string        `yaml:"port"`
	DBDriver    string        `yaml:"db_driver"`
	DBPath      string        `yaml:"db_path"`
	DatabaseURL string        `yaml:"database_url"`
	RedisAddr   string        `yaml:"redis_addr"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
	SeedPath    string        `yaml:"seed_path"`
	DayStart    string        `yaml:"day_start"`
}

func Default() *Config {
	return &Config{
		Port:     "8080",
		DBDriver: "sqlite",
		DBPath:   "data/itineraries.db",
		CacheTTL: 24 * time.Hour,
		DayStart: "08:00:00",
	}
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds the effective configuration.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := Default()

	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	}

	cfg.Port = Get("PORT", cfg.Port)
	cfg.DBDriver = Get("DB_DRIVER", cfg.DBDriver)
	cfg.DBPath = Get("DB_PATH", cfg.DBPath)
	cfg.DatabaseURL = Get("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisAddr = Get("REDIS_ADDR", cfg.RedisAddr)
	cfg.SeedPath = Get("SEED_PATH", cfg.SeedPath)
	cfg.DayStart = Get("DAY_START", cfg.DayStart)

	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("load config: CACHE_TTL %q: %w", raw, err)
		}
		cfg.CacheTTL = ttl
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Normalize fills zero values with defaults.
func (c *Config) Normalize() {
	d := Default()
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	if c.DBDriver == "" {
		c.DBDriver = d.DBDriver
	}
	if c.Port == "" {
		c.Port = d.Port
	}
	if c.DBPath == "" {
		c.DBPath = d.DBPath
	}
	if c.DayStart == "" {
		c.DayStart = d.DayStart
	}
	if c.CacheTTL < 0 {
		c.CacheTTL = 0
	}
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "memory":
	case "postgres":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if _, ok := domain.ParseClock(c.DayStart); !ok {
		return fmt.Errorf("DAY_START %q is not a clock time", c.DayStart)
	}
	return nil
}

// DayStartMillis returns DayStart as milliseconds of day.
func (c *Config) DayStartMillis() int {
	ms, ok := domain.ParseClock(c.DayStart)
	if !ok {
		return 8 * domain.HourMillis
	}
	return ms
}
