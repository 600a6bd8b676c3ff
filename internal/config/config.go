package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	BackendURL     string
	BackendTimeout time.Duration

	SessionSecret        string
	SessionIdleTTL       time.Duration
	SessionMax           int
	SessionSweepSchedule string

	CORSAllowedOrigins []string
	Env                string
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:                 withDefault(getenv("PORT"), "8080"),
		BackendURL:           strings.TrimRight(withDefault(getenv("BACKEND_URL"), getenv("PUBLIC_ORIGIN")), "/"),
		SessionSecret:        getenv("SESSION_SECRET"),
		SessionSweepSchedule: withDefault(getenv("SESSION_SWEEP_SCHEDULE"), "@every 5m"),
		Env:                  withDefault(getenv("APP_ENV"), "development"),
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is not set")
	}
	// бэкенд на том же origin: PUBLIC_ORIGIN, а не Host из запроса
	if cfg.BackendURL == "" {
		return nil, errors.New("BACKEND_URL or PUBLIC_ORIGIN is not set")
	}

	var err error
	if cfg.BackendTimeout, err = duration(getenv, "BACKEND_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.SessionIdleTTL, err = duration(getenv, "SESSION_IDLE_TTL", 30*time.Minute); err != nil {
		return nil, err
	}

	cfg.SessionMax = 10000
	if raw := getenv("SESSION_MAX"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("SESSION_MAX: invalid value %q", raw)
		}
		cfg.SessionMax = n
	}

	for _, o := range strings.Split(withDefault(getenv("CORS_ALLOWED_ORIGINS"), "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func duration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: negative duration %s", key, d)
	}
	return d, nil
}
