// Package config reads the service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	Port          string

	WorkerCount int
	WorkerQueue int

	GeocodingURL string
	CEPURL       string
	IBGEURL      string
	CORSOrigins  []string
}

// Addr is the listen address for echo.
func (c Config) Addr() string {
	return ":" + c.Port
}

var loadDotEnv = godotenv.Load

// Load reads the configuration. A missing .env file is not an error.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		slog.Debug("no .env file, using environment only")
	}

	cfg := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		Port:          envOr("PORT", "8080"),
		GeocodingURL:  os.Getenv("GEOCODING_URL"),
		CEPURL:        os.Getenv("CEP_URL"),
		IBGEURL:       os.Getenv("IBGE_URL"),
		CORSOrigins:   splitList(envOr("CORS_ORIGINS", "*")),
	}

	for name, v := range map[string]string{
		"DATABASE_URL": cfg.DatabaseURL,
		"REDIS_ADDR":   cfg.RedisAddr,
		"JWT_SECRET":   cfg.JWTSecret,
	} {
		if v == "" {
			return Config{}, fmt.Errorf("environment variable %s is not set", name)
		}
	}

	var err error
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0, 0); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount, err = intEnv("WORKER_COUNT", 2, 1); err != nil {
		return Config{}, err
	}
	if cfg.WorkerQueue, err = intEnv("WORKER_QUEUE", 256, 1); err != nil {
		return Config{}, err
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}
	return cfg, nil
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// intEnv parses name, falling back to def when unset; values below floor are rejected.
func intEnv(name string, def, floor int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < floor {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
