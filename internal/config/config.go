package config

import (
	"fmt"
	"os"
	"strconv"
)

// Backend names accepted for STORE_BACKEND. Picking the memory backend is an
// explicit operator choice; the server never falls back to it on its own.
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	Env          string
	Port         string
	StoreBackend string

	RedisURL  string
	RedisPass string
	RedisDB   int
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:          getEnv("ENV", "development"),
		Port:         getEnv("PORT", "4000"),
		StoreBackend: getEnv("STORE_BACKEND", BackendRedis),
		RedisURL:     getEnv("REDIS_URL", "localhost:6379"),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),
	}

	switch cfg.StoreBackend {
	case BackendRedis, BackendMemory:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND: %q", cfg.StoreBackend)
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = db

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
