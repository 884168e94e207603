package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// FromEnv builds a config from the defaults overlaid with environment
// variables. A .env file in the working directory is loaded first when
// present; a missing file just means the system environment is used as-is.
func FromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	cfg.Workers = getEnvInt("UNIVERSE_WORKERS", cfg.Workers)
	cfg.Galaxy.Name = getEnv("UNIVERSE_DEFAULT_GALAXY_NAME", cfg.Galaxy.Name)
	cfg.Galaxy.Systems.Min = getEnvFloat("UNIVERSE_MIN_SYSTEMS", cfg.Galaxy.Systems.Min)
	cfg.Galaxy.Systems.Max = getEnvFloat("UNIVERSE_MAX_SYSTEMS", cfg.Galaxy.Systems.Max)
	cfg.System.Planets.Min = getEnvFloat("UNIVERSE_MIN_PLANETS_PER_SYSTEM", cfg.System.Planets.Min)
	cfg.System.Planets.Max = getEnvFloat("UNIVERSE_MAX_PLANETS_PER_SYSTEM", cfg.System.Planets.Max)
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.JSONFormat = getEnv("ENVIRONMENT", "development") == "production"

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
