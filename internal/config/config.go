// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:8081"] (webpack dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// GeoURL is the base endpoint of the geocoding service. Required.
	GeoURL string
	// GeoUsername is the geocoding service account name. Required.
	GeoUsername string

	// WeatherURL is the base endpoint of the daily-forecast service. Required.
	WeatherURL string
	// WeatherAPIKey authenticates against the forecast service. Required.
	WeatherAPIKey string

	// ImageURL is the base endpoint of the image search service. Required.
	ImageURL string
	// ImageAPIKey authenticates against the image search service. Required.
	ImageAPIKey string

	// ProviderRPS caps outbound requests per second towards each external
	// service. Defaults to 2; fractional values are allowed.
	ProviderRPS float64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8081")),
		ProviderRPS: 2,
	}

	if raw := os.Getenv("PROVIDER_RPS"); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil || rps <= 0 {
			return Config{}, fmt.Errorf("PROVIDER_RPS must be a positive number, got %q", raw)
		}
		cfg.ProviderRPS = rps
	}

	var missing []string
	for _, v := range []struct {
		name   string
		target *string
	}{
		{"GEO_URL", &cfg.GeoURL},
		{"GEO_USERNAME", &cfg.GeoUsername},
		{"WEATHER_URL", &cfg.WeatherURL},
		{"WEATHER_API_KEY", &cfg.WeatherAPIKey},
		{"IMAGE_URL", &cfg.ImageURL},
		{"IMAGE_API_KEY", &cfg.ImageAPIKey},
	} {
		*v.target = os.Getenv(v.name)
		if *v.target == "" {
			missing = append(missing, v.name)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
