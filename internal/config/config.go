// Package config provides centralized configuration for the flakytodo server.
// All configurable values are loaded from environment variables with sensible
// defaults; command-line flags in main may override them.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultFailureRate is the fraction of API calls that fail when
// FAILURE_RATE is not set.
const DefaultFailureRate = 0.01

// Config holds all server configuration values.
type Config struct {
	// Port is the HTTP server listen port.
	Port string

	// FailureRate is the fraction of API calls that fail with a
	// simulated error. Must be within [0, 1].
	FailureRate float64

	// Debug enables debug-level logging.
	Debug bool
}

// Load reads configuration from environment variables, applying defaults.
// The result is not yet validated; call Validate after any overrides.
func Load() Config {
	return Config{
		Port:        envOr("PORT", "8042"),
		FailureRate: envFloat("FAILURE_RATE", DefaultFailureRate),
		Debug:       envBool("DEBUG", false),
	}
}

// Validate checks that the configuration can start a server.
func (c Config) Validate() error {
	if c.FailureRate < 0 || c.FailureRate > 1 {
		return fmt.Errorf("failure rate must be between 0 and 1, got %v", c.FailureRate)
	}
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
