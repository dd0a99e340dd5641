package server

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	envAddr            = "BOLTGROUP_ADDR"
	envRateRPS         = "BOLTGROUP_RATE_RPS"
	envRateBurst       = "BOLTGROUP_RATE_BURST"
	envShutdownTimeout = "BOLTGROUP_SHUTDOWN_TIMEOUT"
)

// Defaults applied when a variable is unset.
const (
	DefaultAddr            = ":8080"
	DefaultRateRPS         = 5.0
	DefaultRateBurst       = 10
	DefaultShutdownTimeout = 5 * time.Second
)

// Config carries the listener address, the per-client rate limit and the
// drain budget applied on shutdown.
type Config struct {
	Addr            string
	RateRPS         float64
	RateBurst       int
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            DefaultAddr,
		RateRPS:         DefaultRateRPS,
		RateBurst:       DefaultRateBurst,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// LoadConfig resolves the configuration from the environment. A .env file
// in the working directory is merged first when present; a missing file is
// not an error. Malformed values are.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv(envAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(envRateRPS); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("server: parse %s: %w", envRateRPS, err)
		}
		cfg.RateRPS = rps
	}
	if v := os.Getenv(envRateBurst); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("server: parse %s: %w", envRateBurst, err)
		}
		cfg.RateBurst = burst
	}
	if v := os.Getenv(envShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("server: parse %s: %w", envShutdownTimeout, err)
		}
		cfg.ShutdownTimeout = d
	}
	return cfg, nil
}
