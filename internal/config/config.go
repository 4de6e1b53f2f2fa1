package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds all runtime configuration, resolved once at process start.
type Config struct {
	// HTTP listen address
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"3000"`

	// Maximum descriptor distance below which two faces are considered
	// the same person. Metric-specific to the dlib descriptor space;
	// this is a policy constant, not derived from data.
	MatchThreshold float64 `env:"MATCH_THRESHOLD" envDefault:"0.6"`

	// Directory containing the dlib model artifacts (face detector,
	// shape predictor, descriptor network).
	ModelsDir string `env:"MODELS_DIR" envDefault:"models"`

	// Per-fetch timeout for remote image downloads.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"15s"`

	// FetchInsecureTLS disables certificate verification when fetching
	// remote images. Enabled by default so images hosted behind
	// self-signed or misconfigured endpoints can still be fetched.
	// Deliberate, documented trade-off; disable per deployment if the
	// image hosts have valid certificates.
	FetchInsecureTLS bool `env:"FETCH_INSECURE_TLS" envDefault:"true"`

	// CacheMaxEntries bounds the descriptor cache. Zero means unbounded.
	CacheMaxEntries int `env:"CACHE_MAX_ENTRIES" envDefault:"0"`
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
