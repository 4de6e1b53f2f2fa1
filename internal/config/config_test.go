package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.MatchThreshold != 0.6 {
		t.Errorf("expected default threshold 0.6, got %f", cfg.MatchThreshold)
	}
	if cfg.ModelsDir != "models" {
		t.Errorf("expected default models dir 'models', got '%s'", cfg.ModelsDir)
	}
	if cfg.FetchTimeout != 15*time.Second {
		t.Errorf("expected default fetch timeout 15s, got %s", cfg.FetchTimeout)
	}
	if !cfg.FetchInsecureTLS {
		t.Error("expected insecure TLS fetching to default to true")
	}
	if cfg.CacheMaxEntries != 0 {
		t.Errorf("expected unbounded cache by default, got %d", cfg.CacheMaxEntries)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MATCH_THRESHOLD", "0.45")
	t.Setenv("FETCH_INSECURE_TLS", "false")
	t.Setenv("CACHE_MAX_ENTRIES", "1024")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.MatchThreshold != 0.45 {
		t.Errorf("expected threshold 0.45, got %f", cfg.MatchThreshold)
	}
	if cfg.FetchInsecureTLS {
		t.Error("expected insecure TLS fetching to be disabled")
	}
	if cfg.CacheMaxEntries != 1024 {
		t.Errorf("expected cache cap 1024, got %d", cfg.CacheMaxEntries)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid PORT value")
	}
}
