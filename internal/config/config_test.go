// ABOUTME: Tests for environment configuration parsing.

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.APIURL != "http://localhost:3000/api" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Port != 3000 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Errorf("APITimeout = %v", cfg.APITimeout)
	}
	if !cfg.EnableMocking {
		t.Error("mocking should default to enabled")
	}
	if cfg.Production {
		t.Error("production should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAESTRO_API_URL", "https://api.banda.org/v1")
	t.Setenv("MAESTRO_PORT", "8080")
	t.Setenv("MAESTRO_PRODUCTION", "true")
	t.Setenv("MAESTRO_API_TIMEOUT", "5s")
	t.Setenv("MAESTRO_FEATURES", "Analytics, beta-gallery")

	cfg := Load()
	if cfg.APIURL != "https://api.banda.org/v1" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if !cfg.Production {
		t.Error("Production not parsed")
	}
	if cfg.APITimeout != 5*time.Second {
		t.Errorf("APITimeout = %v", cfg.APITimeout)
	}
	if !cfg.FeatureEnabled("analytics") || !cfg.FeatureEnabled("BETA-GALLERY") {
		t.Error("feature flags should be case-insensitive")
	}
	if cfg.FeatureEnabled("unknown") {
		t.Error("unknown feature should be off")
	}
}

func TestTimeoutAcceptsMilliseconds(t *testing.T) {
	t.Setenv("MAESTRO_API_TIMEOUT", "1500")
	cfg := Load()
	if cfg.APITimeout != 1500*time.Millisecond {
		t.Errorf("APITimeout = %v, want 1.5s", cfg.APITimeout)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("MAESTRO_PORT", "not-a-number")
	t.Setenv("MAESTRO_PRODUCTION", "sim")
	cfg := Load()
	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want default on parse failure", cfg.Port)
	}
	if cfg.Production {
		t.Error("unparseable bool should fall back")
	}
}
