package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STATIC_DIR", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 3001 {
		t.Fatalf("Port = %d, want 3001", cfg.Server.Port)
	}
	if cfg.Server.Addr() != ":3001" {
		t.Fatalf("Addr() = %q, want %q", cfg.Server.Addr(), ":3001")
	}
	if cfg.Server.ReadTimeout != 30*time.Second || cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected timeouts: %+v", cfg.Server)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("metrics should be enabled by default")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("STATIC_DIR", "/srv/www")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WRITE_TIMEOUT", "5s")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:8080" {
		t.Fatalf("Addr() = %q", cfg.Server.Addr())
	}
	if !cfg.Server.Production() {
		t.Fatalf("expected production environment")
	}
	if cfg.Static.Dir != "/srv/www" || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
	if cfg.Server.WriteTimeout != 5*time.Second {
		t.Fatalf("WriteTimeout = %v", cfg.Server.WriteTimeout)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("metrics should be disabled")
	}
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected an error for a non-numeric PORT")
	}
}
