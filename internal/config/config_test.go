package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_MODE", "file")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "production" {
		t.Fatalf("Env = %q, want production", cfg.Env)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Coach.Model != "gpt-4o-mini" {
		t.Fatalf("Coach.Model = %q", cfg.Coach.Model)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_MODE", "file")
	t.Setenv("ENV", "development")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "development" {
		t.Fatalf("Env = %q, want development", cfg.Env)
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORAGE_MODE", "file")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing JWT_SECRET")
	}
}

func TestLoadRejectsUnknownStorageMode(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_MODE", "carrier-pigeon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown STORAGE_MODE")
	}
}
