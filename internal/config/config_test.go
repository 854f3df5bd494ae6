package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  path: "ironlog.db"
workout:
  default_rest_seconds: 120
  default_set_count: 4
auth:
  api_key: "test-key-123"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "ironlog.db" {
		t.Errorf("database.path = %q, want %q", cfg.Database.Path, "ironlog.db")
	}
	if cfg.Workout.DefaultRestSeconds != 120 {
		t.Errorf("workout.default_rest_seconds = %d, want 120", cfg.Workout.DefaultRestSeconds)
	}
	if cfg.Workout.DefaultSetCount != 4 {
		t.Errorf("workout.default_set_count = %d, want 4", cfg.Workout.DefaultSetCount)
	}
	if cfg.Auth.APIKey != "test-key-123" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "test-key-123")
	}
}

// TestDefaults verifies that omitted workout settings fall back to sane values.
func TestDefaults(t *testing.T) {
	yaml := `
server:
  port: 8080
database:
  path: "ironlog.db"
auth:
  api_key: "key"
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Workout.DefaultRestSeconds != 90 {
		t.Errorf("default rest = %d, want 90", cfg.Workout.DefaultRestSeconds)
	}
	if cfg.Workout.DefaultSetCount != 3 {
		t.Errorf("default set count = %d, want 3", cfg.Workout.DefaultSetCount)
	}
	if cfg.Tailscale.Hostname != "ironlog" {
		t.Errorf("tailscale.hostname = %q, want %q", cfg.Tailscale.Hostname, "ironlog")
	}
}

// TestEnvOverride verifies that IRONLOG_ env vars take precedence over YAML values.
// This ensures production deployments can override config via environment.
func TestEnvOverride(t *testing.T) {
	t.Setenv("IRONLOG_DB_PATH", "/data/override.db")
	t.Setenv("IRONLOG_SERVER_PORT", "9999")
	t.Setenv("IRONLOG_AUTH_API_KEY", "env-key")
	t.Setenv("IRONLOG_WORKOUT_REST_SECONDS", "60")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "/data/override.db" {
		t.Errorf("database.path = %q, want %q", cfg.Database.Path, "/data/override.db")
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "env-key")
	}
	if cfg.Workout.DefaultRestSeconds != 60 {
		t.Errorf("workout.default_rest_seconds = %d, want 60", cfg.Workout.DefaultRestSeconds)
	}
	// Unchanged fields should keep YAML values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
}

// TestValidationMissingPort verifies that missing required fields produce a clear error.
// Prevents starting the server with incomplete configuration.
func TestValidationMissingPort(t *testing.T) {
	yaml := `
server:
  host: "0.0.0.0"
database:
  path: "ironlog.db"
auth:
  api_key: "key"
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for missing port")
	}
}

// TestValidationPortOptionalWithTailscale verifies that tsnet deployments
// do not need a listen port.
func TestValidationPortOptionalWithTailscale(t *testing.T) {
	yaml := `
database:
  path: "ironlog.db"
auth:
  api_key: "key"
tailscale:
  enabled: true
  hostname: "gym"
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Tailscale.Enabled {
		t.Error("tailscale.enabled = false, want true")
	}
	if cfg.Tailscale.Hostname != "gym" {
		t.Errorf("tailscale.hostname = %q, want %q", cfg.Tailscale.Hostname, "gym")
	}
}

// TestValidationMissingAPIKey verifies that a missing API key is rejected.
// Without an API key, the session endpoints would be unprotected.
func TestValidationMissingAPIKey(t *testing.T) {
	yaml := `
server:
  port: 8080
database:
  path: "ironlog.db"
auth: {}
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for missing api_key")
	}
}

// TestValidationBadSetCount verifies a zero-or-negative set count is rejected
// after an explicit negative value survives defaulting.
func TestValidationBadSetCount(t *testing.T) {
	yaml := `
server:
  port: 8080
database:
  path: "ironlog.db"
workout:
  default_set_count: -2
auth:
  api_key: "key"
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for negative set count")
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
