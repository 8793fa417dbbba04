// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, defaults, and validation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
backend:
  url: "https://api.unestilodevida.org"
  timeout: "15s"

state:
  path: "./console.db"

logging:
  level: "debug"
  format: "json"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.URL != "https://api.unestilodevida.org" {
		t.Errorf("Backend.URL = %q, want %q", cfg.Backend.URL, "https://api.unestilodevida.org")
	}
	if cfg.Backend.Timeout != 15*time.Second {
		t.Errorf("Backend.Timeout = %v, want 15s", cfg.Backend.Timeout)
	}
	if cfg.State.Path != "./console.db" {
		t.Errorf("State.Path = %q, want %q", cfg.State.Path, "./console.db")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "json")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.URL != "http://localhost:8080" {
		t.Errorf("Backend.URL = %q, want default localhost", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 30*time.Second {
		t.Errorf("Backend.Timeout = %v, want 30s", cfg.Backend.Timeout)
	}
	if cfg.State.Path == "" {
		t.Error("State.Path should have a default")
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("VIDA_BACKEND_URL", "https://backend.example.org")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
backend:
  url: "${VIDA_BACKEND_URL}"
state:
  path: "./console.db"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend.URL != "https://backend.example.org" {
		t.Errorf("Backend.URL = %q, want expanded env value", cfg.Backend.URL)
	}
}

func TestLoad_InvalidBackendURL(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
backend:
  url: "not a url"
state:
  path: "./console.db"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() should fail for an invalid backend URL")
	}
	if !strings.Contains(err.Error(), "backend.url") {
		t.Errorf("error %q should mention backend.url", err)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
backend:
  url: "http://localhost:8080"
  timeout: "soon"
state:
  path: "./console.db"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() should fail for an unparseable timeout")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Errorf("error %q should mention the timeout field", err)
	}
}

func TestLoad_NonPositiveTimeout(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
backend:
  url: "http://localhost:8080"
  timeout: "0s"
state:
  path: "./console.db"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// A zero timeout would mean an unbounded HTTP client
	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() should fail for a zero timeout")
	}
	if !strings.Contains(err.Error(), "backend.timeout") {
		t.Errorf("error %q should mention backend.timeout", err)
	}
}
