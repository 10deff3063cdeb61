// internal/appconfig/appconfig_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoad verifies that a valid configuration file is loaded without error,
// that defaults are applied for omitted settings, and that invalid JSON is
// rejected. Temporary files simulate the different configuration scenarios.
func TestLoad(t *testing.T) {
	validConfig := `{
        "host": {
            "name": "Test Host",
            "url": "http://localhost:11434/"
        },
        "verbose": true,
        "models": ["llama3.2:1b"],
        "timeout": 120
    }`
	tmpfile, err := os.CreateTemp("", "config.json")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())
	if _, err := tmpfile.Write([]byte(validConfig)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() with valid config failed: %v", err)
	}
	if cfg.Host.Name != "Test Host" {
		t.Fatalf("expected host name to load, got %q", cfg.Host.Name)
	}
	if cfg.Host.URL != "http://localhost:11434" {
		t.Fatalf("expected trailing slash to be trimmed, got %q", cfg.Host.URL)
	}
	if !cfg.Verbose {
		t.Fatal("expected verbose to be true")
	}
	if cfg.RequestTimeout() != 120*time.Second {
		t.Fatalf("expected 120s request timeout, got %v", cfg.RequestTimeout())
	}
	if cfg.ConfigPath != tmpfile.Name() {
		t.Fatalf("expected config path to be recorded, got %q", cfg.ConfigPath)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() with missing file failed: %v", err)
	}
	if cfg.Host.URL != DefaultHostURL {
		t.Fatalf("expected default host URL, got %q", cfg.Host.URL)
	}
	if cfg.Host.Name != "local" {
		t.Fatalf("expected default host name, got %q", cfg.Host.Name)
	}
	if cfg.RequestTimeout() != 600*time.Second {
		t.Fatalf("expected default request timeout of 600s, got %v", cfg.RequestTimeout())
	}
	if cfg.LogFilePath() != "ollamabench.log" {
		t.Fatalf("expected default log path, got %q", cfg.LogFilePath())
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
