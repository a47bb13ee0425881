package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Walk.Mode != "physical" {
		t.Errorf("expected Mode=physical, got %s", cfg.Walk.Mode)
	}
	if len(cfg.Walk.Includes) != 1 || cfg.Walk.Includes[0] != "**/*" {
		t.Errorf("unexpected includes: %v", cfg.Walk.Includes)
	}
	if cfg.Path.Style != "native" {
		t.Errorf("expected Style=native, got %s", cfg.Path.Style)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/sfz.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sfz.yaml")

	content := `
walk:
  mode: logical
  excludes: ["**/build/**"]
path:
  style: windows
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Walk.Mode != "logical" {
		t.Errorf("expected Mode=logical, got %s", cfg.Walk.Mode)
	}
	if len(cfg.Walk.Excludes) != 1 || cfg.Walk.Excludes[0] != "**/build/**" {
		t.Errorf("unexpected excludes: %v", cfg.Walk.Excludes)
	}
	if cfg.Path.Style != "windows" {
		t.Errorf("expected Style=windows, got %s", cfg.Path.Style)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default Level=info, got %s", cfg.Logging.Level)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sfz.yaml")
	if err := os.WriteFile(configPath, []byte("walk: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := EnsureSFZDir(tmpDir); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, ".sfz", "config.yaml")

	content := `
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfz.yaml")
	cfg := DefaultConfig()
	cfg.Walk.Mode = "logical"
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Walk.Mode != "logical" {
		t.Errorf("expected Mode=logical, got %s", loaded.Walk.Mode)
	}
}

func TestSnapshotDBPath(t *testing.T) {
	cfg := DefaultConfig()
	path := cfg.SnapshotDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".sfz", "snapshot.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
