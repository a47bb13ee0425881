package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the sfz tool.
type Config struct {
	Walk     WalkConfig     `yaml:"walk"`
	Path     PathConfig     `yaml:"path"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WalkConfig holds tree walking configuration.
type WalkConfig struct {
	Mode     string   `yaml:"mode"` // "physical" or "logical"
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// PathConfig holds path string conventions.
type PathConfig struct {
	Style string `yaml:"style"` // "native", "posix", "windows"
}

// SnapshotConfig holds snapshot store configuration.
type SnapshotConfig struct {
	DB string `yaml:"db"` // file name inside .sfz/
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Walk: WalkConfig{
			Mode:     "physical",
			Includes: []string{"**/*"},
			Excludes: []string{"**/.git/**", "**/.sfz/**"},
		},
		Path: PathConfig{
			Style: "native",
		},
		Snapshot: SnapshotConfig{
			DB: "snapshot.db",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for sfz.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "sfz.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".sfz", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SnapshotDBPath returns the path to the snapshot database for dir.
func (c *Config) SnapshotDBPath(dir string) string {
	name := c.Snapshot.DB
	if name == "" {
		name = "snapshot.db"
	}
	return filepath.Join(dir, ".sfz", name)
}

// EnsureSFZDir ensures the .sfz directory exists.
func EnsureSFZDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".sfz"), 0755)
}
