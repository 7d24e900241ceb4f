package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

type Config struct {
	// Palette overrides for the procedural drawing path
	Theme *Theme `yaml:"theme,omitempty" json:"theme,omitempty"`
}

// Theme holds hex color overrides. Empty fields keep the built-in palette.
type Theme struct {
	Background string `yaml:"background,omitempty" json:"background,omitempty"`
	Silhouette string `yaml:"silhouette,omitempty" json:"silhouette,omitempty"`
	Eye        string `yaml:"eye,omitempty" json:"eye,omitempty"`
	Key        string `yaml:"key,omitempty" json:"key,omitempty"`
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the given file. With an empty path it
// returns an empty Config without touching the filesystem, so the default
// zero-flag run reads nothing.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ConfigHomePath returns the path to the configuration directory.
func ConfigHomePath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, "icongen")
	} else {
		configHomePath = filepath.Join(homePath, ".config", "icongen")
	}
	return configHomePath
}

// StateHomePath returns the path to the state home directory.
func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, "icongen")
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", "icongen")
	}
	return stateHomePath
}
