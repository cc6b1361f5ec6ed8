// Package settings persists display preferences. The analyzers never read
// them; only the CLI and MCP layers use settings to filter what is shown.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configDirName = "rpm-policy-checker"
	fileName      = "settings.yaml"
)

// Settings are the recognized display options.
type Settings struct {
	WelcomeShown bool   `yaml:"welcome_shown"`
	ShowPedantic bool   `yaml:"show_pedantic"`
	ShowInfo     bool   `yaml:"show_info"`
	Distribution string `yaml:"distribution"`
}

// Default returns the settings used when no file exists yet.
func Default() Settings {
	return Settings{
		WelcomeShown: false,
		ShowPedantic: true,
		ShowInfo:     true,
		Distribution: "fedora",
	}
}

// Store loads and saves settings under the user config directory.
type Store struct {
	dir string
}

// New creates a Store rooted at $XDG_CONFIG_HOME (or ~/.config).
func New() *Store {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	return &Store{dir: filepath.Join(base, configDirName)}
}

// NewAt creates a Store rooted at an explicit directory (used by tests).
func NewAt(dir string) *Store { return &Store{dir: dir} }

// Load reads the settings file, returning defaults when it does not exist.
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return cfg, nil
}

// Save writes the settings file, creating the config directory if needed.
func (s *Store) Save(cfg Settings) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, fileName), data, 0o644)
}
