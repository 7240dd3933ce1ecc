package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is loaded from ~/.config/decpac/config.yaml. Every field is
// optional; a missing file yields pure defaults.
type Config struct {
	ListsDir string `yaml:"lists_dir"` // directory holding the .pkgs lists
	Machine  string `yaml:"machine"`   // explicit scope override for this host
	// Machines maps host names to machine scopes. When non-empty, a host
	// absent from it cannot be resolved.
	Machines    map[string]string `yaml:"machines"`
	AURHelper   string            `yaml:"aur_helper"`   // e.g. paru, yay
	SyncCommand []string          `yaml:"sync_command"` // run with the changed list path appended
}

// Path returns the config file location: $DECPAC_CONFIG if set, otherwise
// ~/.config/decpac/config.yaml.
func Path() (string, error) {
	if p := os.Getenv("DECPAC_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "decpac", "config.yaml"), nil
}

// Load reads the config file. A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) error {
	if cfg.AURHelper == "" {
		cfg.AURHelper = "paru"
	}
	if cfg.ListsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		cfg.ListsDir = filepath.Join(home, ".config", "decpac", "lists")
	}
	return nil
}
