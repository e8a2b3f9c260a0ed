// Package config loads the optional scals.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional scals.yaml configuration.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Output   OutputConfig   `yaml:"output"`
}

// DocumentConfig contains default input locations.
type DocumentConfig struct {
	// Path is the default document file resolved when the command line
	// names none.
	Path string `yaml:"path,omitempty"`
	// State is the default state seed file merged over the document's
	// declared state.
	State string `yaml:"state,omitempty"`
}

// OutputConfig contains output settings.
type OutputConfig struct {
	// Pretty enables indented JSON output.
	Pretty bool `yaml:"pretty,omitempty"`
}

// LoadOptional reads scals.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "scals.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read scals.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scals.yaml: %w", err)
	}

	cfg.Document.Path = strings.TrimSpace(cfg.Document.Path)
	cfg.Document.State = strings.TrimSpace(cfg.Document.State)
	return &cfg, nil
}
