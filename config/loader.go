// Package config reads and writes treedata generation configs as YAML.
//
// A config file mirrors treedata.Config:
//
//	levels:
//	  - [EMEA, Americas, APAC]
//	  - [Retail, Online]
//	constraint: 100
//	periods: [jan, feb, mar]
//	range: {min: 100, max: 1000}
//	includeRel: true
//
// Keys that are omitted keep their treedata.DefaultConfig value. Unknown
// keys are rejected so typos do not silently fall back to defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/chwzr/ag-grid-treedata/treedata"
)

// Load reads, decodes and validates the YAML config at path.
func Load(path string) (treedata.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return treedata.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return treedata.Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over treedata.DefaultConfig and validates the result.
// Validation failures unwrap to treedata.ErrValidation.
func Parse(data []byte) (treedata.Config, error) {
	cfg := treedata.DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return treedata.Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return treedata.Config{}, err
	}

	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg treedata.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create the config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
