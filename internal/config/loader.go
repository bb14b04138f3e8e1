package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadShooter when no file was found.
const SourceEmbedded = "embedded defaults"

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/shooter.yaml"

// LoadShooter loads the shooter configuration and reports where it came from.
// Search order: customPath -> ~/.shooter/config.yaml -> ./configs/shooter.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// An explicit customPath must exist and parse; the implicit locations are skipped
// when missing but still reported when malformed.
func LoadShooter(customPath string) (ShooterConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath("config.yaml"), localConfigPath}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, nil
	}

	cfg, err := Parse(defaultShooterYAML)
	if err != nil {
		// Fallback to hardcoded if the embedded file is broken
		return DefaultShooterConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile reads and parses a single configuration file.
func loadFile(path string) (ShooterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultShooterConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", filename)
}
