// Package config loads the optional .medals.yaml settings file.
//
// The file is looked up in the working directory first, then under the
// user config dir (e.g. ~/.config/medals/.medals.yaml). A missing file
// yields defaults; a malformed one degrades to defaults with a warning.
// Configuration never fails a run.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configName = ".medals.yaml"

// Defaults.
const (
	DefaultHomeCountry = "USA"
	DefaultTheme       = "default"
)

// Config holds the user-tunable settings.
type Config struct {
	// HomeCountry is the IOC code the widget highlights and summarizes.
	HomeCountry string `yaml:"home_country"`
	// Theme names the table theme: "default" or "mono".
	Theme string `yaml:"theme"`
}

// Load reads the config file if one exists. Warnings go to stderr.
func Load(stderr io.Writer) *Config {
	cfg := &Config{
		HomeCountry: DefaultHomeCountry,
		Theme:       DefaultTheme,
	}

	path := findConfigPath()
	if path == "" {
		return cfg
	}

	loaded, err := loadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v. Using defaults.\n", err)
		return cfg
	}

	if loaded.HomeCountry != "" {
		cfg.HomeCountry = strings.ToUpper(strings.TrimSpace(loaded.HomeCountry))
	}
	if loaded.Theme != "" {
		cfg.Theme = loaded.Theme
	}
	return cfg
}

// loadFile parses one config file.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// findConfigPath checks the working directory, then the user config dir.
func findConfigPath() string {
	if _, err := os.Stat(configName); err == nil {
		return configName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "medals", configName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
