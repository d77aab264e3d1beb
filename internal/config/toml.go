// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Lists  ListsConfig  `toml:"lists"`
	Search SearchConfig `toml:"search"`
	Colors ColorsConfig `toml:"colors"`
}

// ListsConfig maps word list sources.
type ListsConfig struct {
	Paths    []string `toml:"paths"`
	Baseline *string  `toml:"baseline"`
	Ignore   []string `toml:"ignore"`
}

// SearchConfig maps search thresholds and result layout.
type SearchConfig struct {
	MinScore   *int `toml:"min-score"`
	TableLimit *int `toml:"table-limit"`
	CountLimit *int `toml:"count-limit"`
	Columns    *int `toml:"columns"`
}

// ColorsConfig maps lipgloss colors for result rendering.
type ColorsConfig struct {
	Found     *string `toml:"found"`
	Missing   *string `toml:"missing"`
	Muted     *string `toml:"muted"`
	Highlight *string `toml:"highlight"`
	Prompt    *string `toml:"prompt"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	for i, p := range cfg.Lists.Paths {
		cfg.Lists.Paths[i] = ExpandHome(p)
	}
	return cfg, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
