// Package config loads the optional ctex.toml configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "ctex.toml"

// Config holds batch conversion settings. Command-line flags override
// anything set here.
type Config struct {
	OutputDir string `toml:"output_dir"`
	LogLevel  string `toml:"log_level"`
	Strict    bool   `toml:"strict"`
}

// Default returns the built-in configuration, which matches the behavior
// of running with no config file at all.
func Default() Config {
	return Config{
		OutputDir: "",
		LogLevel:  "warn",
		Strict:    false,
	}
}

// Load reads the config file at path. A missing file is not an error when
// explicit is false (the default lookup); it simply yields the defaults.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}

	return cfg, nil
}
