// Package config loads deptally's configuration: the libraries.io API key
// from the environment (with .env file support) and optional endpoint
// overrides from a TOML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvAPIKey is the environment variable holding the libraries.io API key.
const EnvAPIKey = "LIBRARIES_API_KEY"

// ErrMissingAPIKey is returned when no libraries.io API key is configured.
// This is a pre-flight failure; nothing has touched the network yet.
var ErrMissingAPIKey = fmt.Errorf("%s environment variable not set", EnvAPIKey)

// Config holds the resolved configuration for a run.
//
// The API key only ever comes from the environment. The TOML file can
// override endpoints and the page size, which is mainly useful for testing
// against local servers.
type Config struct {
	APIKey           string `toml:"-"`
	LibrariesBaseURL string `toml:"libraries_base_url"`
	PyPIStatsBaseURL string `toml:"pypistats_base_url"`
	PerPage          int    `toml:"per_page"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		LibrariesBaseURL: "https://libraries.io/api",
		PyPIStatsBaseURL: "https://pypistats.org/api",
		PerPage:          100,
	}
}

// Load resolves the configuration for a run.
//
// .env files are loaded first (current directory, then ~/.deptally.env) so
// the API key can live next to the project instead of the shell profile.
// Values already present in the environment win. The optional config file
// at configPath overrides endpoint defaults.
//
// Returns [ErrMissingAPIKey] if no API key is found anywhere.
func Load() (Config, error) {
	_ = godotenv.Load(".env")
	if home, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(home, ".deptally.env"))
	}

	return load(configPath(), os.Getenv)
}

func load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.APIKey = getenv(EnvAPIKey)
	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	return cfg, nil
}

// configPath returns the config file location using the XDG convention
// (~/.config/deptally/config.toml), or "" if no home directory is available.
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "deptally", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "deptally", "config.toml")
}
