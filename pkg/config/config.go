// Package config holds the explicit run configuration for dependgen.
//
// Configuration is resolved in three layers: built-in defaults, an optional
// TOML file (dependgen.toml in the working directory, or --config), and
// DEPENDGEN_* environment variables. A .env file in the working directory is
// loaded before the environment is read.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultFile is the config file name looked up in the working directory
// when no --config flag is given.
const DefaultFile = "dependgen.toml"

// VendorRule maps a dependency-name prefix to a forge provider. Dependencies
// matching no rule are rendered as edges but never resolved or recursed into.
type VendorRule struct {
	// Prefix is the dependency-name prefix to match (e.g. "kanopi/").
	Prefix string `toml:"prefix"`
	// Provider is the forge the vendor's repositories live on:
	// "github", "gitlab", or "drupalcode".
	Provider string `toml:"provider"`
	// Namespace overrides the repository namespace when it differs from the
	// package vendor (e.g. "project" for Drupal GitLab, where drupal/token
	// lives at git.drupalcode.org/project/token).
	Namespace string `toml:"namespace"`
}

// Resolve configures how dependency names are mapped to repositories.
type Resolve struct {
	Rules []VendorRule `toml:"rules"`
}

// Config is the full run configuration, passed explicitly into the resolver
// and walker rather than living in process-wide state.
type Config struct {
	// Output is the report file written to the working directory.
	Output string `toml:"output"`
	// Manifest is the manifest file name fetched from each repository.
	Manifest string `toml:"manifest"`
	// TimeoutSeconds bounds every HTTP call. There is no retry; a timed-out
	// call is final.
	TimeoutSeconds int `toml:"timeout_seconds"`

	Resolve Resolve `toml:"resolve"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:         "DEPENDENCIES.md",
		Manifest:       "composer.json",
		TimeoutSeconds: 10,
		Resolve: Resolve{
			Rules: []VendorRule{
				{Prefix: "kanopi/", Provider: "github"},
				{Prefix: "gitlab", Provider: "gitlab"},
				{Prefix: "drupal/", Provider: "drupalcode", Namespace: "project"},
			},
		},
	}
}

// Timeout returns the HTTP timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load builds the effective configuration: defaults, overlaid with the TOML
// file at path (or dependgen.toml if path is empty and one exists), overlaid
// with DEPENDGEN_* environment variables.
//
// A missing explicit path is an error; a missing default file is not.
func Load(path string) (Config, error) {
	// Values from a .env file participate like any other environment
	// variable. A missing file is fine.
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if explicit {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DEPENDGEN_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("DEPENDGEN_MANIFEST"); v != "" {
		cfg.Manifest = v
	}
	if v := os.Getenv("DEPENDGEN_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.TimeoutSeconds = secs
		}
	}
}
