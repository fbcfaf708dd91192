// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all settings for a playlist export run.
type Config struct {
	// CredentialsFile is the OAuth client secret bundle downloaded from the
	// Google Cloud console (default: "credentials.json")
	CredentialsFile string `json:"credentials_file"`
	// TokenFile is where a cached OAuth token is read from (default: "token.json")
	TokenFile string `json:"token_file"`
	// SaveToken enables writing the token back to TokenFile after consent or refresh
	SaveToken bool `json:"save_token"`
	// AuthTimeout bounds how long the interactive consent flow waits for the browser
	AuthTimeout time.Duration `json:"auth_timeout"`

	// OutputDir receives the CSV files and snapshots (default: current directory)
	OutputDir string `json:"output_dir"`
	// SQLitePath, when set, also writes the export into a SQLite database
	SQLitePath string `json:"sqlite_path"`

	// WatchLaterTitle is the label given to the account's default saved-items playlist
	WatchLaterTitle string `json:"watch_later_title"`
	// MaxResults is the page size requested from the API (1-50)
	MaxResults int64 `json:"max_results"`
	// Progress shows a progress bar while playlist items are fetched
	Progress bool `json:"progress"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		CredentialsFile: "credentials.json",
		TokenFile:       "token.json",
		SaveToken:       false,
		AuthTimeout:     5 * time.Minute,
		OutputDir:       ".",
		WatchLaterTitle: "Watch Later",
		MaxResults:      50,
		Progress:        true,
	}
}

// Load loads configuration from environment variables, config file, and applies defaults.
// Priority: env vars > config file > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Config file is optional
	if err := cfg.loadFromFile(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from ytexport.json in current directory or home directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ytexport.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytexport", "ytexport.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := c.UnmarshalJSON(data); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// UnmarshalJSON decodes a config file. Durations are written as strings
// such as "5m" rather than nanosecond counts.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		AuthTimeout string `json:"auth_timeout"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.AuthTimeout != "" {
		d, err := time.ParseDuration(aux.AuthTimeout)
		if err != nil {
			return fmt.Errorf("auth_timeout: %w", err)
		}
		c.AuthTimeout = d
	}
	return nil
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YTEXPORT_CREDENTIALS_FILE"); v != "" {
		c.CredentialsFile = v
	}
	if v := os.Getenv("YTEXPORT_TOKEN_FILE"); v != "" {
		c.TokenFile = v
	}
	if v := os.Getenv("YTEXPORT_SAVE_TOKEN"); v != "" {
		c.SaveToken = v == "true" || v == "1"
	}
	if v := os.Getenv("YTEXPORT_AUTH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.AuthTimeout = d
		}
	}
	if v := os.Getenv("YTEXPORT_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("YTEXPORT_SQLITE_PATH"); v != "" {
		c.SQLitePath = v
	}
	if v := os.Getenv("YTEXPORT_WATCH_LATER_TITLE"); v != "" {
		c.WatchLaterTitle = v
	}
	if v := os.Getenv("YTEXPORT_MAX_RESULTS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.MaxResults = n
		}
	}
	if v := os.Getenv("YTEXPORT_PROGRESS"); v != "" {
		c.Progress = v == "true" || v == "1"
	}
}

// Validate checks that configuration values are valid and consistent.
func (c *Config) Validate() error {
	if c.CredentialsFile == "" {
		return fmt.Errorf("credentials_file must be set")
	}
	if c.SaveToken && c.TokenFile == "" {
		return fmt.Errorf("token_file must be set when save_token is enabled")
	}
	if c.AuthTimeout <= 0 {
		return fmt.Errorf("auth_timeout must be positive")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must be set")
	}
	if c.MaxResults < 1 || c.MaxResults > 50 {
		return fmt.Errorf("max_results must be between 1 and 50")
	}
	return nil
}
