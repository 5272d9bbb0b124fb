// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; secrets go to the OS keychain.
//
// The simulated-auth switch is resolved exactly once, at process start, when
// the root command loads the configuration. It is never re-read afterwards.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"ochat/cli/internal/xdg"
)

// DefaultBaseURL is used when neither the config file nor the environment
// provides a backend address.
const DefaultBaseURL = "http://localhost:8000"

// Config holds non-sensitive CLI settings.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://oc.example.com".
	BaseURL string `json:"base_url"`
	// SimulatedAuth bypasses all network calls in the auth layer and uses a
	// fixed local identity. Meant for environments without a backend.
	SimulatedAuth bool   `json:"simulated_auth"`
	LogLevel      string `json:"log_level"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file yields defaults. Environment
// variables OCHAT_BASE_URL and OCHAT_SIMULATED_AUTH override the file.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to defaults
	case err != nil:
		return c, err
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, err
		}
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	applyEnv(&c)
	return c, nil
}

// applyEnv layers environment overrides on top of file values.
func applyEnv(c *Config) {
	if v := os.Getenv("OCHAT_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	switch os.Getenv("OCHAT_SIMULATED_AUTH") {
	case "1", "true", "yes":
		c.SimulatedAuth = true
	case "0", "false", "no":
		c.SimulatedAuth = false
	}
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
