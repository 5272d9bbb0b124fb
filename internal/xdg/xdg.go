// Package xdg resolves XDG Base Directory paths for ochat.
// It falls back to the traditional dot-directories when the XDG environment
// variables are unset and creates directories with private permissions, since
// the config dir may hold security-sensitive settings.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for ochat.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/ochat when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "ochat")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

// StateDir returns the XDG state directory for ochat.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/ochat when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(base, "ochat")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
