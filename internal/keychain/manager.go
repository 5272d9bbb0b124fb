// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for
// ochat. It manages all interactions with the OS keychain/credential store.
//
// Exactly two entries are kept: the auth token and the identifier submitted at
// login. Both are written by the login view and read back by the transport's
// token source; the session machine itself never touches this store.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "ochat"

// Keys used for storing secrets in the OS keychain.
const (
	KeyAuthToken  = "auth_token"
	KeyIdentifier = "auth_identifier"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}
	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.PassBackend,
		}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	default:
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.PassBackend,
		}
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, errors.New("no secure credential store available on this system")
	}
	return ring, nil
}

// SaveLogin stores the auth token and the submitted identifier.
// This method is thread-safe.
func (m *Manager) SaveLogin(token, identifier string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token != "" {
		if err := m.ring.Set(keyring.Item{Key: KeyAuthToken, Data: []byte(token)}); err != nil {
			return err
		}
	}
	if identifier != "" {
		if err := m.ring.Set(keyring.Item{Key: KeyIdentifier, Data: []byte(identifier)}); err != nil {
			return err
		}
	}
	return nil
}

// Token retrieves the stored auth token. A missing entry yields an empty
// string, not an error, so it can back transport.TokenSource directly.
func (m *Manager) Token() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, err := m.ring.Get(KeyAuthToken)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

// Identifier retrieves the identifier submitted at the last login.
func (m *Manager) Identifier() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, err := m.ring.Get(KeyIdentifier)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

// ClearLogin removes both stored entries. Missing entries are not an error.
func (m *Manager) ClearLogin() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range []string{KeyAuthToken, KeyIdentifier} {
		if err := m.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
			return err
		}
	}
	return nil
}
