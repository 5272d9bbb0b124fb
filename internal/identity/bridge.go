// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package identity holds the identity cache bridge: a process-wide handle
// other subsystems read to tag their own outgoing requests with the current
// user's identifier.
//
// The bridge is written exclusively by the session state machine and is kept
// in lock-step with the machine's user: after any session operation completes,
// the cached id equals the current user's id, or is empty when anonymous.
// It is deliberately independent of the keychain entries written by the login
// view; the two stores are never reconciled.
package identity

import "sync"

// Bridge caches the current user's identifier for request tagging.
// Both operations are synchronous and cannot fail.
type Bridge struct {
	mu     sync.RWMutex
	userID string
}

// SetUserID replaces the cached identifier. Pass the empty string when no
// user is authenticated.
func (b *Bridge) SetUserID(id string) {
	b.mu.Lock()
	b.userID = id
	b.mu.Unlock()
}

// UserID returns the cached identifier, or the empty string when anonymous.
func (b *Bridge) UserID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.userID
}

var defaultBridge = &Bridge{}

// Default returns the process-wide bridge instance consulted by request
// tagging throughout the CLI.
func Default() *Bridge {
	return defaultBridge
}
