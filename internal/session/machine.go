// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the single source of truth for "who is signed in".
// The Machine tracks the current user and the initial loading phase, drives
// all login/register/logout/refresh transitions, and keeps the identity cache
// bridge in lock-step with the user so downstream request tagging never reads
// a stale identifier.
package session

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"ochat/cli/internal/identity"
	"ochat/cli/internal/logging"
	"ochat/cli/internal/transport"
)

// Logf is the observability sink for failures the machine absorbs instead of
// returning (unexpected refresh errors, failed remote logouts).
type Logf func(format string, args ...any)

// Machine is the session state machine. It starts out unresolved (loading),
// leaves that state exactly once via the bootstrap refresh, and from then on
// moves between authenticated and anonymous as operations complete.
//
// The mutex covers only state writes and snapshot reads, never a network
// call: operations invoked while another is still in flight proceed
// independently, and the last one to complete wins. No sequencing or
// cancellation is applied to such overlaps.
type Machine struct {
	api    transport.API
	bridge *identity.Bridge
	logf   Logf
	boot   sync.Once

	mu      sync.Mutex
	user    *transport.User
	loading bool
}

// NewMachine constructs the machine in its unresolved state and clears the
// bridge so user and cached id agree from the very first instant. The caller
// is expected to invoke Bootstrap immediately afterwards.
func NewMachine(api transport.API, bridge *identity.Bridge, logf Logf) *Machine {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	m := &Machine{api: api, bridge: bridge, logf: logf, loading: true}
	bridge.SetUserID("")
	return m
}

// Bootstrap performs the initial session resolution. Only the first call does
// anything; there is no way back to the loading state within one process
// lifetime.
func (m *Machine) Bootstrap(ctx context.Context) {
	m.boot.Do(func() { m.RefreshUser(ctx) })
}

// RefreshUser re-resolves the current identity from the transport. A 401 is
// the expected "no session" answer and resolves silently to anonymous; any
// other failure also resolves to anonymous but is reported to the sink, since
// a network or server fault is distinguishable from simply not being logged
// in. The loading phase ends when the first refresh resolves, success or not.
func (m *Machine) RefreshUser(ctx context.Context) {
	defer m.resolve()

	u, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.setUser(nil)
		if transport.StatusCode(err) != http.StatusUnauthorized {
			m.logf("session refresh failed: %s", logging.Mask(err.Error()))
		}
		return
	}
	m.setUser(u)
}

// Login exchanges credentials for a session. A typed transport failure is
// returned verbatim so the login view can inspect its status code; any other
// failure is normalized to ErrLoginFailed, hiding internal detail. The raw
// payload is returned on success so the view can persist the token through
// its own, separate path. Login never touches the loading flag.
func (m *Machine) Login(ctx context.Context, creds transport.Credentials) (*transport.AuthPayload, error) {
	payload, err := m.api.Login(ctx, creds)
	if err != nil {
		var status *transport.StatusError
		if errors.As(err, &status) {
			return nil, status
		}
		return nil, ErrLoginFailed
	}
	m.setUser(payload.User)
	return payload, nil
}

// Register creates an account and signs it in. Same error contract as Login,
// with ErrRegistrationFailed as the generic fallback.
func (m *Machine) Register(ctx context.Context, reg transport.Registration) (*transport.AuthPayload, error) {
	payload, err := m.api.Register(ctx, reg)
	if err != nil {
		var status *transport.StatusError
		if errors.As(err, &status) {
			return nil, status
		}
		return nil, ErrRegistrationFailed
	}
	m.setUser(payload.User)
	return payload, nil
}

// Logout terminates the session unconditionally. A failed remote invalidation
// is only reported to the sink; the local session is cleared regardless, and
// calling Logout while already anonymous is a no-op.
func (m *Machine) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		m.logf("logout: %s", logging.Mask(err.Error()))
	}
	m.setUser(nil)
}

// Snapshot returns the current session state. User/bridge agreement holds at
// every snapshot, not just at quiescence.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{User: m.user, Loading: m.loading}
}

// setUser writes the user and the bridge in one critical section so no
// observer can see them disagree.
func (m *Machine) setUser(u *transport.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
	if u != nil {
		m.bridge.SetUserID(u.ID)
	} else {
		m.bridge.SetUserID("")
	}
}

// resolve ends the loading phase.
func (m *Machine) resolve() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

// Snapshot is a read-only view of the session handed to consumers.
type Snapshot struct {
	User    *transport.User
	Loading bool
}

// IsAuthenticated reports whether a user is present. Derived, never stored.
func (s Snapshot) IsAuthenticated() bool {
	return s.User != nil
}

// IsAdmin reports whether the current user carries the admin role.
func (s Snapshot) IsAdmin() bool {
	return s.User != nil && s.User.Role == transport.RoleAdmin
}
