// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package transport provides the credential transport: the backend operations
// the session layer depends on for establishing and tearing down a session.
// It defines the API contract plus two implementations, a real HTTP client and
// a simulated one that fabricates a fixed identity without any network calls.
package transport

import (
	"context"
	"time"
)

// RoleAdmin is the role value that grants administrative views.
const RoleAdmin = "admin"

// User is the identity record returned by the backend. The session layer
// copies it by reference into its own state without further validation.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Credentials are the identifier and secret submitted by the login view.
// No format validation happens on the client; the backend is the authority.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthPayload is the successful result of a login or registration call.
type AuthPayload struct {
	User  *User
	Token string
}

// TokenSource supplies the auth token attached to authorized requests.
// An empty token means no credential is available.
type TokenSource interface {
	Token() (string, error)
}

// API defines the backend operations the session layer depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
// Failures that carry a backend status are reported as *StatusError;
// anything else is an unexpected condition.
type API interface {
	// Login exchanges credentials for an identity and a token.
	Login(ctx context.Context, creds Credentials) (*AuthPayload, error)
	// Register creates an account and signs it in, in one exchange.
	Register(ctx context.Context, reg Registration) (*AuthPayload, error)
	// Logout invalidates the current token on the backend.
	Logout(ctx context.Context) error
	// CurrentUser resolves the identity behind the stored token.
	// A 401 *StatusError means "no session".
	CurrentUser(ctx context.Context) (*User, error)
}
