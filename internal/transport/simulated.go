package transport

import (
	"context"
	"time"
)

// SimulatedToken is the token value issued by the simulated transport. It is
// never checked anywhere; it only keeps the login view's persistence path
// working without a backend.
const SimulatedToken = "simulated-session-token"

// Simulated implements API without any network calls: every operation
// resolves against one fixed administrator identity. It is selected once at
// startup for environments that have no backend to talk to, and doubles as an
// independently testable stand-in for the real transport.
type Simulated struct{}

// NewSimulated creates the simulated transport.
func NewSimulated() *Simulated {
	return &Simulated{}
}

// simulatedUser returns a fresh copy of the fixed identity so callers cannot
// alias the template through the pointer they receive.
func simulatedUser() *User {
	return &User{
		ID:        "00000000-0000-4000-a000-000000000001",
		Email:     "admin@opportunity.local",
		Name:      "Local Admin",
		Role:      RoleAdmin,
		CreatedAt: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Login adopts the fixed identity regardless of the submitted credentials.
func (s *Simulated) Login(ctx context.Context, creds Credentials) (*AuthPayload, error) {
	return &AuthPayload{User: simulatedUser(), Token: SimulatedToken}, nil
}

// Register behaves exactly like Login.
func (s *Simulated) Register(ctx context.Context, reg Registration) (*AuthPayload, error) {
	return &AuthPayload{User: simulatedUser(), Token: SimulatedToken}, nil
}

// Logout has nothing to invalidate.
func (s *Simulated) Logout(ctx context.Context) error {
	return nil
}

// CurrentUser always resolves to the fixed identity.
func (s *Simulated) CurrentUser(ctx context.Context) (*User, error) {
	return simulatedUser(), nil
}
