package session

import "context"

var machineCtxKey = &contextKey{"machine"}

type contextKey struct {
	name string
}

// WithContext installs the machine into ctx. The application root owns the
// one machine instance; everything nested under this context shares it.
func WithContext(ctx context.Context, m *Machine) context.Context {
	return context.WithValue(ctx, machineCtxKey, m)
}

// FromContext retrieves the machine installed by the application root.
// It fails with ErrNotInitialized when called outside that scope.
func FromContext(ctx context.Context) (*Machine, error) {
	m, ok := ctx.Value(machineCtxKey).(*Machine)
	if !ok || m == nil {
		return nil, ErrNotInitialized
	}
	return m, nil
}
