package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ochat/cli/internal/identity"
	"ochat/cli/internal/transport"
)

func TestFromContextOutsideScopeFailsLoudly(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestFromContextRoundTrip(t *testing.T) {
	m := NewMachine(transport.NewSimulated(), &identity.Bridge{}, nil)
	ctx := WithContext(context.Background(), m)

	got, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, m, got)
}
