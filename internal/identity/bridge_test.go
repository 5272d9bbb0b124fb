package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBridgeSetAndClear(t *testing.T) {
	var b Bridge
	assert.Empty(t, b.UserID())

	b.SetUserID("user-1")
	assert.Equal(t, "user-1", b.UserID())

	b.SetUserID("")
	assert.Empty(t, b.UserID())
}

func TestDefaultIsStable(t *testing.T) {
	assert.Same(t, Default(), Default())
}
