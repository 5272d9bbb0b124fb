package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestParse(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	raw := signed(t, jwt.MapClaims{
		"sub": "a@b.com",
		"exp": exp.Unix(),
	})

	c, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", c.Subject)
	assert.True(t, c.ExpiresAt.Equal(exp))
	assert.False(t, c.Expired())
}

func TestParseExpired(t *testing.T) {
	raw := signed(t, jwt.MapClaims{
		"sub": "a@b.com",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	c, err := Parse(raw)
	require.NoError(t, err)
	assert.True(t, c.Expired())
}

func TestParseNoExpiry(t *testing.T) {
	c, err := Parse(signed(t, jwt.MapClaims{"sub": "a@b.com"}))
	require.NoError(t, err)
	assert.True(t, c.ExpiresAt.IsZero())
	assert.False(t, c.Expired())
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("not-a-token")
	assert.Error(t, err)
}
