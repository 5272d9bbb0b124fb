// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package token inspects locally stored access tokens. The backend issues
// HS256 JWTs with sub and exp claims; we only read them for display and
// expiry hints and never verify the signature, since the secret lives on the
// server.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields of a stored token this client cares about.
type Claims struct {
	// Subject is the account identifier the token was issued for.
	Subject string
	// ExpiresAt is the token expiry; zero when the token carries no exp claim.
	ExpiresAt time.Time
}

// Parse decodes the claims from a raw token without verifying it.
func Parse(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, err
	}

	out := &Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// Expired reports whether the token's exp claim is in the past. Tokens
// without an exp claim never report as expired.
func (c *Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}
