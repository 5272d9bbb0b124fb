// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticToken is a TokenSource backed by a fixed string.
type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var creds Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.com", creds.Email)

		json.NewEncoder(w).Encode(map[string]string{"token": "tok-1", "email": "a@b.com"})
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, staticToken(""))
	payload, err := h.Login(context.Background(), Credentials{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "tok-1", payload.Token)
	require.NotNil(t, payload.User)
	assert.Equal(t, "a@b.com", payload.User.Email)
	assert.Equal(t, "a@b.com", payload.User.ID, "id falls back to the email when the backend omits it")
	assert.Equal(t, "user", payload.User.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, staticToken(""))
	_, err := h.Login(context.Background(), Credentials{Email: "a@b.com", Password: "wrong"})

	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusUnauthorized, status.Code)
	assert.Equal(t, "Invalid credentials", status.Detail)
	assert.True(t, IsUnauthorized(err))
}

func TestRegisterConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "User already exists"})
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, staticToken(""))
	_, err := h.Register(context.Background(), Registration{Email: "a@b.com", Password: "pw"})

	var status *StatusError
	require.ErrorAs(t, err, &status)
	assert.Equal(t, http.StatusBadRequest, status.Code)
	assert.Equal(t, "User already exists", status.Detail)
}

func TestCurrentUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/me", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"email": "a@b.com"})
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, staticToken("tok-1"))
	u, err := h.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)
	assert.Equal(t, "user", u.Role)
}

func TestCurrentUserWithoutTokenShortCircuits(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL, staticToken(""))
	_, err := h.CurrentUser(context.Background())

	assert.True(t, IsUnauthorized(err))
	assert.Zero(t, hits.Load(), "no network call without a stored credential")
}

func TestLogout(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "server error", status: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/auth/logout", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := NewHTTP(srv.URL, staticToken("tok-1")).Logout(context.Background())
			if tt.wantErr {
				assert.Equal(t, tt.status, StatusCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatusCodeOnPlainErrors(t *testing.T) {
	assert.Zero(t, StatusCode(nil))
	assert.Zero(t, StatusCode(errors.New("boom")))
	assert.False(t, IsUnauthorized(errors.New("boom")))
}
