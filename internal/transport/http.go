package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

// Backend endpoint paths.
const (
	pathLogin    = "/api/auth/login"
	pathRegister = "/api/auth/register"
	pathLogout   = "/api/auth/logout"
	pathMe       = "/api/auth/me"
)

// HTTP implements API over the backend's REST endpoints.
type HTTP struct {
	// baseURL is the backend origin (e.g. "https://oc.example.com")
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	// tokens supplies the Authorization credential for authorized calls
	tokens TokenSource
}

// NewHTTP creates a new HTTP transport against baseURL.
// It configures a 10-second timeout for all requests.
func NewHTTP(baseURL string, tokens TokenSource) *HTTP {
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		tokens:  tokens,
	}
}

// authResponse is the wire shape of login/register responses. The backend
// replies with a flat {token, email} today; be liberal and also accept a
// nested user object.
type authResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
	Email string `json:"email"`
}

// user normalizes the response into an identity record.
func (r *authResponse) user() *User {
	if r.User != nil {
		return normalize(r.User)
	}
	if r.Email == "" {
		return nil
	}
	return normalize(&User{Email: r.Email})
}

// normalize fills the identity fields the backend may omit.
func normalize(u *User) *User {
	if u.ID == "" {
		u.ID = u.Email
	}
	if u.Role == "" {
		u.Role = "user"
	}
	return u
}

// Login calls POST /api/auth/login with the submitted credentials.
func (h *HTTP) Login(ctx context.Context, creds Credentials) (*AuthPayload, error) {
	return h.exchange(ctx, pathLogin, creds)
}

// Register calls POST /api/auth/register. The backend signs the account in as
// part of registration, so the response shape matches login.
func (h *HTTP) Register(ctx context.Context, reg Registration) (*AuthPayload, error) {
	return h.exchange(ctx, pathRegister, reg)
}

// exchange posts a JSON body and decodes an auth payload.
func (h *HTTP) exchange(ctx context.Context, path string, body any) (*AuthPayload, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, ErrorFromResponse(resp)
	}

	var out authResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	user := out.user()
	if out.Token == "" || user == nil {
		return nil, errors.New("empty auth payload")
	}
	return &AuthPayload{User: user, Token: out.Token}, nil
}

// CurrentUser calls GET /api/auth/me with the stored token. When no token is
// stored at all, the call resolves locally to a 401 without touching the
// network; that is indistinguishable from the backend's own answer.
func (h *HTTP) CurrentUser(ctx context.Context) (*User, error) {
	token, err := h.tokens.Token()
	if err != nil || token == "" {
		return nil, &StatusError{Code: http.StatusUnauthorized, Detail: "no stored credential"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+pathMe, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrorFromResponse(resp)
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, err
	}
	if u.Email == "" && u.ID == "" {
		return nil, errors.New("unexpected response")
	}
	return normalize(&u), nil
}

// Logout calls POST /api/auth/logout with the stored token. A missing token
// is fine; there is nothing to invalidate remotely.
func (h *HTTP) Logout(ctx context.Context) error {
	token, err := h.tokens.Token()
	if err != nil || token == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+pathLogout, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return ErrorFromResponse(resp)
}
