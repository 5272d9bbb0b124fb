// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StatusError is a typed backend failure carrying the HTTP status code.
// Callers branch on the code, e.g. to tell invalid credentials (401) from a
// server fault.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Code)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Detail)
}

// StatusCode extracts the backend status from err, or 0 when err is not a
// typed transport failure.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// IsUnauthorized reports whether err is a typed 401 failure.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// ErrorFromResponse builds a *StatusError from a non-success response.
// The backend reports failures as {"detail": "..."}; anything else falls back
// to the raw body text.
func ErrorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return &StatusError{Code: resp.StatusCode, Detail: payload.Detail}
	}
	return &StatusError{Code: resp.StatusCode, Detail: strings.TrimSpace(string(body))}
}
