// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "password pair",
			in:   "request failed: password=hunter2 rejected",
			want: "request failed: password=*** rejected",
		},
		{
			name: "bearer token",
			in:   "sending Authorization: Bearer abc.def.ghi",
			want: "sending Authorization: Bearer ***",
		},
		{
			name: "token pair",
			in:   "token=eyJhbGciOi expired",
			want: "token=*** expired",
		},
		{
			name: "api key",
			in:   "api_key=sk-123456 invalid",
			want: "api_key=*** invalid",
		},
		{
			name: "no secrets",
			in:   "connection refused",
			want: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.in))
		})
	}
}

func TestPresentError(t *testing.T) {
	assert.Empty(t, PresentError("refreshing session", nil))

	got := PresentError("refreshing session", errors.New("server said token=abc123"))
	assert.Equal(t, "refreshing session: server said token=***", got)
}
