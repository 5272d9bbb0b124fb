// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ochat/cli/internal/identity"
	"ochat/cli/internal/transport"
)

type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

func TestSendTagsRequestWithBridgeIdentity(t *testing.T) {
	bridge := &identity.Bridge{}
	bridge.SetUserID("u-1")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat/message", r.URL.Path)
		assert.Equal(t, "u-1", r.Header.Get("X-User-Id"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var req sendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Message)

		json.NewEncoder(w).Encode(SendResult{
			Message:        Message{ID: "m-1", Content: "hi!", Role: "assistant", ConversationID: "c-1"},
			ConversationID: "c-1",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken("tok-1"), bridge)
	res, err := c.Send(context.Background(), "", "hello")
	require.NoError(t, err)
	assert.Equal(t, "c-1", res.ConversationID)
	assert.Equal(t, "hi!", res.Message.Content)
}

func TestSendFollowsBridgeUpdates(t *testing.T) {
	bridge := &identity.Bridge{}

	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("X-User-Id"))
		json.NewEncoder(w).Encode(SendResult{ConversationID: "c-1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""), bridge)
	ctx := context.Background()

	bridge.SetUserID("u-1")
	_, err := c.Send(ctx, "c-1", "first")
	require.NoError(t, err)

	bridge.SetUserID("")
	_, err = c.Send(ctx, "c-1", "second")
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "u-1", seen[0])
	assert.Empty(t, seen[1], "anonymous requests carry no identity header")
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	c := NewClient("http://localhost:0", staticToken(""), &identity.Bridge{})
	_, err := c.Send(context.Background(), "", "   ")
	assert.Error(t, err)
}

func TestConversations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat/conversations", r.URL.Path)
		json.NewEncoder(w).Encode([]ConversationSummary{
			{ID: "c-1", Title: "Grant deadlines", MessageCount: 4},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""), &identity.Bridge{})
	out, err := c.Conversations(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Grant deadlines", out[0].Title)
}

func TestDeleteConversation(t *testing.T) {
	bridge := &identity.Bridge{}
	bridge.SetUserID("u-1")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/chat/conversations/c-1", r.URL.Path)
		assert.Equal(t, "u-1", r.Header.Get("X-User-Id"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Conversation deleted."})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""), bridge)
	assert.NoError(t, c.Delete(context.Background(), "c-1"))
}

func TestDeleteConversationNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Conversation not found."})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""), &identity.Bridge{})
	err := c.Delete(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, transport.StatusCode(err))
}

func TestClearMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/chat/conversations/c-1/messages", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "Conversation messages cleared."})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""), &identity.Bridge{})
	assert.NoError(t, c.ClearMessages(context.Background(), "c-1"))
}

func TestHistoryNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Conversation not found."})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticToken(""), &identity.Bridge{})
	_, err := c.History(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, transport.StatusCode(err))
}
