// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"ochat/cli/internal/identity"
	"ochat/cli/internal/transport"
)

// Backend endpoint paths.
const (
	pathConversations = "/api/chat/conversations"
	pathMessage       = "/api/chat/message"
)

// Client calls the chat endpoints. It reads the identity cache bridge on
// every request to fill the X-User-Id header, so it always reflects whatever
// the session machine last wrote.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  transport.TokenSource
	ids     *identity.Bridge
}

// NewClient creates a chat client against baseURL.
func NewClient(baseURL string, tokens transport.TokenSource, ids *identity.Bridge) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second}, // model replies are slow
		tokens:  tokens,
		ids:     ids,
	}
}

// newRequest builds a request with the standard headers: the bridge's user
// id, a fresh request id for tracing, and the stored bearer token when one
// exists.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if id := c.ids.UserID(); id != "" {
		req.Header.Set("X-User-Id", id)
	}
	if token, err := c.tokens.Token(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// Conversations lists the current user's conversations, newest first.
func (c *Client) Conversations(ctx context.Context) ([]ConversationSummary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, pathConversations, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, transport.ErrorFromResponse(resp)
	}

	var out []ConversationSummary
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// History fetches the message log of one conversation.
func (c *Client) History(ctx context.Context, conversationID string) (*History, error) {
	req, err := c.newRequest(ctx, http.MethodGet, pathConversations+"/"+conversationID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, transport.ErrorFromResponse(resp)
	}

	var out History
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a conversation and its messages. A conversation the
// backend does not know yields a 404 status error.
func (c *Client) Delete(ctx context.Context, conversationID string) error {
	return c.delete(ctx, pathConversations+"/"+conversationID)
}

// ClearMessages empties a conversation's message log but keeps the
// conversation itself, so it can be continued from a clean slate.
func (c *Client) ClearMessages(ctx context.Context, conversationID string) error {
	return c.delete(ctx, pathConversations+"/"+conversationID+"/messages")
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return transport.ErrorFromResponse(resp)
	}
	return nil
}

// Send posts a message. Pass an empty conversationID to start a new
// conversation; the backend's reply carries the id to continue with.
func (c *Client) Send(ctx context.Context, conversationID, text string) (*SendResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("message must not be empty")
	}

	b, err := json.Marshal(sendRequest{Message: text, ConversationID: conversationID})
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, pathMessage, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, transport.ErrorFromResponse(resp)
	}

	var out SendResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
