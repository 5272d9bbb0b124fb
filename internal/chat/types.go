// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package chat is the client for the Opportunity Center chat endpoints. Every
// request it sends is tagged with the current user's identifier read from the
// identity cache bridge, which is exactly what the bridge exists for.
package chat

// Message is a single chat message as stored by the backend.
type Message struct {
	ID             string `json:"id"`
	Content        string `json:"content"`
	Role           string `json:"role"` // "user" or "assistant"
	Timestamp      string `json:"timestamp"`
	ConversationID string `json:"conversationId"`
}

// ConversationSummary describes one conversation in the sidebar listing.
type ConversationSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
	MessageCount int    `json:"messageCount"`
}

// History is the full message log of one conversation.
type History struct {
	Messages       []Message `json:"messages"`
	ConversationID string    `json:"conversationId"`
}

// sendRequest is the wire payload for posting a message. An empty
// conversation id asks the backend to start a new conversation.
type sendRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId,omitempty"`
}

// SendResult is the backend's answer to a posted message.
type SendResult struct {
	Message        Message `json:"message"`
	ConversationID string  `json:"conversationId"`
}
