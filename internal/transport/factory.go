// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package transport

import (
	"ochat/cli/internal/config"
)

// New selects the transport implementation from configuration. The choice is
// made exactly once, at process start; nothing downstream ever re-checks the
// mode.
func New(cfg config.Config, tokens TokenSource) API {
	if cfg.SimulatedAuth {
		return NewSimulated()
	}
	return NewHTTP(cfg.BaseURL, tokens)
}
