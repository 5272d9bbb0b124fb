// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ochat/cli/internal/keychain"
	"ochat/cli/internal/session"
)

// logoutCmd tears the session down. Remote invalidation is best-effort; the
// local session and the saved keychain entries are cleared no matter what, so
// from the user's point of view logout always succeeds.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the saved session",
	Long: `The logout command ends the current session. It notifies the backend
(best-effort) and then clears the local session state together with the
token and identifier saved in the OS keychain.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := session.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		m.Logout(cmd.Context())

		// Clear the view's own persistence regardless of the backend outcome.
		if km, err := keychain.GetManager(); err == nil {
			_ = km.ClearLogin()
		}

		pterm.Success.Println("You are signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
