// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ochat/cli/internal/session"
	"ochat/cli/internal/transport"
)

// registerCmd creates a new account. The backend signs the account in as part
// of registration, so a successful run leaves the user with a live session,
// exactly like login. The same one-generic-message rule applies to failures.
var registerCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"signup"},
	Short:   "Create an Opportunity Center account",
	Long: `The register command prompts for an email and password and creates a new
account. On success you are signed in immediately and the session is saved
to the OS keychain, just like with login.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		m, err := session.FromContext(ctx)
		if err != nil {
			return err
		}

		if snap := m.Snapshot(); snap.IsAuthenticated() {
			pterm.Info.Printfln("Already signed in as %s. Run 'ochat logout' first to create another account.", displayName(snap.User))
			return nil
		}

		email, err := pterm.DefaultInteractiveTextInput.Show("Email")
		if err != nil {
			return err
		}
		email = strings.TrimSpace(email)

		password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return err
		}
		confirm, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Confirm password")
		if err != nil {
			return err
		}
		if password != confirm {
			pterm.Error.Println("Passwords do not match.")
			return nil
		}

		payload, err := m.Register(ctx, transport.Registration{Email: email, Password: password})
		if err != nil {
			pterm.Error.Println("Registration failed. The email may already be taken; try signing in instead.")
			return nil
		}

		persistLogin(payload.Token, email)

		pterm.Success.Printfln("Account created. Signed in as %s.", displayName(payload.User))
		pterm.Println("Run 'ochat chat' to start a conversation.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
