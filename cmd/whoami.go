// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ochat/cli/internal/keychain"
	"ochat/cli/internal/session"
	"ochat/cli/internal/token"
	"ochat/cli/internal/transport"
)

// whoamiCmd shows the resolved session: who is signed in, their role, and
// when the saved token expires. The session was already refreshed against the
// backend when the root command bootstrapped the machine.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show the current signed-in account",
	Long: `The whoami command displays the account behind the current session, as
resolved against the backend at startup. It also inspects the locally saved
token and reports when it expires.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := session.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		snap := m.Snapshot()
		if !snap.IsAuthenticated() {
			pterm.Println("🔒 You're not signed in yet!")
			pterm.Println("   Run 'ochat login' to get started.")
			return nil
		}

		u := snap.User
		pterm.Printfln("👤 Signed in as %s", displayName(u))
		if u.Email != "" && u.Email != displayName(u) {
			pterm.Printfln("   email: %s", u.Email)
		}
		if snap.IsAdmin() {
			pterm.Printfln("   role:  %s (admin views enabled)", u.Role)
		} else if u.Role != "" {
			pterm.Printfln("   role:  %s", u.Role)
		}

		reportTokenExpiry()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// reportTokenExpiry inspects the saved token's claims, when there is a real
// one to inspect. Claims are read without verification; only the backend can
// check the signature.
func reportTokenExpiry() {
	km, err := keychain.GetManager()
	if err != nil {
		return
	}
	raw, err := km.Token()
	if err != nil || raw == "" || raw == transport.SimulatedToken {
		return
	}

	claims, err := token.Parse(raw)
	if err != nil || claims.ExpiresAt.IsZero() {
		return
	}
	if claims.Expired() {
		pterm.Warning.Println("Your saved token has expired; run 'ochat login' to sign in again.")
		return
	}
	pterm.Printfln("   token expires %s", claims.ExpiresAt.Local().Format("2006-01-02 15:04"))
}
