// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"math/rand/v2"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ochat/cli/internal/keychain"
	"ochat/cli/internal/session"
	"ochat/cli/internal/transport"
)

// loginCmd is the sign-in view: it prompts for the email and password, hands
// them to the session machine, and reduces every failure to one generic
// message. Raw backend error text never reaches the terminal.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"signin"},
	Short:   "Sign in to Opportunity Center",
	Long: `The login command prompts for your email and password and establishes a
session with the Opportunity Center backend. On success the auth token and
the email you entered are saved to the OS keychain so later commands can
resume the session without prompting again.

If you are already signed in with a valid session, the prompt is skipped.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		m, err := session.FromContext(ctx)
		if err != nil {
			return err
		}

		if snap := m.Snapshot(); snap.IsAuthenticated() {
			pterm.Info.Printfln("Already signed in as %s", displayName(snap.User))
			return nil
		}

		email, err := pterm.DefaultInteractiveTextInput.
			WithDefaultValue(savedIdentifier()).
			Show("Email")
		if err != nil {
			return err
		}
		email = strings.TrimSpace(email)

		password, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return err
		}

		payload, err := m.Login(ctx, transport.Credentials{Email: email, Password: password})
		if err != nil {
			// One generic message for every failure class.
			pterm.Error.Println("Sign-in failed. Check your email and password, then try again.")
			return nil
		}

		persistLogin(payload.Token, email)

		pterm.Success.Println(randomGreeting(displayName(payload.User)))
		pterm.Println("Run 'ochat chat' to start a conversation.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

// savedIdentifier returns the email submitted at the last successful login,
// used to prefill the prompt. An unavailable keychain reads as nothing saved.
func savedIdentifier() string {
	km, err := keychain.GetManager()
	if err != nil {
		return ""
	}
	id, err := km.Identifier()
	if err != nil {
		return ""
	}
	return id
}

// persistLogin writes the token and the submitted identifier to the keychain.
// This is the view's own persistence path, independent of the identity cache
// bridge; a failure here leaves the in-memory session intact, so it is only
// worth a warning.
func persistLogin(token, identifier string) {
	km, err := keychain.GetManager()
	if err == nil {
		err = km.SaveLogin(token, identifier)
	}
	if err != nil {
		pterm.Warning.Println("Signed in, but your session could not be saved; you may need to log in again next time.")
	}
}

// randomGreeting returns a friendly post-login phrase with the user's name.
func randomGreeting(name string) string {
	greetings := []string{
		"Welcome back, %s!",
		"Great to see you, %s!",
		"You're all set, %s!",
		"Signed in as %s - happy chatting!",
	}
	return pterm.Sprintf(greetings[rand.IntN(len(greetings))], name)
}
