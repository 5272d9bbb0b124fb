// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Opportunity Center
// chat client. It implements subcommands for session management (login,
// register, logout, whoami) and for chatting, using the Cobra CLI framework
// with a pterm-based terminal UI.
//
// The root command owns the single session machine for the process: it is
// constructed and bootstrapped once before any subcommand runs, then shared
// with every command through the command context.
package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ochat/cli/internal/config"
	"ochat/cli/internal/identity"
	"ochat/cli/internal/keychain"
	"ochat/cli/internal/session"
	"ochat/cli/internal/transport"
)

var (
	showVersion bool

	// appConfig is resolved once in initSession; the simulated-auth mode it
	// carries is never re-read after startup.
	appConfig config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "ochat",
	Short:         "Opportunity Center chat from your terminal",
	Long:          `ochat is a terminal client for the Opportunity Center chat service. Sign in once and your session is picked up by every command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: initSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("ochat %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}

// initSession constructs the one session machine for this process: transport
// selected by the mode flag, identity bridge cleared, initial refresh done
// exactly once. Every subcommand reaches the machine via session.FromContext.
func initSession(cmd *cobra.Command, args []string) error {
	if showVersion {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	appConfig = cfg

	if cfg.LogLevel == "debug" {
		pterm.EnableDebugMessages()
	}

	api := transport.New(cfg, keychainTokens{})
	pterm.Debug.Printfln("transport: %T against %s", api, cfg.BaseURL)
	machine := session.NewMachine(api, identity.Default(), warnf)
	machine.Bootstrap(cmd.Context())

	cmd.SetContext(session.WithContext(cmd.Context(), machine))
	return nil
}

// keychainTokens adapts the keychain to transport.TokenSource. An unavailable
// keychain reads as "no credential", not as an error.
type keychainTokens struct{}

func (keychainTokens) Token() (string, error) {
	km, err := keychain.GetManager()
	if err != nil {
		return "", nil
	}
	return km.Token()
}

// warnf is the observability sink handed to the session machine.
func warnf(format string, args ...any) {
	pterm.Warning.Printfln(format, args...)
}

// displayName picks the friendliest available identifier for a user.
func displayName(u *transport.User) string {
	switch {
	case u == nil:
		return "anonymous"
	case u.Name != "":
		return u.Name
	case u.Email != "":
		return u.Email
	default:
		return u.ID
	}
}
