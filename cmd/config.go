// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ochat/cli/internal/config"
)

var (
	configURL       string
	configSimulated string
	configLogLevel  string
)

// configCmd shows the resolved configuration and, when any --set flag is
// passed, writes the change back to the config file. Environment overrides
// (OCHAT_BASE_URL, OCHAT_SIMULATED_AUTH) still win over the file at startup.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI configuration",
	Long: `Without flags, the config command prints the settings the CLI resolved at
startup. With one or more --set flags it updates the config file; the change
takes effect on the next run, since the simulated-auth mode is fixed at
process start.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, changed, err := applyConfigFlags(appConfig, configURL, configSimulated, configLogLevel)
		if err != nil {
			return err
		}
		if changed {
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("saving configuration: %w", err)
			}
			pterm.Success.Println("Configuration saved.")
		}

		data := pterm.TableData{
			{"Setting", "Value"},
			{"base_url", cfg.BaseURL},
			{"simulated_auth", strconv.FormatBool(cfg.SimulatedAuth)},
			{"log_level", cfg.LogLevel},
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	configCmd.Flags().StringVar(&configURL, "set-url", "", "Backend base URL")
	configCmd.Flags().StringVar(&configSimulated, "set-simulated", "", "Simulated auth mode (true|false)")
	configCmd.Flags().StringVar(&configLogLevel, "set-log-level", "", "Log level (info|debug)")
	rootCmd.AddCommand(configCmd)
}

// applyConfigFlags layers the --set flags over the current configuration.
// Empty flag values leave the setting untouched.
func applyConfigFlags(cfg config.Config, url, simulated, logLevel string) (config.Config, bool, error) {
	changed := false
	if url != "" {
		cfg.BaseURL = url
		changed = true
	}
	switch simulated {
	case "":
	case "true":
		cfg.SimulatedAuth = true
		changed = true
	case "false":
		cfg.SimulatedAuth = false
		changed = true
	default:
		return cfg, false, fmt.Errorf("--set-simulated must be true or false, got %q", simulated)
	}
	switch logLevel {
	case "":
	case "info", "debug":
		cfg.LogLevel = logLevel
		changed = true
	default:
		return cfg, false, fmt.Errorf("--set-log-level must be info or debug, got %q", logLevel)
	}
	return cfg, changed, nil
}
