// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ochat/cli/internal/chat"
	"ochat/cli/internal/identity"
	"ochat/cli/internal/logging"
	"ochat/cli/internal/session"
)

// chatClient gates a chat command on an authenticated session and builds the
// client. ok is false when the user is not signed in; the hint has already
// been printed in that case.
func chatClient(cmd *cobra.Command) (client *chat.Client, ok bool, err error) {
	m, err := session.FromContext(cmd.Context())
	if err != nil {
		return nil, false, err
	}

	if !m.Snapshot().IsAuthenticated() {
		pterm.Println("🔒 You're not signed in yet!")
		pterm.Println("   Run 'ochat login' to get started.")
		return nil, false, nil
	}

	return chat.NewClient(appConfig.BaseURL, keychainTokens{}, identity.Default()), true, nil
}

// conversationsCmd lists the signed-in user's conversations so one of them
// can be resumed with 'ochat chat --conversation <id>'. Its subcommands
// delete a conversation or clear its messages.
var conversationsCmd = &cobra.Command{
	Use:     "conversations",
	Aliases: []string{"convos", "ls"},
	Short:   "List your conversations",

	RunE: func(cmd *cobra.Command, args []string) error {
		client, ok, err := chatClient(cmd)
		if err != nil || !ok {
			return err
		}

		list, err := client.Conversations(cmd.Context())
		if err != nil {
			pterm.Error.Println(logging.PresentError("listing conversations", err))
			return nil
		}

		if len(list) == 0 {
			pterm.Info.Println("No conversations yet. Run 'ochat chat' to start one.")
			return nil
		}

		data := pterm.TableData{{"ID", "Title", "Updated", "Messages"}}
		for _, c := range list {
			data = append(data, []string{shortID(c.ID), c.Title, c.UpdatedAt, strconv.Itoa(c.MessageCount)})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

// conversationsDeleteCmd removes a conversation and everything in it.
var conversationsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a conversation",
	Args:    cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		client, ok, err := chatClient(cmd)
		if err != nil || !ok {
			return err
		}

		if err := client.Delete(cmd.Context(), args[0]); err != nil {
			pterm.Error.Println(logging.PresentError("deleting conversation", err))
			return nil
		}
		pterm.Success.Println("Conversation deleted.")
		return nil
	},
}

// conversationsClearCmd empties a conversation's messages but keeps it
// around, so the same id can be continued with a fresh history.
var conversationsClearCmd = &cobra.Command{
	Use:   "clear <id>",
	Short: "Clear a conversation's messages",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		client, ok, err := chatClient(cmd)
		if err != nil || !ok {
			return err
		}

		if err := client.ClearMessages(cmd.Context(), args[0]); err != nil {
			pterm.Error.Println(logging.PresentError("clearing conversation", err))
			return nil
		}
		pterm.Success.Println("Conversation messages cleared.")
		return nil
	},
}

func init() {
	conversationsCmd.AddCommand(conversationsDeleteCmd)
	conversationsCmd.AddCommand(conversationsClearCmd)
	rootCmd.AddCommand(conversationsCmd)
}

// shortID truncates a uuid for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
