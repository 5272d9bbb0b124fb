// Copyright (c) 2026 Opportunity Center
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"strings"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"ochat/cli/internal/chat"
	"ochat/cli/internal/identity"
	"ochat/cli/internal/logging"
	"ochat/cli/internal/session"
	"ochat/cli/internal/terminal"
	"ochat/cli/internal/transport"
)

var chatConversationID string

// chatCmd is the interactive conversation view. Every message it sends goes
// through the chat client, which tags requests with the identifier the
// session machine cached in the identity bridge.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start or resume a conversation",
	Long: `The chat command opens an interactive conversation with the Opportunity
Center assistant. Messages are sent on behalf of the signed-in account.

Pass --conversation with an id from 'ochat conversations' to resume an
earlier conversation; without it a new one is started on the first message.
Type 'exit' to leave.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		m, err := session.FromContext(ctx)
		if err != nil {
			return err
		}

		snap := m.Snapshot()
		if !snap.IsAuthenticated() {
			pterm.Println("🔒 You're not signed in yet!")
			pterm.Println("   Run 'ochat login' to get started.")
			return nil
		}

		client := chat.NewClient(appConfig.BaseURL, keychainTokens{}, identity.Default())

		if chatConversationID != "" {
			if err := printHistory(cmd, client); err != nil {
				pterm.Error.Println(logging.PresentError("loading conversation", err))
				return nil
			}
		}

		pterm.Info.Printfln("Chatting as %s. Type 'exit' to leave.", displayName(snap.User))

		frames := []string{"|", "/", "-", "\\"}
		for {
			text, err := pterm.DefaultInteractiveTextInput.Show("You")
			if err != nil {
				return nil // input closed
			}
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			if text == "exit" || text == "quit" {
				return nil
			}

			// Re-render the submitted line in the transcript style.
			terminal.ClearPreviousLines(len("You: ") + len(text))
			pterm.Printfln("%s %s", pterm.FgLightMagenta.Sprint("You:"), text)

			cursor.Hide()
			stop := startInlineSpinner(os.Stdout, "Thinking", frames, 120*time.Millisecond)
			res, err := client.Send(ctx, chatConversationID, text)
			stop()
			cursor.Show()

			if err != nil {
				if transport.IsUnauthorized(err) {
					pterm.Error.Println("Your session has expired. Run 'ochat login' to sign in again.")
					return nil
				}
				pterm.Error.Println(logging.PresentError("sending message", err))
				continue
			}

			chatConversationID = res.ConversationID
			pterm.Printfln("%s %s", pterm.FgCyan.Sprint("Assistant:"), res.Message.Content)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVarP(&chatConversationID, "conversation", "c", "", "Conversation id to resume")
}

// printHistory replays the resumed conversation's transcript.
func printHistory(cmd *cobra.Command, client *chat.Client) error {
	history, err := client.History(cmd.Context(), chatConversationID)
	if err != nil {
		return err
	}
	for _, msg := range history.Messages {
		speaker := pterm.FgCyan.Sprint("Assistant:")
		if msg.Role == "user" {
			speaker = pterm.FgLightMagenta.Sprint("You:")
		}
		pterm.Printfln("%s %s", speaker, msg.Content)
	}
	return nil
}
