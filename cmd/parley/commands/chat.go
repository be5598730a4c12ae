package commands

import (
	"fmt"

	"github.com/eachlabs/parley/internal/channel"
	"github.com/eachlabs/parley/internal/tui"
	"github.com/spf13/cobra"
)

var (
	chatChannel int
	chatInline  bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the chat window",
	Long: `Open the interactive chat window.

Examples:
  parley chat
  parley chat --prune --prune-length 10
  parley chat --channel 1 --inline`,
	RunE: runChat,
}

func init() {
	addChatFlags(chatCmd)
}

// addChatFlags registers the flags of every command that opens the chat
// window, including the root command.
func addChatFlags(cmd *cobra.Command) {
	addPruneFlags(cmd)
	cmd.Flags().IntVarP(&chatChannel, "channel", "c", 0, "channel to show first (0 shows all)")
	cmd.Flags().BoolVar(&chatInline, "inline", false, "render inline instead of the alternate screen")
}

func runChat(cmd *cobra.Command, args []string) error {
	app, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if f := cmd.Flags().Lookup("channel"); f != nil && f.Changed {
		if !app.SelectChannel(channel.ID(chatChannel)) {
			return fmt.Errorf("unknown channel: %d", chatChannel)
		}
	}
	if chatInline {
		app.Window.AltScreen = false
	}

	return tui.RunChat(app)
}
