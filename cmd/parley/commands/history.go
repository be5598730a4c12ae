package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/lipgloss"
	"github.com/eachlabs/parley/internal/channel"
	"github.com/eachlabs/parley/internal/chathistory"
	"github.com/eachlabs/parley/internal/state"
	"github.com/spf13/cobra"
)

var (
	historyAll     bool
	historyChannel int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the chat history",
	Long: `Print the chat history that the chat window starts with.

Only the visible window is printed unless --all is given, in which case
archived lines come first.

Examples:
  parley history
  parley history --prune --prune-length 5 --all
  parley history --channel 1 --json`,
	RunE: runHistory,
}

func init() {
	addPruneFlags(historyCmd)
	historyCmd.Flags().BoolVarP(&historyAll, "all", "a", false, "include archived lines")
	historyCmd.Flags().IntVarP(&historyChannel, "channel", "c", 0, "only show this channel (0 shows all)")
}

type historyLine struct {
	Channel  channel.ID `json:"channel"`
	Name     string     `json:"name"`
	Text     string     `json:"text"`
	Archived bool       `json:"archived"`
}

func runHistory(cmd *cobra.Command, args []string) error {
	app, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if !app.SelectChannel(channel.ID(historyChannel)) {
		return fmt.Errorf("unknown channel: %d", historyChannel)
	}

	var lines []historyLine
	if historyAll {
		lines = collectLines(app, app.History.IterBackup(), true)
	}
	lines = append(lines, collectLines(app, app.History.IterHistory(), false)...)

	out := cmd.OutOrStdout()
	if jsonOut {
		enc := json.NewEncoder(out)
		for _, l := range lines {
			if err := enc.Encode(l); err != nil {
				return err
			}
		}
		return nil
	}
	return printHistory(out, app, lines)
}

// collectLines resolves messages for printing, applying the channel filter
// and skipping messages whose channel is not registered.
func collectLines(app *state.App, seq iter.Seq[chathistory.Message], archived bool) []historyLine {
	var out []historyLine
	for m := range seq {
		if app.Selected != state.AllChannels && m.ChannelID != app.Selected {
			continue
		}
		ch, ok := app.History.LookupChannel(m.ChannelID)
		if !ok {
			continue
		}
		out = append(out, historyLine{
			Channel:  m.ChannelID,
			Name:     ch.Name,
			Text:     m.Text(),
			Archived: archived,
		})
	}
	return out
}

func printHistory(w io.Writer, app *state.App, lines []historyLine) error {
	dim := lipgloss.NewStyle().Faint(true)
	for _, l := range lines {
		ch, _ := app.History.LookupChannel(l.Channel)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ch.TextColor.Hex()))
		text := style.Render(fmt.Sprintf("[%s] %s", l.Name, l.Text))
		if l.Archived {
			text = dim.Render(text)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}

	p := app.History.PrunePolicy()
	limit := "off"
	if p.Enabled {
		limit = fmt.Sprint(p.Length)
	}
	_, err := fmt.Fprintf(w, "-- %d visible, %d archived, limit %s\n",
		app.History.HistoryLen(), app.History.BackupLen(), limit)
	return err
}
