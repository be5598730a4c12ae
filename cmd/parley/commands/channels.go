package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/eachlabs/parley/internal/channel"
	"github.com/eachlabs/parley/internal/chathistory"
	"github.com/spf13/cobra"
)

var channelsCmd = &cobra.Command{
	Use:     "channels",
	Aliases: []string{"ch"},
	Short:   "List channels",
	Long: `List the configured channels with their IDs and colors.

Channel 0 doubles as the "show all" filter in the chat window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		h := chathistory.FromExisting(cfg.ChannelList(), cfg.SeedMessages(), cfg.PrunePolicy())

		counts := make(map[channel.ID]int)
		for m := range h.IterHistory() {
			counts[m.ChannelID]++
		}

		out := cmd.OutOrStdout()
		if jsonOut {
			type row struct {
				ID       channel.ID    `json:"id"`
				Name     string        `json:"name"`
				Color    channel.Color `json:"color"`
				Messages int           `json:"messages"`
			}
			var rows []row
			for ch := range h.Channels() {
				rows = append(rows, row{ch.ID(), ch.Name, ch.TextColor, counts[ch.ID()]})
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}

		var colors []channel.Color
		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderHeader(false).
			BorderColumn(false).
			Headers("ID", "NAME", "COLOR", "MESSAGES")
		for ch := range h.Channels() {
			colors = append(colors, ch.TextColor)
			t.Row(strconv.Itoa(int(ch.ID())), ch.Name, ch.TextColor.HexAlpha(), strconv.Itoa(counts[ch.ID()]))
		}
		// Cells are styled by the table so column widths ignore escape codes.
		t.StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(2)
			if row != table.HeaderRow && col == 1 {
				style = style.Foreground(lipgloss.Color(colors[row].Hex()))
			}
			return style
		})

		_, err = fmt.Fprintln(out, t.Render())
		return err
	},
}
