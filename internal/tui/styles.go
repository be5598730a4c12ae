package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/eachlabs/parley/internal/channel"
)

var (
	// Colors for chat
	chatPurple    = lipgloss.Color("#A855F7")
	chatGreen     = lipgloss.Color("#22C55E")
	chatRed       = lipgloss.Color("#EF4444")
	chatGray      = lipgloss.Color("#6B7280")
	chatDarkGray  = lipgloss.Color("#374151")
	chatLightGray = lipgloss.Color("#9CA3AF")
	chatBlack     = lipgloss.Color("#111827")

	// Styles for chat
	chatTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(chatPurple)

	chatErrorMsgStyle = lipgloss.NewStyle().
				Foreground(chatRed).
				Bold(true)

	chatInputBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(chatPurple).
				Padding(0, 1)

	chatInputBoxFocusedStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(chatGreen).
					Padding(0, 1)

	chatStatusStyle = lipgloss.NewStyle().
			Foreground(chatGray)

	chatHelpStyle = lipgloss.NewStyle().
			Foreground(chatGray)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(chatLightGray).
			Padding(0, 1)

	popupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(chatLightGray)

	popupHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	checkboxStyle = lipgloss.NewStyle().
			Foreground(chatGreen).
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1)
)

// channelButton renders a channel tab in the channel's color. The selected
// tab is drawn filled.
func channelButton(name string, c channel.Color, selected bool) string {
	if selected {
		return buttonStyle.
			Bold(true).
			Foreground(chatBlack).
			Background(lipgloss.Color(c.Hex())).
			Render(name)
	}
	return buttonStyle.
		Foreground(lipgloss.Color(c.Hex())).
		Background(chatDarkGray).
		Render(name)
}

// channelText renders a chat line in its channel's color, wrapped to width.
func channelText(text string, c channel.Color, width int) string {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	if width > 0 {
		s = s.Width(width)
	}
	return s.Render(text)
}
