package tui

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/eachlabs/parley/internal/channel"
	"github.com/eachlabs/parley/internal/state"
)

func (m ChatModel) updatePopup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch e := m.app.Editing.(type) {
	case state.EditChannelName:
		return m.updateTextPopup(msg, m.app.CommitRename)

	case state.EditChannelColor:
		return m.updateTextPopup(msg, m.app.CommitColor)

	case state.EditHistoryLength:
		return m.updateHistoryLength(msg, e)

	case state.ViewAllHistory:
		if key.Matches(msg, keys.Close, keys.Send) {
			m.app.CancelEditing()
			return m.closePopup()
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case state.NotEditing:
		return m.updateChat(msg)
	}
	return m, nil
}

func (m ChatModel) updateTextPopup(msg tea.KeyMsg, commit func(string) error) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Close):
		m.app.CancelEditing()
		m.err = nil
		return m.closePopup()

	case key.Matches(msg, keys.Send):
		if err := commit(m.menu.Value()); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		return m.closePopup()
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m ChatModel) updateHistoryLength(msg tea.KeyMsg, e state.EditHistoryLength) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Close):
		m.app.CancelEditing()
		m.limitDraft = e.Current.Enabled
		return m.closePopup()

	case key.Matches(msg, keys.Send):
		length, err := parseLength(m.menu.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		if err := m.app.CommitHistoryLength(m.limitDraft, length); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		return m.closePopup()

	case key.Matches(msg, keys.Toggle):
		m.limitDraft = !m.limitDraft
		return m, nil
	}

	// Digits only
	if msg.Type == tea.KeyRunes && !allDigits(msg.Runes) {
		return m, nil
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// parseLength reads the history length field. An empty field means zero.
func parseLength(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return max(n, 0), nil
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (m ChatModel) popupView() string {
	var body string
	width := max(m.width-4, 20)

	switch e := m.app.Editing.(type) {
	case state.EditChannelName:
		body = lipgloss.JoinVertical(lipgloss.Left,
			popupTitleStyle.Render("Rename channel: ")+m.channelLabel(e.ID, e.Name),
			"",
			m.menu.View(),
			"",
			popupHintStyle.Render("enter ok • esc cancel"),
		)

	case state.EditChannelColor:
		body = lipgloss.JoinVertical(lipgloss.Left,
			popupTitleStyle.Render("Edit text color channel ")+m.channelLabel(e.ID, ""),
			"",
			m.menu.View()+"  "+m.colorPreview(),
			"",
			popupHintStyle.Render("#rrggbb or #rrggbbaa • enter ok • esc cancel"),
		)

	case state.EditHistoryLength:
		box := "[ ]"
		if m.limitDraft {
			box = "[x]"
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			popupTitleStyle.Render("History Length"),
			popupHintStyle.Render("Enter maximum number of lines to display in your chat window."),
			popupHintStyle.Render("All further messages are kept in memory."),
			"",
			checkboxStyle.Render(box)+" Limit Chat History Length",
			m.menu.View(),
			"",
			popupHintStyle.Render("space toggle • enter ok • esc cancel"),
		)

	case state.ViewAllHistory:
		return popupStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
			popupTitleStyle.Render("Examine Chat"),
			m.viewport.View(),
		))

	case state.NotEditing:
		return ""
	}

	return popupStyle.Width(width).Render(body)
}

func (m ChatModel) channelLabel(id channel.ID, fallback string) string {
	ch, ok := m.app.History.LookupChannel(id)
	if !ok {
		return fallback
	}
	return channelText(ch.Name, ch.TextColor, 0)
}

func (m ChatModel) colorPreview() string {
	c, err := channel.ParseColor(m.menu.Value())
	if err != nil {
		return popupHintStyle.Render("(invalid)")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
}
