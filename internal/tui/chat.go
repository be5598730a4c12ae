// Package tui renders the chat window: channel tabs, the visible message
// log, an input line, and the popups that edit channels and the history
// length. All chat state lives in a state.App owned by the model.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/eachlabs/parley/internal/state"
	"go.uber.org/zap"
)

// Rows used by everything except the message viewport.
const chromeHeight = 10

// ChatModel is the bubbletea model for the chat window.
type ChatModel struct {
	// UI components
	input    textinput.Model
	menu     textinput.Model
	viewport viewport.Model
	help     help.Model

	app *state.App

	// Draft of the history length popup checkbox
	limitDraft bool

	width  int
	height int
	ready  bool
	err    error
}

// NewChatModel creates a chat window over app.
func NewChatModel(app *state.App) ChatModel {
	// Chat input line
	in := textinput.New()
	in.Placeholder = "Type your message..."
	in.Prompt = "> "
	in.CharLimit = app.Window.MaxChatInput
	in.Width = app.Window.Width - 6
	in.Focus()

	// Popup field
	menu := textinput.New()
	menu.Prompt = ""
	menu.CharLimit = app.Window.MaxMenuInput
	menu.Width = max(app.Window.MaxMenuInput+1, 12)

	m := ChatModel{
		input:    in,
		menu:     menu,
		viewport: viewport.New(app.Window.Width-2, app.Window.Height),
		help:     help.New(),
		app:      app,
		width:    app.Window.Width,
		height:   app.Window.Height + chromeHeight,
	}
	m.refresh()
	return m
}

// App returns the application state driven by the model.
func (m ChatModel) App() *state.App {
	return m.app
}

func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if _, ok := m.app.Editing.(state.NotEditing); ok {
			return m.updateChat(msg)
		}
		return m.updatePopup(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.menu, cmd = m.menu.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m ChatModel) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Close):
		return m, tea.Quit

	case key.Matches(msg, keys.Send):
		if m.app.Send(m.input.Value()) {
			m.input.Reset()
			m.err = nil
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, keys.NextChannel):
		m.app.CycleChannel(1)
		m.refresh()
		return m, nil

	case key.Matches(msg, keys.PrevChannel):
		m.app.CycleChannel(-1)
		m.refresh()
		return m, nil

	case key.Matches(msg, keys.Rename):
		return m.openPopup(m.app.BeginRename(m.app.Selected))

	case key.Matches(msg, keys.Recolor):
		return m.openPopup(m.app.BeginColor(m.app.Selected))

	case key.Matches(msg, keys.Length):
		m.app.BeginHistoryLength()
		return m.openPopup(nil)

	case key.Matches(msg, keys.ViewAll):
		m.app.BeginViewAll()
		return m.openPopup(nil)

	case key.Matches(msg, keys.ScrollUp), key.Matches(msg, keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ChatModel) openPopup(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.err = err
		m.app.Logger().Debug("Popup not opened", zap.Error(err))
		return m, nil
	}
	m.err = nil
	m.input.Blur()
	m.menu.Reset()

	switch e := m.app.Editing.(type) {
	case state.EditChannelName:
		m.menu.SetValue(e.Name)
	case state.EditChannelColor:
		m.menu.SetValue(e.Original.HexAlpha())
	case state.EditHistoryLength:
		m.limitDraft = e.Current.Enabled
		m.menu.SetValue(fmt.Sprint(e.Current.Length))
	case state.ViewAllHistory:
		m.refresh()
		m.viewport.GotoTop()
		return m, nil
	case state.NotEditing:
		return m, nil
	}

	m.menu.CursorEnd()
	cmd := m.menu.Focus()
	return m, cmd
}

func (m ChatModel) closePopup() (tea.Model, tea.Cmd) {
	m.menu.Blur()
	m.refresh()
	cmd := m.input.Focus()
	return m, cmd
}

func (m *ChatModel) resize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := max(height-chromeHeight, 3)
	if !m.ready {
		m.viewport = viewport.New(width-2, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width - 2
		m.viewport.Height = vpHeight
	}
	m.input.Width = width - 6
	m.help.Width = width
	m.refresh()
}

// refresh re-renders the viewport from the history. The chat view sticks
// to the newest line.
func (m *ChatModel) refresh() {
	lines := m.app.VisibleMessages()
	_, viewAll := m.app.Editing.(state.ViewAllHistory)
	if viewAll {
		lines = m.app.AllMessages()
	}

	var content strings.Builder
	for _, l := range lines {
		content.WriteString(channelText(l.Text, l.Color, m.viewport.Width))
		content.WriteString("\n")
	}
	m.viewport.SetContent(strings.TrimSuffix(content.String(), "\n"))
	if !viewAll {
		m.viewport.GotoBottom()
	}
}

func (m ChatModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	rule := strings.Repeat("─", max(m.width-2, 0))

	// Header
	b.WriteString(chatTitleStyle.Render("parley") + "\n")
	b.WriteString(m.channelTabs() + "\n")
	b.WriteString(rule + "\n")

	// Messages or popup
	if _, ok := m.app.Editing.(state.NotEditing); ok {
		b.WriteString(m.viewport.View() + "\n")
	} else {
		b.WriteString(m.popupView() + "\n")
	}

	// Status
	b.WriteString(chatStatusStyle.Render(m.statusLine()) + "\n")
	if m.err != nil {
		b.WriteString(chatErrorMsgStyle.Render("Error: "+m.err.Error()) + "\n")
	} else {
		b.WriteString("\n")
	}

	// Input area
	inputStyle := chatInputBoxStyle
	if m.input.Focused() {
		inputStyle = chatInputBoxFocusedStyle
	}
	b.WriteString(inputStyle.Width(max(m.width-4, 10)).Render(m.input.View()) + "\n")

	// Help
	b.WriteString(chatHelpStyle.Render(m.help.View(keys)))

	return b.String()
}

func (m ChatModel) channelTabs() string {
	var tabs []string
	for ch := range m.app.History.Channels() {
		tabs = append(tabs, channelButton(ch.Name, ch.TextColor, ch.ID() == m.app.Selected))
	}
	return strings.Join(tabs, "")
}

func (m ChatModel) statusLine() string {
	h := m.app.History
	scope := "all channels"
	if m.app.Selected != state.AllChannels {
		if ch, ok := h.LookupChannel(m.app.Selected); ok {
			scope = ch.Name
		}
	}

	limit := "off"
	if p := h.PrunePolicy(); p.Enabled {
		limit = fmt.Sprintf("%d lines", p.Length)
	}

	return fmt.Sprintf("showing %s • %d visible • %d archived • limit %s",
		scope, h.HistoryLen(), h.BackupLen(), limit)
}

// RunChat starts the chat TUI and blocks until it exits.
func RunChat(app *state.App) error {
	var opts []tea.ProgramOption
	if app.Window.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	app.Logger().Info("Chat window opened",
		zap.Int("channels", len(app.History.ChannelNames())),
		zap.Int("visible", app.History.HistoryLen()))

	p := tea.NewProgram(NewChatModel(app), opts...)
	_, err := p.Run()

	app.Logger().Info("Chat window closed",
		zap.Int("visible", app.History.HistoryLen()),
		zap.Int("archived", app.History.BackupLen()))
	return err
}
