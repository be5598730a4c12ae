package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/eachlabs/parley/internal/channel"
	"github.com/eachlabs/parley/internal/chathistory"
	"github.com/eachlabs/parley/internal/config"
	"github.com/eachlabs/parley/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestModel(t *testing.T) ChatModel {
	t.Helper()
	h := chathistory.FromExisting([]channel.NameColor{
		{Name: "General", Color: channel.White},
		{Name: "Combat", Color: channel.Red},
	}, []chathistory.Message{
		chathistory.NewMessage(0, "welcome"),
		chathistory.NewMessage(1, "You took 31 damage."),
		chathistory.NewMessage(0, "hey"),
	}, chathistory.Prune{Length: 10})

	app := state.NewWithHistory(h, config.Default().Window, zaptest.NewLogger(t))
	m := NewChatModel(app)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m ChatModel, msg tea.Msg) ChatModel {
	t.Helper()
	model, _ := m.Update(msg)
	out, ok := model.(ChatModel)
	require.True(t, ok, "expected ChatModel, got %T", model)
	return out
}

func typeText(t *testing.T, m ChatModel, s string) ChatModel {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(t *testing.T, m ChatModel, k tea.KeyType) ChatModel {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: k})
}

func TestViewBeforeResize(t *testing.T) {
	app := state.NewWithHistory(chathistory.New(), config.Default().Window, nil)
	m := NewChatModel(app)
	assert.Equal(t, "Loading...", m.View())
}

func TestViewShowsChannelsAndMessages(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{"General", "Combat", "welcome", "You took 31 damage.", "3 visible", "limit off"} {
		assert.Contains(t, view, want)
	}
}

func TestSendMessage(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "hello there")
	m = press(t, m, tea.KeyEnter)

	assert.Empty(t, m.input.Value())
	assert.Equal(t, 4, m.App().History.HistoryLen())
	assert.Contains(t, m.View(), "You: hello there")
}

func TestSendBlankIsIgnored(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "   ")
	m = press(t, m, tea.KeyEnter)

	assert.Equal(t, 3, m.App().History.HistoryLen())
}

func TestTabCyclesChannelFilter(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyTab)

	assert.Equal(t, channel.ID(1), m.App().Selected)
	assert.Contains(t, m.viewport.View(), "You took 31 damage.")
	assert.NotContains(t, m.viewport.View(), "welcome")
	assert.Contains(t, m.View(), "showing Combat")

	m = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, state.AllChannels, m.App().Selected)
}

func TestRenamePopup(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyTab)
	m = press(t, m, tea.KeyCtrlR)

	require.IsType(t, state.EditChannelName{}, m.App().Editing)
	assert.Equal(t, "Combat", m.menu.Value())
	assert.Contains(t, m.View(), "Rename channel")

	m.menu.SetValue("")
	m = typeText(t, m, "Skirmish")
	m = press(t, m, tea.KeyEnter)

	assert.IsType(t, state.NotEditing{}, m.App().Editing)
	assert.Equal(t, []channel.NameColor{
		{Name: "General", Color: channel.White},
		{Name: "Skirmish", Color: channel.Red},
	}, m.App().History.ChannelNames())
	assert.True(t, m.input.Focused())
}

func TestRenamePopupEmptyNameKeepsPopup(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlR)
	m.menu.SetValue("")
	m = press(t, m, tea.KeyEnter)

	assert.IsType(t, state.EditChannelName{}, m.App().Editing)
	assert.ErrorIs(t, m.err, state.ErrEmptyName)
	assert.Contains(t, m.View(), "Error:")

	m = press(t, m, tea.KeyEsc)
	assert.IsType(t, state.NotEditing{}, m.App().Editing)
	assert.Nil(t, m.err)
}

func TestColorPopup(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlP)

	require.IsType(t, state.EditChannelColor{}, m.App().Editing)
	assert.Equal(t, "#ffffffff", m.menu.Value())

	m.menu.SetValue("#00ff00")
	m = press(t, m, tea.KeyEnter)

	ch, ok := m.App().History.LookupChannel(0)
	require.True(t, ok)
	assert.Equal(t, "#00ff00", ch.TextColor.Hex())
}

func TestHistoryLengthPopup(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlL)

	require.IsType(t, state.EditHistoryLength{}, m.App().Editing)
	assert.Equal(t, "10", m.menu.Value())
	assert.False(t, m.limitDraft)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, m.limitDraft)
	assert.Contains(t, m.View(), "[x]")

	m.menu.SetValue("")
	m = typeText(t, m, "a2")
	assert.Empty(t, m.menu.Value(), "non-digits are rejected")
	m = typeText(t, m, "2")
	m = press(t, m, tea.KeyEnter)

	assert.IsType(t, state.NotEditing{}, m.App().Editing)
	assert.Equal(t, chathistory.Prune{Enabled: true, Length: 2}, m.App().History.PrunePolicy())
	assert.Equal(t, 2, m.App().History.HistoryLen())
	assert.Equal(t, 1, m.App().History.BackupLen())
	assert.Contains(t, m.View(), "limit 2 lines")
}

func TestHistoryLengthCancel(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyCtrlL)
	m = press(t, m, tea.KeyCtrlT)
	m = press(t, m, tea.KeyEsc)

	assert.IsType(t, state.NotEditing{}, m.App().Editing)
	assert.False(t, m.limitDraft)
	assert.Equal(t, chathistory.Prune{Length: 10}, m.App().History.PrunePolicy())
}

func TestViewAllShowsArchive(t *testing.T) {
	m := newTestModel(t)
	m.App().ApplyPrune(true, 1)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.NotContains(t, m.viewport.View(), "welcome")

	m = press(t, m, tea.KeyCtrlO)
	require.IsType(t, state.ViewAllHistory{}, m.App().Editing)
	view := m.View()
	assert.Contains(t, view, "Examine Chat")
	assert.Contains(t, view, "welcome")

	m = press(t, m, tea.KeyEsc)
	assert.IsType(t, state.NotEditing{}, m.App().Editing)
	assert.NotContains(t, m.viewport.View(), "welcome")
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// esc inside a popup closes it instead of quitting
	m = press(t, m, tea.KeyCtrlL)
	m = press(t, m, tea.KeyEsc)
	assert.IsType(t, state.NotEditing{}, m.App().Editing)
	assert.True(t, m.input.Focused())
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "", want: 0},
		{in: " 12 ", want: 12},
		{in: "0", want: 0},
		{in: "x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLength(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusLineUnknownSelection(t *testing.T) {
	m := newTestModel(t)
	m.App().Selected = 7
	assert.True(t, strings.HasPrefix(m.statusLine(), "showing all channels"))
}
