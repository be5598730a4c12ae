package state

import (
	"fmt"
	"testing"

	"github.com/eachlabs/parley/internal/channel"
	"github.com/eachlabs/parley/internal/chathistory"
	"github.com/eachlabs/parley/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	h := chathistory.FromExisting([]channel.NameColor{
		{Name: "General", Color: channel.White},
		{Name: "Combat", Color: channel.Red},
		{Name: "Whisper", Color: channel.Purple},
	}, []chathistory.Message{
		chathistory.NewMessage(0, "welcome"),
		chathistory.NewMessage(1, "You took 31 damage."),
		chathistory.NewMessage(7, "orphan"),
		chathistory.NewMessage(2, "psst"),
		chathistory.NewMessage(1, "You've given 25 damage."),
	}, chathistory.Prune{})
	return NewWithHistory(h, config.Default().Window, zaptest.NewLogger(t))
}

func lineTexts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.History = config.HistoryConfig{PruneEnabled: true, PruneLength: 4}
	cfg.Window.DefaultChannel = 1

	a := New(cfg, nil)

	assert.Equal(t, channel.ID(1), a.Selected)
	assert.Equal(t, 4, a.History.HistoryLen())
	assert.Equal(t, len(cfg.Seed)-4, a.History.BackupLen())
	assert.IsType(t, NotEditing{}, a.Editing)
}

func TestNewFromConfigWithoutPruning(t *testing.T) {
	a := New(config.Default(), nil)

	assert.Equal(t, 18, a.History.HistoryLen())
	assert.Zero(t, a.History.BackupLen())
}

func TestVisibleMessagesFiltersBySelection(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t,
		[]string{"welcome", "You took 31 damage.", "psst", "You've given 25 damage."},
		lineTexts(a.VisibleMessages()),
		"all channels, orphan skipped")

	require.True(t, a.SelectChannel(1))
	lines := a.VisibleMessages()
	assert.Equal(t, []string{"You took 31 damage.", "You've given 25 damage."}, lineTexts(lines))
	for _, l := range lines {
		assert.Equal(t, channel.Red, l.Color)
	}
}

func TestSelectChannel(t *testing.T) {
	a := newTestApp(t)

	assert.False(t, a.SelectChannel(9))
	assert.Equal(t, AllChannels, a.Selected)

	assert.True(t, a.SelectChannel(2))
	assert.True(t, a.SelectChannel(AllChannels))
	assert.Equal(t, AllChannels, a.Selected)
}

func TestCycleChannel(t *testing.T) {
	a := newTestApp(t)

	var seen []channel.ID
	for range 4 {
		a.CycleChannel(1)
		seen = append(seen, a.Selected)
	}
	assert.Equal(t, []channel.ID{1, 2, 0, 1}, seen)

	a.CycleChannel(-2)
	assert.Equal(t, channel.ID(2), a.Selected)
}

func TestSend(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   string
	}{
		{name: "plain", input: "hello", wantOK: true, want: "You: hello"},
		{name: "trimmed", input: "  hi there \n", wantOK: true, want: "You: hi there"},
		{name: "blank", input: "   ", wantOK: false},
		{name: "invalid utf8 replaced", input: "a\xffb", wantOK: true, want: "You: a\uFFFDb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			require.True(t, a.SelectChannel(2))
			before := a.History.HistoryLen()

			ok := a.Send(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, before, a.History.HistoryLen())
				return
			}

			lines := a.VisibleMessages()
			last := lines[len(lines)-1]
			assert.Equal(t, tt.want, last.Text)
			assert.Equal(t, channel.ID(2), last.Channel)
		})
	}
}

func TestApplyPruneRestoresBeforePruning(t *testing.T) {
	a := newTestApp(t)
	for i := range 10 {
		a.History.SendText(0, fmt.Sprintf("line %d", i))
	}
	total := a.History.HistoryLen()

	a.ApplyPrune(true, 3)
	assert.Equal(t, 3, a.History.HistoryLen())

	a.ApplyPrune(true, 8)
	assert.Equal(t, 8, a.History.HistoryLen(), "growing the window brings archived lines back")
	assert.Equal(t, total-8, a.History.BackupLen())

	a.ApplyPrune(false, 8)
	assert.Equal(t, total, a.History.HistoryLen())
	assert.Zero(t, a.History.BackupLen())
}

func TestApplyPruneClampsNegativeLength(t *testing.T) {
	a := newTestApp(t)
	a.ApplyPrune(true, -5)

	assert.Equal(t, chathistory.Prune{Enabled: true, Length: 0}, a.History.PrunePolicy())
	assert.Zero(t, a.History.HistoryLen())
}

func TestAllMessagesIncludesBackup(t *testing.T) {
	a := newTestApp(t)
	a.ApplyPrune(true, 1)

	assert.Equal(t, []string{"You've given 25 damage."}, lineTexts(a.VisibleMessages()))
	assert.Equal(t,
		[]string{"welcome", "You took 31 damage.", "psst", "You've given 25 damage."},
		lineTexts(a.AllMessages()))
}
