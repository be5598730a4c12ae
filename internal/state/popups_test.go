package state

import (
	"testing"

	"github.com/eachlabs/parley/internal/channel"
	"github.com/eachlabs/parley/internal/chathistory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameFlow(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.BeginRename(1))
	assert.Equal(t, EditChannelName{ID: 1, Name: "Combat"}, a.Editing)

	require.NoError(t, a.CommitRename("  Skirmish "))
	assert.IsType(t, NotEditing{}, a.Editing)

	ch, ok := a.History.LookupChannel(1)
	require.True(t, ok)
	assert.Equal(t, "Skirmish", ch.Name)
	assert.Equal(t, channel.Red, ch.TextColor)
}

func TestRenameErrors(t *testing.T) {
	a := newTestApp(t)

	assert.ErrorIs(t, a.BeginRename(99), ErrUnknownChannel)
	assert.IsType(t, NotEditing{}, a.Editing)

	assert.ErrorIs(t, a.CommitRename("x"), ErrNotEditing)

	require.NoError(t, a.BeginRename(0))
	before := a.History.ChannelNames()
	assert.ErrorIs(t, a.CommitRename("   "), ErrEmptyName)
	assert.Equal(t, before, a.History.ChannelNames())
	assert.IsType(t, EditChannelName{}, a.Editing, "popup stays open on error")
}

func TestColorFlow(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.BeginColor(2))
	assert.Equal(t, EditChannelColor{ID: 2, Original: channel.Purple}, a.Editing)

	err := a.CommitColor("purple")
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.IsType(t, EditChannelColor{}, a.Editing)

	require.NoError(t, a.CommitColor("#00ff00"))
	ch, _ := a.History.LookupChannel(2)
	assert.Equal(t, "#00ff00", ch.TextColor.Hex())
	assert.IsType(t, NotEditing{}, a.Editing)

	assert.ErrorIs(t, a.BeginColor(42), ErrUnknownChannel)
	assert.ErrorIs(t, a.CommitColor("#000000"), ErrNotEditing)
}

func TestHistoryLengthFlow(t *testing.T) {
	a := newTestApp(t)

	assert.ErrorIs(t, a.CommitHistoryLength(true, 2), ErrNotEditing)
	assert.Equal(t, 5, a.History.HistoryLen(), "policy untouched without popup")

	a.BeginHistoryLength()
	assert.Equal(t, EditHistoryLength{Current: chathistory.Prune{}}, a.Editing)

	require.NoError(t, a.CommitHistoryLength(true, 2))
	assert.Equal(t, 2, a.History.HistoryLen())
	assert.Equal(t, 3, a.History.BackupLen())
	assert.IsType(t, NotEditing{}, a.Editing)
}

func TestCancelEditingLeavesHistory(t *testing.T) {
	a := newTestApp(t)

	a.BeginHistoryLength()
	a.CancelEditing()
	assert.IsType(t, NotEditing{}, a.Editing)
	assert.Equal(t, chathistory.Prune{}, a.History.PrunePolicy())

	a.BeginViewAll()
	assert.IsType(t, ViewAllHistory{}, a.Editing)
}
