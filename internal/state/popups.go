package state

import (
	"fmt"
	"strings"

	"github.com/eachlabs/parley/internal/channel"
	"go.uber.org/zap"
)

// BeginRename opens the rename popup for a channel.
func (a *App) BeginRename(id channel.ID) error {
	ch, ok := a.History.LookupChannel(id)
	if !ok {
		return unknownChannel(id)
	}
	a.Editing = EditChannelName{ID: id, Name: ch.Name}
	return nil
}

// CommitRename renames the channel whose rename popup is open and closes the
// popup. On error the popup stays open.
func (a *App) CommitRename(name string) error {
	e, ok := a.Editing.(EditChannelName)
	if !ok {
		return fmt.Errorf("rename: %w", ErrNotEditing)
	}

	name = strings.TrimSpace(strings.ToValidUTF8(name, "\uFFFD"))
	if name == "" {
		return ErrEmptyName
	}
	if !a.History.RenameChannel(e.ID, name) {
		return unknownChannel(e.ID)
	}

	a.logger.Info("Channel renamed",
		zap.Stringer("channel", e.ID),
		zap.String("from", e.Name),
		zap.String("to", name))
	a.Editing = NotEditing{}
	return nil
}

// BeginColor opens the text color popup for a channel.
func (a *App) BeginColor(id channel.ID) error {
	ch, ok := a.History.LookupChannel(id)
	if !ok {
		return unknownChannel(id)
	}
	a.Editing = EditChannelColor{ID: id, Original: ch.TextColor}
	return nil
}

// CommitColor parses hex and sets it as the text color of the channel whose
// color popup is open.
func (a *App) CommitColor(hex string) error {
	e, ok := a.Editing.(EditChannelColor)
	if !ok {
		return fmt.Errorf("recolor: %w", ErrNotEditing)
	}

	c, err := channel.ParseColor(hex)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidColor, err)
	}
	ch, ok := a.History.LookupChannelMut(e.ID)
	if !ok {
		return unknownChannel(e.ID)
	}
	ch.TextColor = c

	a.logger.Info("Channel recolored",
		zap.Stringer("channel", e.ID),
		zap.String("color", c.HexAlpha()))
	a.Editing = NotEditing{}
	return nil
}

// BeginHistoryLength opens the history length popup.
func (a *App) BeginHistoryLength() {
	a.Editing = EditHistoryLength{Current: a.History.PrunePolicy()}
}

// CommitHistoryLength applies a new prune policy from the history length
// popup and closes it.
func (a *App) CommitHistoryLength(enabled bool, length int) error {
	if _, ok := a.Editing.(EditHistoryLength); !ok {
		return fmt.Errorf("history length: %w", ErrNotEditing)
	}
	a.ApplyPrune(enabled, length)
	a.Editing = NotEditing{}
	return nil
}

// BeginViewAll opens the full history view.
func (a *App) BeginViewAll() {
	a.Editing = ViewAllHistory{}
}

// CancelEditing closes any open popup without applying it.
func (a *App) CancelEditing() {
	a.Editing = NotEditing{}
}
