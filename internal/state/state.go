// Package state holds the top-level application state. App exclusively owns
// the chat history; the presentation layer receives it by pointer and drives
// every mutation through it from a single goroutine.
package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eachlabs/parley/internal/channel"
	"github.com/eachlabs/parley/internal/chathistory"
	"github.com/eachlabs/parley/internal/config"
	"go.uber.org/zap"
)

// AllChannels is the selection that shows messages from every channel. It is
// a presentation convention; the history itself gives ID 0 no meaning.
const AllChannels channel.ID = 0

// SelfPrefix is prepended to messages typed by the local user.
const SelfPrefix = "You: "

var (
	ErrUnknownChannel = errors.New("unknown channel")
	ErrEmptyName      = errors.New("channel name is empty")
	ErrNotEditing     = errors.New("no matching popup is open")
	ErrInvalidColor   = errors.New("invalid color")
)

// Line is a message resolved for display.
type Line struct {
	Channel channel.ID
	Color   channel.Color
	Text    string
}

// App is the application state.
type App struct {
	History  *chathistory.History
	Selected channel.ID
	Editing  Editing
	Window   config.WindowConfig

	logger *zap.Logger
}

// New builds the state from configuration: channels and seed messages from
// cfg, and the configured prune policy applied once.
func New(cfg *config.Config, logger *zap.Logger) *App {
	h := chathistory.FromExisting(cfg.ChannelList(), cfg.SeedMessages(), cfg.PrunePolicy())
	a := NewWithHistory(h, cfg.Window, logger)
	if !a.SelectChannel(channel.ID(cfg.Window.DefaultChannel)) {
		a.logger.Warn("Default channel is not registered",
			zap.Int("channel", cfg.Window.DefaultChannel))
	}

	p := h.PrunePolicy()
	a.ApplyPrune(p.Enabled, p.Length)
	return a
}

// NewWithHistory wraps an existing history.
func NewWithHistory(h *chathistory.History, window config.WindowConfig, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		History:  h,
		Selected: AllChannels,
		Editing:  NotEditing{},
		Window:   window,
		logger:   logger,
	}
}

// Logger returns the application logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Send validates text once at the boundary and appends it to the selected
// channel. Invalid UTF-8 is replaced, surrounding space trimmed. It reports
// false for blank input.
func (a *App) Send(text string) bool {
	text = strings.TrimSpace(strings.ToValidUTF8(text, "\uFFFD"))
	if text == "" {
		return false
	}
	a.History.SendText(a.Selected, SelfPrefix+text)
	a.logger.Debug("Message sent",
		zap.Stringer("channel", a.Selected),
		zap.Int("visible", a.History.HistoryLen()))
	return true
}

// SelectChannel sets the channel filter. AllChannels is always accepted;
// other IDs must be registered.
func (a *App) SelectChannel(id channel.ID) bool {
	if id != AllChannels {
		if _, ok := a.History.LookupChannel(id); !ok {
			return false
		}
	}
	a.Selected = id
	return true
}

// CycleChannel moves the selection by delta positions in registration
// order, wrapping around.
func (a *App) CycleChannel(delta int) {
	var ids []channel.ID
	for ch := range a.History.Channels() {
		ids = append(ids, ch.ID())
	}
	if len(ids) == 0 {
		return
	}

	pos := 0
	for i, id := range ids {
		if id == a.Selected {
			pos = i
			break
		}
	}
	pos = ((pos+delta)%len(ids) + len(ids)) % len(ids)
	a.Selected = ids[pos]
}

// ApplyPrune replaces the prune policy and re-applies it from the full
// history: restore first, then prune if enabled. Negative lengths are
// clamped to zero.
func (a *App) ApplyPrune(enabled bool, length int) {
	length = max(length, 0)

	a.History.SetPrune(enabled, length)
	restored := a.History.Restore()
	var pruned int
	if enabled {
		pruned = a.History.Prune()
	}

	a.logger.Info("Prune policy applied",
		zap.Bool("enabled", enabled),
		zap.Int("length", length),
		zap.Int("restored", restored),
		zap.Int("pruned", pruned))
}

// VisibleMessages returns the visible log filtered by the selected channel.
// Messages tagged with an unregistered channel are skipped.
func (a *App) VisibleMessages() []Line {
	var out []Line
	for m := range a.History.IterHistory() {
		if a.Selected != AllChannels && m.ChannelID != a.Selected {
			continue
		}
		if l, ok := a.resolve(m); ok {
			out = append(out, l)
		}
	}
	return out
}

// AllMessages returns the backup followed by the visible log, across all
// channels.
func (a *App) AllMessages() []Line {
	var out []Line
	for m := range a.History.IterAll() {
		if l, ok := a.resolve(m); ok {
			out = append(out, l)
		}
	}
	return out
}

func (a *App) resolve(m chathistory.Message) (Line, bool) {
	ch, ok := a.History.LookupChannel(m.ChannelID)
	if !ok {
		return Line{}, false
	}
	return Line{Channel: m.ChannelID, Color: ch.TextColor, Text: m.Text()}, true
}

func unknownChannel(id channel.ID) error {
	return fmt.Errorf("channel %d: %w", id, ErrUnknownChannel)
}
