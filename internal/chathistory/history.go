package chathistory

import (
	"iter"
	"slices"

	"github.com/eachlabs/parley/internal/channel"
)

// History is the chat history aggregate: the channel registry, the visible
// log, the backup of pruned messages, and the prune policy.
//
// A History is not safe for concurrent use. It is owned by a single caller
// that drives every mutation from one goroutine.
type History struct {
	channels *channel.Registry
	backup   []Message
	log      []Message
	prune    Prune
}

// New returns an empty history with pruning disabled.
func New() *History {
	return &History{channels: channel.NewRegistry()}
}

// FromExisting seeds a history. Channels get IDs 0..n-1 in list order and
// messages become the visible log in the order given. The backup starts
// empty whatever the policy says; pruning only happens on an explicit Prune.
func FromExisting(channels []channel.NameColor, messages []Message, prune Prune) *History {
	log := make([]Message, len(messages))
	for i, m := range messages {
		log[i] = m.clone()
	}
	return &History{
		channels: channel.Seed(channels),
		log:      log,
		prune:    prune,
	}
}

// AddChannel registers a channel. Re-registering an existing ID is a no-op.
func (h *History) AddChannel(id channel.ID, name string, color channel.Color) {
	h.channels.Add(id, name, color)
}

// LookupChannel returns a copy of the channel.
func (h *History) LookupChannel(id channel.ID) (channel.Channel, bool) {
	return h.channels.Lookup(id)
}

// LookupChannelMut returns an in-place handle to the channel.
func (h *History) LookupChannelMut(id channel.ID) (*channel.Channel, bool) {
	return h.channels.LookupMut(id)
}

// RenameChannel renames a channel, reporting false if it does not exist.
func (h *History) RenameChannel(id channel.ID, name string) bool {
	return h.channels.Rename(id, name)
}

// SetChannelColor recolors a channel, reporting false if it does not exist.
func (h *History) SetChannelColor(id channel.ID, color channel.Color) bool {
	return h.channels.SetColor(id, color)
}

// ChannelNames returns (name, color) pairs in registration order.
func (h *History) ChannelNames() []channel.NameColor {
	return h.channels.Names()
}

// Channels yields every registered channel in registration order.
func (h *History) Channels() iter.Seq[channel.Channel] {
	return h.channels.All()
}

// SendMessage appends a message to the visible log. The channel ID is not
// checked against the registry. The payload is copied.
func (h *History) SendMessage(id channel.ID, payload []byte) {
	h.log = append(h.log, Message{ChannelID: id, Payload: slices.Clone(payload)})
}

// SendText appends a text message to the visible log.
func (h *History) SendText(id channel.ID, text string) {
	h.log = append(h.log, NewMessage(id, text))
}

// IterHistory yields the visible log, oldest first.
func (h *History) IterHistory() iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for _, m := range h.log {
			if !yield(m) {
				return
			}
		}
	}
}

// IterBackup yields the pruned messages, oldest first.
func (h *History) IterBackup() iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for _, m := range h.backup {
			if !yield(m) {
				return
			}
		}
	}
}

// IterAll yields the complete history: the backup followed by the log.
func (h *History) IterAll() iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for m := range h.IterBackup() {
			if !yield(m) {
				return
			}
		}
		for m := range h.IterHistory() {
			if !yield(m) {
				return
			}
		}
	}
}

// HistoryLen returns the number of visible messages.
func (h *History) HistoryLen() int {
	return len(h.log)
}

// BackupLen returns the number of pruned messages.
func (h *History) BackupLen() int {
	return len(h.backup)
}
