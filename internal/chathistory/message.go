// Package chathistory keeps the ordered, channel-tagged chat log and the
// reversible window that bounds how much of it is visible.
//
// The full history is always the backup (archive) followed by the visible
// log. Prune moves the oldest excess messages from the log to the end of the
// backup; Restore moves everything back. Messages are appended, relocated and
// iterated but never modified.
package chathistory

import (
	"github.com/eachlabs/parley/internal/channel"
)

// Message is a single chat line. Payload holds UTF-8 text by convention;
// the history stores it as opaque bytes and never inspects it. Payloads
// yielded by a History are shared and must not be modified.
type Message struct {
	ChannelID channel.ID
	Payload   []byte
}

// NewMessage returns a message carrying text.
func NewMessage(id channel.ID, text string) Message {
	return Message{ChannelID: id, Payload: []byte(text)}
}

// Text returns the payload as a string.
func (m Message) Text() string {
	return string(m.Payload)
}

func (m Message) clone() Message {
	return Message{ChannelID: m.ChannelID, Payload: append([]byte(nil), m.Payload...)}
}
