package state

import (
	"github.com/eachlabs/parley/internal/channel"
	"github.com/eachlabs/parley/internal/chathistory"
)

// Editing is the popup currently open over the chat window. Exactly one
// variant is active at a time:
//
//	NotEditing, EditHistoryLength, EditChannelName, EditChannelColor, ViewAllHistory
type Editing interface {
	editing()
}

// NotEditing means no popup is open.
type NotEditing struct{}

// EditHistoryLength is the "history length" popup. Current is the policy in
// force when the popup was opened; cancelling leaves it untouched.
type EditHistoryLength struct {
	Current chathistory.Prune
}

// EditChannelName is the rename popup for one channel. Name is the name at
// the time the popup was opened.
type EditChannelName struct {
	ID   channel.ID
	Name string
}

// EditChannelColor is the text color popup for one channel. Original is the
// color at the time the popup was opened.
type EditChannelColor struct {
	ID       channel.ID
	Original channel.Color
}

// ViewAllHistory shows the backup and the visible log together.
type ViewAllHistory struct{}

func (NotEditing) editing()        {}
func (EditHistoryLength) editing() {}
func (EditChannelName) editing()   {}
func (EditChannelColor) editing()  {}
func (ViewAllHistory) editing()    {}
