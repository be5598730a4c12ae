// Package channel defines the named, colored chat channels that messages are
// tagged with, and the registry that holds them in registration order.
package channel

import "strconv"

// ID addresses a channel for its whole lifetime. IDs are dense indexes
// assigned at registration and are never reused.
type ID int

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Channel is a named, colored category of messages.
type Channel struct {
	id ID

	Name      string
	TextColor Color
}

// New returns a channel with the given identity.
func New(id ID, name string, color Color) Channel {
	return Channel{id: id, Name: name, TextColor: color}
}

// ID returns the channel's identifier. It cannot be changed once the channel
// is registered.
func (c Channel) ID() ID {
	return c.id
}

// NameColor is a (name, color) pair as enumerated by Registry.Names and as
// accepted when seeding a registry.
type NameColor struct {
	Name  string
	Color Color
}
