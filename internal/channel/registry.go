package channel

import "iter"

// Registry is the ordered collection of channels. Channels are only ever
// added; there is no removal path, so an ID stays valid for the registry's
// lifetime.
type Registry struct {
	channels []Channel
	index    map[ID]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[ID]int)}
}

// Seed returns a registry holding the given channels with IDs assigned
// sequentially in list order, starting at zero.
func Seed(channels []NameColor) *Registry {
	r := &Registry{
		channels: make([]Channel, 0, len(channels)),
		index:    make(map[ID]int, len(channels)),
	}
	for i, nc := range channels {
		r.Add(ID(i), nc.Name, nc.Color)
	}
	return r
}

// Add registers a channel. Registering an ID that already exists is a no-op,
// even if name or color differ.
func (r *Registry) Add(id ID, name string, color Color) {
	if _, ok := r.index[id]; ok {
		return
	}
	if r.index == nil {
		r.index = make(map[ID]int)
	}
	r.index[id] = len(r.channels)
	r.channels = append(r.channels, New(id, name, color))
}

// Lookup returns a copy of the channel with the given ID.
func (r *Registry) Lookup(id ID) (Channel, bool) {
	pos, ok := r.index[id]
	if !ok {
		return Channel{}, false
	}
	return r.channels[pos], true
}

// LookupMut returns a handle through which the channel's name and color can
// be changed in place. The handle is invalidated by the next Add.
func (r *Registry) LookupMut(id ID) (*Channel, bool) {
	pos, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return &r.channels[pos], true
}

// Rename replaces the name of an existing channel. It reports false and
// leaves the registry untouched if id is unknown.
func (r *Registry) Rename(id ID, name string) bool {
	ch, ok := r.LookupMut(id)
	if !ok {
		return false
	}
	ch.Name = name
	return true
}

// SetColor replaces the text color of an existing channel.
func (r *Registry) SetColor(id ID, color Color) bool {
	ch, ok := r.LookupMut(id)
	if !ok {
		return false
	}
	ch.TextColor = color
	return true
}

// Names returns a snapshot of (name, color) pairs in registration order.
func (r *Registry) Names() []NameColor {
	out := make([]NameColor, len(r.channels))
	for i, ch := range r.channels {
		out[i] = NameColor{Name: ch.Name, Color: ch.TextColor}
	}
	return out
}

// Len returns the number of registered channels.
func (r *Registry) Len() int {
	return len(r.channels)
}

// All yields every channel in registration order.
func (r *Registry) All() iter.Seq[Channel] {
	return func(yield func(Channel) bool) {
		for _, ch := range r.channels {
			if !yield(ch) {
				return
			}
		}
	}
}
