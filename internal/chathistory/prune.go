package chathistory

// Prune is the eviction policy for the visible log.
type Prune struct {
	Enabled bool `toml:"enabled" json:"enabled"`
	Length  int  `toml:"length" json:"length"`
}

// window returns the number of messages the policy keeps visible. Negative
// lengths are a caller error and keep nothing.
func (p Prune) window() int {
	return max(p.Length, 0)
}

// SetPrune replaces the policy. It never moves messages; callers apply a new
// policy by calling Restore and then Prune.
func (h *History) SetPrune(enabled bool, length int) {
	h.prune = Prune{Enabled: enabled, Length: length}
}

// PrunePolicy returns the current policy.
func (h *History) PrunePolicy() Prune {
	return h.prune
}

// Prune moves the oldest messages that exceed the policy length from the log
// to the end of the backup and reports how many were moved. It does nothing
// when the policy is disabled or the log already fits.
func (h *History) Prune() int {
	if !h.prune.Enabled {
		return 0
	}
	excess := len(h.log) - h.prune.window()
	if excess <= 0 {
		return 0
	}

	h.backup = append(h.backup, h.log[:excess]...)

	// Compact in place so the evicted prefix is not retained.
	n := copy(h.log, h.log[excess:])
	clear(h.log[n:])
	h.log = h.log[:n]

	return excess
}

// Restore moves the whole backup back in front of the log and reports how
// many messages were moved. It ignores the policy and is a no-op when the
// backup is empty.
func (h *History) Restore() int {
	moved := len(h.backup)
	if moved == 0 {
		return 0
	}

	merged := make([]Message, 0, moved+len(h.log))
	merged = append(merged, h.backup...)
	merged = append(merged, h.log...)
	h.log = merged
	h.backup = nil

	return moved
}
