package kiosk

import "sync/atomic"

// Mailbox is a single-slot hand-off between an event source and the
// controller loop. Posting overwrites whatever is pending; nothing is queued.
type Mailbox struct {
	slot  atomic.Uint64
	ready chan struct{}
}

func NewMailbox() *Mailbox {
	return &Mailbox{
		ready: make(chan struct{}, 1),
	}
}

// Post stores evt as the pending event and wakes the loop. It reports whether
// an unconsumed event was overwritten. Safe to call from any goroutine.
func (m *Mailbox) Post(evt ButtonEvent) (overwritten bool) {
	prev := m.slot.Swap(evt.pack())

	select {
	case m.ready <- struct{}{}:
	default:
	}

	return !unpack(prev).IsNone()
}

// Take returns the pending event and clears the slot in one atomic step.
// It returns None when nothing is pending.
func (m *Mailbox) Take() ButtonEvent {
	return unpack(m.slot.Swap(None.pack()))
}

// Ready is signalled after every Post. A signal may be stale by the time it
// is received, so callers must still Take and check for None.
func (m *Mailbox) Ready() <-chan struct{} {
	return m.ready
}
