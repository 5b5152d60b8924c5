package input

import (
	"time"

	"github.com/metinatakli/cinema-kiosk/internal/kiosk"
)

// Debouncer suppresses a repeat of the same event inside window. Every
// event, allowed or not, restarts the window, so a held key produces a single
// press.
type Debouncer struct {
	window time.Duration
	now    func() time.Time

	last   kiosk.ButtonEvent
	lastAt time.Time
}

func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window: window,
		now:    time.Now,
	}
}

func (d *Debouncer) Allow(evt kiosk.ButtonEvent) bool {
	now := d.now()
	repeat := evt == d.last && !d.lastAt.IsZero() && now.Sub(d.lastAt) < d.window

	d.last = evt
	d.lastAt = now

	return !repeat
}
