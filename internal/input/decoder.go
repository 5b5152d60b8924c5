// Package input turns raw key presses into controller button events.
package input

import "github.com/metinatakli/cinema-kiosk/internal/kiosk"

const (
	keyEsc            = 27
	keyCarriageReturn = 13
	keyLineFeed       = 10

	escCursor  = '['
	cursorUp   = 'A'
	cursorDown = 'B'
)

// Decoder maps a byte stream to button events. Arrow keys arrive as
// three-byte escape sequences, so the decoder keeps a little state between
// calls.
type Decoder struct {
	pending []byte
}

// Feed consumes one byte and returns the decoded event, if the byte completes
// one.
func (d *Decoder) Feed(b byte) (kiosk.ButtonEvent, bool) {
	if len(d.pending) > 0 {
		return d.feedEscape(b)
	}

	switch b {
	case keyEsc:
		d.pending = append(d.pending, b)
		return kiosk.None, false
	case '1':
		return kiosk.Coin(1), true
	case '2':
		return kiosk.Coin(2), true
	case '5':
		return kiosk.Coin(5), true
	case '0':
		return kiosk.Coin(10), true
	case 'r', 'R':
		return kiosk.Return, true
	case keyCarriageReturn, keyLineFeed, ' ':
		return kiosk.Select, true
	case 'k', 'K':
		return kiosk.NavigateUp, true
	case 'j', 'J':
		return kiosk.NavigateDown, true
	}

	return kiosk.None, false
}

func (d *Decoder) feedEscape(b byte) (kiosk.ButtonEvent, bool) {
	if len(d.pending) == 1 {
		if b == escCursor {
			d.pending = append(d.pending, b)
			return kiosk.None, false
		}
		d.pending = d.pending[:0]
		return d.Feed(b)
	}

	d.pending = d.pending[:0]
	switch b {
	case cursorUp:
		return kiosk.NavigateUp, true
	case cursorDown:
		return kiosk.NavigateDown, true
	}

	return kiosk.None, false
}
