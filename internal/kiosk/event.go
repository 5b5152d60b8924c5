package kiosk

import (
	"fmt"
	"math"

	"github.com/metinatakli/cinema-kiosk/internal/domain"
)

type Button uint8

const (
	ButtonNone Button = iota
	ButtonCoin
	ButtonReturn
	ButtonSelect
	ButtonUp
	ButtonDown
)

var buttonNames = map[Button]string{
	ButtonNone:   "none",
	ButtonCoin:   "coin",
	ButtonReturn: "return",
	ButtonSelect: "select",
	ButtonUp:     "up",
	ButtonDown:   "down",
}

func (b Button) String() string {
	name, ok := buttonNames[b]
	if !ok {
		return fmt.Sprintf("button(%d)", uint8(b))
	}

	return name
}

// ButtonEvent is a single press delivered by an event source. Denomination is
// only meaningful for coin presses. It is 32 bits wide so an event always fits
// in one mailbox word.
type ButtonEvent struct {
	Button       Button
	Denomination int32
}

var (
	None         = ButtonEvent{Button: ButtonNone}
	Return       = ButtonEvent{Button: ButtonReturn}
	Select       = ButtonEvent{Button: ButtonSelect}
	NavigateUp   = ButtonEvent{Button: ButtonUp}
	NavigateDown = ButtonEvent{Button: ButtonDown}
)

func Coin(denomination int32) ButtonEvent {
	return ButtonEvent{Button: ButtonCoin, Denomination: denomination}
}

func (e ButtonEvent) IsNone() bool {
	return e.Button == ButtonNone
}

func (e ButtonEvent) String() string {
	if e.Button == ButtonCoin {
		return fmt.Sprintf("coin(%d)", e.Denomination)
	}

	return e.Button.String()
}

// ParseButton builds an event from its wire name.
func ParseButton(name string, denomination int) (ButtonEvent, error) {
	for b, n := range buttonNames {
		if n != name || b == ButtonNone {
			continue
		}

		if b == ButtonCoin {
			if denomination <= 0 || denomination > math.MaxInt32 {
				return None, fmt.Errorf("coin denomination %d: %w", denomination, domain.ErrInvalidButton)
			}
			return Coin(int32(denomination)), nil
		}

		return ButtonEvent{Button: b}, nil
	}

	return None, fmt.Errorf("%q: %w", name, domain.ErrInvalidButton)
}

// pack encodes the event into a single word: button in the low byte,
// denomination above it.
func (e ButtonEvent) pack() uint64 {
	return uint64(e.Button) | uint64(uint32(e.Denomination))<<8
}

func unpack(w uint64) ButtonEvent {
	return ButtonEvent{
		Button:       Button(w & 0xff),
		Denomination: int32(uint32(w >> 8)),
	}
}
