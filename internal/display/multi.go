package display

import (
	"context"
	"errors"

	"github.com/metinatakli/cinema-kiosk/internal/kiosk"
)

// Multi forwards every view to all of its displays.
type Multi struct {
	displays []kiosk.Display
}

func NewMulti(displays ...kiosk.Display) *Multi {
	return &Multi{
		displays: displays,
	}
}

// Show calls every display even if an earlier one fails and joins the errors.
func (m *Multi) Show(ctx context.Context, v kiosk.View) error {
	var errs []error
	for _, d := range m.displays {
		if err := d.Show(ctx, v); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
