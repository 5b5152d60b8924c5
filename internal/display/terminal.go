// Package display renders controller views for the kiosk's outputs.
package display

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/metinatakli/cinema-kiosk/internal/kiosk"
)

// Terminal writes one status line per view.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) Show(ctx context.Context, v kiosk.View) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := fmt.Fprintf(t.w, "%s\r\n", StatusLine(v))
	return err
}

// StatusLine formats a view as a single line of text.
func StatusLine(v kiosk.View) string {
	switch v := v.(type) {
	case kiosk.CreditView:
		if v.Returned > 0 {
			return fmt.Sprintf("RETURNED %d | CREDIT %d", v.Returned, v.Credit)
		}
		if v.BasketTotal > 0 {
			return fmt.Sprintf("CREDIT %d | BASKET %d", v.Credit, v.BasketTotal)
		}
		return fmt.Sprintf("CREDIT %d", v.Credit)

	case kiosk.MovieView:
		return fmt.Sprintf("%s | %02d:%02d | PRICE %d", v.Name, v.Hour, v.Minute, v.Price)

	case kiosk.PopcornView:
		return fmt.Sprintf("POPCORN x%d | PRICE %d", v.Units, v.Price)

	case kiosk.TicketResult:
		if !v.Accepted {
			return fmt.Sprintf("REJECTED %s | DUE %d | CREDIT %d", v.Name, v.TotalDue, v.RemainingCredit)
		}
		line := fmt.Sprintf("TICKET %s | %02d:%02d", v.Name, v.Hour, v.Minute)
		if v.PopcornUnits > 0 {
			line += fmt.Sprintf(" | POPCORN x%d", v.PopcornUnits)
		}
		return line + fmt.Sprintf(" | CREDIT %d", v.RemainingCredit)

	default:
		return fmt.Sprintf("unknown view %q", v.Kind())
	}
}
