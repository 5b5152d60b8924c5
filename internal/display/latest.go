package display

import (
	"context"
	"sync"
	"time"

	"github.com/metinatakli/cinema-kiosk/internal/kiosk"
)

// Latest remembers the most recent view so it can be polled, e.g. over HTTP.
type Latest struct {
	mu        sync.RWMutex
	view      kiosk.View
	updatedAt time.Time
	now       func() time.Time
}

func NewLatest() *Latest {
	return &Latest{
		view: kiosk.CreditView{},
		now:  time.Now,
	}
}

func (l *Latest) Show(ctx context.Context, v kiosk.View) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.view = v
	l.updatedAt = l.now()

	return nil
}

func (l *Latest) Get() (kiosk.View, time.Time) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.view, l.updatedAt
}
