package mocks

import (
	"context"
	"sync"

	"github.com/metinatakli/cinema-kiosk/internal/kiosk"
)

// RecordingDisplay keeps every view it is shown. Err, when set, is returned
// from Show after the view has been recorded.
type RecordingDisplay struct {
	mu    sync.RWMutex
	views []kiosk.View
	Err   error
}

func NewRecordingDisplay() *RecordingDisplay {
	return &RecordingDisplay{
		views: make([]kiosk.View, 0),
	}
}

func (d *RecordingDisplay) Show(ctx context.Context, v kiosk.View) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.views = append(d.views, v)

	return d.Err
}

// Views returns a copy of all recorded views
func (d *RecordingDisplay) Views() []kiosk.View {
	d.mu.RLock()
	defer d.mu.RUnlock()

	views := make([]kiosk.View, len(d.views))
	copy(views, d.views)
	return views
}

func (d *RecordingDisplay) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.views)
}
