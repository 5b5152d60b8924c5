package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-kiosk/internal/kiosk"
)

// Poster accepts events from a source. *kiosk.Mailbox implements it.
type Poster interface {
	Post(evt kiosk.ButtonEvent) (overwritten bool)
}

// Source reads key presses and posts the decoded events one at a time.
type Source struct {
	poster   Poster
	decoder  Decoder
	debounce *Debouncer
	logger   *slog.Logger
}

func NewSource(poster Poster, debounce time.Duration, logger *slog.Logger) *Source {
	return &Source{
		poster:   poster,
		debounce: NewDebouncer(debounce),
		logger:   logger,
	}
}

// Pump reads r until EOF or until ctx is cancelled. A blocked read is not
// interrupted by cancellation; the reading goroutine exits on the next byte.
func (s *Source) Pump(ctx context.Context, r io.Reader) error {
	keys := make(chan byte)
	readErr := make(chan error, 1)

	go func() {
		br := bufio.NewReader(r)
		for {
			b, err := br.ReadByte()
			if err != nil {
				readErr <- err
				return
			}

			select {
			case keys <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case b := <-keys:
			s.handle(b)
		}
	}
}

func (s *Source) handle(b byte) {
	evt, ok := s.decoder.Feed(b)
	if !ok {
		return
	}

	if !s.debounce.Allow(evt) {
		s.logger.Debug("debounced key press", "event", evt)
		return
	}

	if s.poster.Post(evt) {
		s.logger.Debug("pending event overwritten", "event", evt)
	}
}
