// Package journal records the outcome of every issuing attempt to an
// external sink without blocking the controller loop.
package journal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-kiosk/internal/domain"
	"github.com/metinatakli/cinema-kiosk/internal/kiosk"
)

const (
	publishTimeout = 5 * time.Second
	drainTimeout   = 10 * time.Second
)

var ErrJournalFull = errors.New("ticket journal buffer is full")

// Journal is a kiosk.Display that forwards ticket results to a publisher.
// Other views are ignored.
type Journal struct {
	publisher domain.TicketPublisher
	tickets   chan domain.Ticket
	logger    *slog.Logger
	now       func() time.Time
}

func New(publisher domain.TicketPublisher, buffer int, logger *slog.Logger) *Journal {
	return &Journal{
		publisher: publisher,
		tickets:   make(chan domain.Ticket, buffer),
		logger:    logger,
		now:       time.Now,
	}
}

func (j *Journal) Show(ctx context.Context, v kiosk.View) error {
	result, ok := v.(kiosk.TicketResult)
	if !ok {
		return nil
	}

	ticket := toTicket(result, j.now())

	select {
	case j.tickets <- ticket:
		return nil
	default:
		return ErrJournalFull
	}
}

// Run publishes queued tickets until ctx is cancelled, then flushes whatever
// is still buffered.
func (j *Journal) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			j.drain()
			return
		case ticket := <-j.tickets:
			j.publish(ctx, ticket)
		}
	}
}

func (j *Journal) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	for {
		select {
		case ticket := <-j.tickets:
			j.publish(ctx, ticket)
		default:
			return
		}
	}
}

func (j *Journal) publish(ctx context.Context, ticket domain.Ticket) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := j.publisher.Publish(ctx, ticket)
	if err != nil {
		j.logger.Error("failed to publish ticket", "ticket_id", ticket.ID, "accepted", ticket.Accepted, "error", err)
	}
}

func toTicket(result kiosk.TicketResult, issuedAt time.Time) domain.Ticket {
	return domain.Ticket{
		ID:              result.TicketID,
		Accepted:        result.Accepted,
		Name:            result.Name,
		Hour:            result.Hour,
		Minute:          result.Minute,
		PopcornUnits:    result.PopcornUnits,
		TotalDue:        result.TotalDue,
		RemainingCredit: result.RemainingCredit,
		IssuedAt:        issuedAt.UTC(),
	}
}

// Discard drops every ticket.
type Discard struct{}

func (Discard) Publish(ctx context.Context, ticket domain.Ticket) error { return nil }
