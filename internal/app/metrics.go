package app

import (
	"context"
	"errors"

	"github.com/metinatakli/cinema-kiosk/internal/kiosk"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// kioskMetrics counts posted events and issuing outcomes. It is a
// kiosk.Display so it sees every ticket result the controller produces.
type kioskMetrics struct {
	eventsPosted      metric.Int64Counter
	eventsOverwritten metric.Int64Counter
	ticketsIssued     metric.Int64Counter
	ticketsRejected   metric.Int64Counter
	totalDue          metric.Int64Histogram
	creditReturned    metric.Int64Counter
}

func newKioskMetrics(meter metric.Meter) (*kioskMetrics, error) {
	var m kioskMetrics
	var errs [6]error

	m.eventsPosted, errs[0] = meter.Int64Counter("kiosk.events.posted",
		metric.WithDescription("Button events posted to the controller mailbox"))
	m.eventsOverwritten, errs[1] = meter.Int64Counter("kiosk.events.overwritten",
		metric.WithDescription("Pending events lost because a newer event was posted first"))
	m.ticketsIssued, errs[2] = meter.Int64Counter("kiosk.tickets.issued",
		metric.WithDescription("Accepted ticket purchases"))
	m.ticketsRejected, errs[3] = meter.Int64Counter("kiosk.tickets.rejected",
		metric.WithDescription("Ticket purchases rejected for insufficient credit"))
	m.totalDue, errs[4] = meter.Int64Histogram("kiosk.ticket.total_due",
		metric.WithDescription("Amount due per accepted ticket"),
		metric.WithUnit("{unit}"))
	m.creditReturned, errs[5] = meter.Int64Counter("kiosk.credit.returned",
		metric.WithDescription("Credit handed back by the return button"),
		metric.WithUnit("{unit}"))

	err := errors.Join(errs[:]...)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (m *kioskMetrics) eventPosted(ctx context.Context, evt kiosk.ButtonEvent, overwritten bool) {
	attrs := metric.WithAttributes(attribute.String("button", evt.Button.String()))

	m.eventsPosted.Add(ctx, 1, attrs)
	if overwritten {
		m.eventsOverwritten.Add(ctx, 1)
	}
}

func (m *kioskMetrics) Show(ctx context.Context, v kiosk.View) error {
	if credit, ok := v.(kiosk.CreditView); ok {
		if credit.Returned > 0 {
			m.creditReturned.Add(ctx, int64(credit.Returned))
		}
		return nil
	}

	result, ok := v.(kiosk.TicketResult)
	if !ok {
		return nil
	}

	attrs := metric.WithAttributes(attribute.String("movie", result.Name))

	if result.Accepted {
		m.ticketsIssued.Add(ctx, 1, attrs)
		m.totalDue.Record(ctx, int64(result.TotalDue), attrs)
	} else {
		m.ticketsRejected.Add(ctx, 1, attrs)
	}

	return nil
}
