package domain

import (
	"context"
	"time"
)

// Ticket is the journal record of a single issuing attempt. Rejected attempts
// are journaled too, with an empty ID.
type Ticket struct {
	ID              string    `json:"id,omitempty"`
	Accepted        bool      `json:"accepted"`
	Name            string    `json:"name"`
	Hour            int       `json:"hour"`
	Minute          int       `json:"minute"`
	PopcornUnits    int       `json:"popcorn_units"`
	TotalDue        int       `json:"total_due"`
	RemainingCredit int       `json:"remaining_credit"`
	IssuedAt        time.Time `json:"issued_at"`
}

type TicketPublisher interface {
	Publish(ctx context.Context, ticket Ticket) error
}
