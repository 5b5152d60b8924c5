package kiosk

import "context"

// View is a display payload produced once per tick.
type View interface {
	Kind() string
}

// CreditView is the idle display. Returned is set only on the tick that
// handed credit back.
type CreditView struct {
	Credit      int `json:"credit"`
	BasketTotal int `json:"basketTotal"`
	Returned    int `json:"returned,omitempty"`
}

type MovieView struct {
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
}

type PopcornView struct {
	Units int `json:"units"`
	Price int `json:"price"`
}

// TicketResult reports the outcome of an issuing attempt. Movie details are
// set for rejected attempts too so the display can say what was refused.
type TicketResult struct {
	Accepted        bool   `json:"accepted"`
	RemainingCredit int    `json:"remainingCredit"`
	TicketID        string `json:"ticketId,omitempty"`
	Name            string `json:"name"`
	Hour            int    `json:"hour"`
	Minute          int    `json:"minute"`
	PopcornUnits    int    `json:"popcornUnits"`
	TotalDue        int    `json:"totalDue"`
}

func (CreditView) Kind() string   { return "credit" }
func (MovieView) Kind() string    { return "movie" }
func (PopcornView) Kind() string  { return "popcorn" }
func (TicketResult) Kind() string { return "ticket" }

// Display renders views. Implementations must not block for long: Show is
// called from the controller loop.
type Display interface {
	Show(ctx context.Context, v View) error
}
