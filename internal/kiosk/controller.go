// Package kiosk implements the coin-operated ticket controller: a state
// machine that consumes one button event per tick and produces one view.
package kiosk

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-kiosk/internal/domain"
)

// Catalog is the read side of the movie store the controller browses.
type Catalog interface {
	Size() int
	At(i int) (domain.MovieRecord, error)
	Get(id int) (domain.MovieRecord, error)
}

type Controller struct {
	catalog Catalog
	tx      TransactionState

	logger      *slog.Logger
	newTicketID func() string
	now         func() time.Time
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithTicketID(fn func() string) Option {
	return func(c *Controller) {
		c.newTicketID = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

func New(catalog Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog:     catalog,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		newTicketID: uuid.NewString,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Transaction returns a copy of the purchase in progress.
func (c *Controller) Transaction() TransactionState {
	return c.tx
}

func (c *Controller) PopcornModeActive() bool {
	return c.tx.Mode == BrowsePopcorn
}

// Step processes one event and returns the view to display. Every tick starts
// and ends in CollectingCredit; the intermediate states react to the same
// event within the tick.
func (c *Controller) Step(evt ButtonEvent) View {
	var view View

	state := CollectingCredit
	for {
		next, v := c.handle(state, evt)
		if v != nil {
			view = v
		}

		if next != state {
			c.logger.Debug("state transition", "from", state, "to", next, "event", evt)
		}

		if next == CollectingCredit {
			break
		}
		state = next
	}

	if view == nil {
		view = c.creditView()
	}

	return view
}

func (c *Controller) handle(state State, evt ButtonEvent) (State, View) {
	switch state {
	case BrowsingMovies:
		return c.browseMovies(evt)
	case BrowsingPopcorn:
		return c.browsePopcorn(evt)
	case Issuing:
		return c.issue()
	default:
		return c.collectCredit(evt)
	}
}

func (c *Controller) collectCredit(evt ButtonEvent) (State, View) {
	switch evt.Button {
	case ButtonCoin:
		if evt.Denomination <= 0 {
			c.logger.Warn("coin ignored", "denomination", evt.Denomination)
			return CollectingCredit, nil
		}
		c.tx.Credit += int(evt.Denomination)
		return CollectingCredit, nil

	case ButtonUp, ButtonDown:
		if c.catalog.Size() == 0 {
			c.logger.Debug("navigation ignored, catalog is empty")
			return CollectingCredit, nil
		}
		if c.tx.Mode == BrowsePopcorn {
			return BrowsingPopcorn, nil
		}
		return BrowsingMovies, nil

	case ButtonSelect:
		if c.catalog.Size() == 0 {
			c.logger.Debug("select ignored, catalog is empty")
			return CollectingCredit, nil
		}
		if c.tx.Mode == BrowsePopcorn {
			return Issuing, nil
		}

		movie, ok := c.selectedMovie()
		if !ok {
			return CollectingCredit, nil
		}
		c.tx.ChosenID = movie.ID
		c.tx.Mode = BrowsePopcorn
		return BrowsingPopcorn, nil

	case ButtonReturn:
		returned := c.tx.Credit
		c.tx.reset()
		if returned == 0 {
			return CollectingCredit, nil
		}

		c.logger.Info("credit returned", "credit", returned)
		return CollectingCredit, CreditView{Returned: returned}

	default:
		return CollectingCredit, nil
	}
}

func (c *Controller) browseMovies(evt ButtonEvent) (State, View) {
	size := c.catalog.Size()
	if size == 0 {
		return CollectingCredit, nil
	}

	i := c.tx.SelectedIndex % size
	switch evt.Button {
	case ButtonUp:
		i = (i + 1) % size
	case ButtonDown:
		i = (i - 1 + size) % size
	}
	c.tx.SelectedIndex = i

	movie, ok := c.selectedMovie()
	if !ok {
		return CollectingCredit, nil
	}

	return CollectingCredit, MovieView{
		Name:   movie.Name,
		Price:  movie.Price,
		Hour:   movie.Hour,
		Minute: movie.Minute,
	}
}

func (c *Controller) browsePopcorn(evt ButtonEvent) (State, View) {
	if c.catalog.Size() == 0 {
		return CollectingCredit, nil
	}

	switch evt.Button {
	case ButtonUp:
		c.tx.PopcornUnits = min(MaxPopcornUnits, c.tx.PopcornUnits+1)
	case ButtonDown:
		c.tx.PopcornUnits = max(0, c.tx.PopcornUnits-1)
	}

	movie, ok := c.chosenMovie()
	if !ok {
		return CollectingCredit, nil
	}
	c.tx.TotalDue = movie.Price + c.tx.PopcornUnits*PopcornUnitPrice

	return CollectingCredit, PopcornView{
		Units: c.tx.PopcornUnits,
		Price: c.tx.PopcornUnits * PopcornUnitPrice,
	}
}

func (c *Controller) issue() (State, View) {
	if c.catalog.Size() == 0 {
		return CollectingCredit, nil
	}

	movie, ok := c.chosenMovie()
	if !ok {
		return CollectingCredit, nil
	}

	c.tx.TotalDue = movie.Price + c.tx.PopcornUnits*PopcornUnitPrice

	result := TicketResult{
		Name:         movie.Name,
		Hour:         movie.Hour,
		Minute:       movie.Minute,
		PopcornUnits: c.tx.PopcornUnits,
		TotalDue:     c.tx.TotalDue,
	}

	if c.tx.Credit < c.tx.TotalDue {
		c.logger.Info("ticket rejected", "movie", movie.Name, "credit", c.tx.Credit, "total_due", c.tx.TotalDue)
	} else {
		c.tx.Credit -= c.tx.TotalDue
		result.Accepted = true
		result.TicketID = c.newTicketID()
		c.logger.Info("ticket issued", "ticket_id", result.TicketID, "movie", movie.Name, "total_due", c.tx.TotalDue)
	}

	result.RemainingCredit = c.tx.Credit
	c.tx.clearBasket()

	return CollectingCredit, result
}

// selectedMovie clamps the selection into the current catalog and looks it
// up. A failed lookup means the catalog shrank between calls.
func (c *Controller) selectedMovie() (domain.MovieRecord, bool) {
	size := c.catalog.Size()
	if size == 0 {
		return domain.MovieRecord{}, false
	}
	c.tx.SelectedIndex %= size

	movie, err := c.catalog.At(c.tx.SelectedIndex)
	if err != nil {
		c.logger.Warn("catalog lookup failed", "index", c.tx.SelectedIndex, "error", err)
		return domain.MovieRecord{}, false
	}

	return movie, true
}

// chosenMovie looks up the movie picked when popcorn mode was entered. The
// catalog can change between ticks, so the position is not trusted. If the
// movie was removed the basket is abandoned and credit is kept.
func (c *Controller) chosenMovie() (domain.MovieRecord, bool) {
	movie, err := c.catalog.Get(c.tx.ChosenID)
	if err != nil {
		c.logger.Warn("chosen movie left the catalog, basket cleared", "movie_id", c.tx.ChosenID, "error", err)
		c.tx.clearBasket()
		return domain.MovieRecord{}, false
	}

	return movie, true
}

func (c *Controller) creditView() CreditView {
	return CreditView{
		Credit:      c.tx.Credit,
		BasketTotal: c.tx.TotalDue,
	}
}
