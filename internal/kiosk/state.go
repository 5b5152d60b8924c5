package kiosk

type State int

const (
	CollectingCredit State = iota
	BrowsingMovies
	BrowsingPopcorn
	Issuing
)

func (s State) String() string {
	switch s {
	case CollectingCredit:
		return "collecting_credit"
	case BrowsingMovies:
		return "browsing_movies"
	case BrowsingPopcorn:
		return "browsing_popcorn"
	case Issuing:
		return "issuing"
	default:
		return "unknown"
	}
}

// BrowseMode selects what navigation buttons adjust.
type BrowseMode int

const (
	BrowseMovies BrowseMode = iota
	BrowsePopcorn
)

func (m BrowseMode) String() string {
	if m == BrowsePopcorn {
		return "popcorn"
	}

	return "movies"
}

const (
	PopcornUnitPrice = 2
	MaxPopcornUnits  = 10
)

// TransactionState is the purchase in progress. It is owned by the
// controller and only touched from its loop. ChosenID is the movie picked
// when popcorn mode was entered and is only meaningful in that mode.
type TransactionState struct {
	Credit        int
	SelectedIndex int
	PopcornUnits  int
	Mode          BrowseMode
	TotalDue      int
	ChosenID      int
}

func (t *TransactionState) reset() {
	t.Credit = 0
	t.clearBasket()
}

// clearBasket drops the popcorn selection and leaves popcorn mode, after an
// issuing attempt or when the chosen movie is gone. Credit is left alone.
func (t *TransactionState) clearBasket() {
	t.PopcornUnits = 0
	t.TotalDue = 0
	t.Mode = BrowseMovies
	t.ChosenID = 0
}
