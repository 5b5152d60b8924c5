package display_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/metinatakli/cinema-kiosk/internal/display"
	"github.com/metinatakli/cinema-kiosk/internal/kiosk"
	"github.com/metinatakli/cinema-kiosk/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name string
		view kiosk.View
		want string
	}{
		{name: "credit", view: kiosk.CreditView{Credit: 7}, want: "CREDIT 7"},
		{name: "credit with basket", view: kiosk.CreditView{Credit: 7, BasketTotal: 9}, want: "CREDIT 7 | BASKET 9"},
		{name: "credit returned", view: kiosk.CreditView{Returned: 12}, want: "RETURNED 12 | CREDIT 0"},
		{name: "movie", view: kiosk.MovieView{Name: "Alien", Price: 9, Hour: 9, Minute: 5}, want: "Alien | 09:05 | PRICE 9"},
		{name: "popcorn", view: kiosk.PopcornView{Units: 3, Price: 6}, want: "POPCORN x3 | PRICE 6"},
		{
			name: "accepted ticket",
			view: kiosk.TicketResult{Accepted: true, Name: "Alien", Hour: 19, RemainingCredit: 1},
			want: "TICKET Alien | 19:00 | CREDIT 1",
		},
		{
			name: "accepted ticket with popcorn",
			view: kiosk.TicketResult{Accepted: true, Name: "Alien", Hour: 19, PopcornUnits: 2, RemainingCredit: 0},
			want: "TICKET Alien | 19:00 | POPCORN x2 | CREDIT 0",
		},
		{
			name: "rejected ticket",
			view: kiosk.TicketResult{Name: "Alien", TotalDue: 9, RemainingCredit: 1},
			want: "REJECTED Alien | DUE 9 | CREDIT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, display.StatusLine(tt.view))
		})
	}
}

func TestTerminalShow(t *testing.T) {
	var buf bytes.Buffer
	term := display.NewTerminal(&buf)

	require.NoError(t, term.Show(context.Background(), kiosk.CreditView{Credit: 3}))
	require.NoError(t, term.Show(context.Background(), kiosk.PopcornView{Units: 1, Price: 2}))

	assert.Equal(t, "CREDIT 3\r\nPOPCORN x1 | PRICE 2\r\n", buf.String())
}

func TestLatestKeepsMostRecentView(t *testing.T) {
	latest := display.NewLatest()

	v, _ := latest.Get()
	assert.Equal(t, kiosk.View(kiosk.CreditView{}), v)

	require.NoError(t, latest.Show(context.Background(), kiosk.MovieView{Name: "Heat"}))
	v, updatedAt := latest.Get()
	assert.Equal(t, kiosk.View(kiosk.MovieView{Name: "Heat"}), v)
	assert.False(t, updatedAt.IsZero())
}

func TestMultiCallsEveryDisplay(t *testing.T) {
	failing := mocks.NewRecordingDisplay()
	failing.Err = errors.New("offline")
	working := mocks.NewRecordingDisplay()

	multi := display.NewMulti(failing, working)

	err := multi.Show(context.Background(), kiosk.CreditView{Credit: 1})
	assert.ErrorIs(t, err, failing.Err)
	assert.Equal(t, 1, failing.Len())
	assert.Equal(t, 1, working.Len())
}
