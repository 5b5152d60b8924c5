package kiosk

import (
	"math"
	"testing"

	"github.com/metinatakli/cinema-kiosk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseButton(t *testing.T) {
	tests := []struct {
		name         string
		button       string
		denomination int
		want         ButtonEvent
		wantErr      bool
	}{
		{name: "coin", button: "coin", denomination: 5, want: Coin(5)},
		{name: "return", button: "return", want: Return},
		{name: "select ignores denomination", button: "select", denomination: 2, want: Select},
		{name: "up", button: "up", want: NavigateUp},
		{name: "down", button: "down", want: NavigateDown},
		{name: "coin without denomination", button: "coin", wantErr: true},
		{name: "negative coin", button: "coin", denomination: -5, wantErr: true},
		{name: "none is not a button", button: "none", wantErr: true},
		{name: "unknown", button: "eject", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseButton(tt.button, tt.denomination)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidButton)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseButtonRejectsWideDenomination(t *testing.T) {
	wide := math.MaxInt32
	wide++

	_, err := ParseButton("coin", wide)
	assert.ErrorIs(t, err, domain.ErrInvalidButton)

	evt, err := ParseButton("coin", math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, evt, unpack(evt.pack()))
}

func TestButtonEventString(t *testing.T) {
	assert.Equal(t, "coin(2)", Coin(2).String())
	assert.Equal(t, "select", Select.String())
	assert.Equal(t, "button(99)", Button(99).String())
}
