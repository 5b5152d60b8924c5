package app

import (
	"net/http"

	"github.com/metinatakli/cinema-kiosk/api"
	"github.com/metinatakli/cinema-kiosk/internal/kiosk"
)

// PressButton posts a remote button press to the controller mailbox. The
// press is accepted once posted; its effect shows up on the next view.
func (app *Application) PressButton(w http.ResponseWriter, r *http.Request) {
	var input api.ButtonRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	evt, err := kiosk.ParseButton(input.Button, input.Denomination)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	overwritten := app.postEvent(evt)
	if overwritten {
		contextGetLogger(r, app.logger).Warn("pending button event overwritten", "event", evt.String())
	}

	resp := api.ButtonResponse{
		Accepted:    true,
		Overwritten: overwritten,
	}

	err = app.writeJSON(w, http.StatusAccepted, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
