package app

import (
	"net/http"

	"github.com/metinatakli/cinema-kiosk/api"
)

func (app *Application) GetDisplay(w http.ResponseWriter, r *http.Request) {
	view, updatedAt := app.latest.Get()

	resp := api.DisplayResponse{
		Kind:      view.Kind(),
		View:      view,
		UpdatedAt: updatedAt,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
