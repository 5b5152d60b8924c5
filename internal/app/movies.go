package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-kiosk/api"
	"github.com/metinatakli/cinema-kiosk/internal/domain"
)

// GetMovies lists the catalog newest first, the order the kiosk browses in.
func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	records := app.catalog.All()

	resp := api.MovieListResponse{
		Movies: toApiMovies(records),
		Total:  len(records),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetMovie shows a single catalog entry by id.
func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	record, err := app.catalog.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, api.MovieResponse{Movie: toApiMovie(record)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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

	id, err := app.catalog.Add(input.Name, *input.Price, *input.Hour, *input.Minute)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	record, err := app.catalog.Get(id)
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("movie %d vanished after insert: %w", id, err))
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/movies/%d", id))

	err = app.writeJSON(w, http.StatusCreated, api.MovieResponse{Movie: toApiMovie(record)}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteMovie removes a movie from the catalog. The store ignores unknown ids,
// the handler reports them as not found.
func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	_, err = app.catalog.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.catalog.Remove(id)

	w.WriteHeader(http.StatusNoContent)
}

func toApiMovies(records []domain.MovieRecord) []api.Movie {
	movies := make([]api.Movie, 0, len(records))
	for _, record := range records {
		movies = append(movies, toApiMovie(record))
	}

	return movies
}

func toApiMovie(record domain.MovieRecord) api.Movie {
	return api.Movie{
		Id:       record.ID,
		Name:     record.Name,
		Price:    record.Price,
		Showtime: fmt.Sprintf("%02d:%02d", record.Hour, record.Minute),
	}
}
