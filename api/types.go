// Package api holds the JSON wire types of the kiosk's HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

// ButtonRequest is a single button press. Denomination is required for coin
// presses. Other presses may omit it; if sent it must still name an accepted
// coin, and it is then dropped.
type ButtonRequest struct {
	Button       string `json:"button" validate:"required,button"`
	Denomination int    `json:"denomination" validate:"required_if=Button coin,omitempty,denomination"`
}

type ButtonResponse struct {
	Accepted    bool `json:"accepted"`
	Overwritten bool `json:"overwritten"`
}

type DisplayResponse struct {
	Kind      string    `json:"kind"`
	View      any       `json:"view"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Movie struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Showtime string `json:"showtime"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
	Total  int     `json:"total"`
}

type CreateMovieRequest struct {
	Name   string `json:"name" validate:"required,max=64"`
	Price  *int   `json:"price" validate:"required,min=0"`
	Hour   *int   `json:"hour" validate:"required,min=0,max=23"`
	Minute *int   `json:"minute" validate:"required,min=0,max=59"`
}

type MovieResponse struct {
	Movie Movie `json:"movie"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
