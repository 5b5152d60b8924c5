package domain

import "context"

type MovieRecord struct {
	ID     int
	Name   string `validate:"required,max=64"`
	Price  int    `validate:"min=0"`
	Hour   int    `validate:"min=0,max=23"`
	Minute int    `validate:"min=0,max=59"`
}

// SeedMovie is a catalog entry as delivered by a MovieSource, before the
// catalog assigns it an ID.
type SeedMovie struct {
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
}

type MovieSource interface {
	GetAll(ctx context.Context) ([]SeedMovie, error)
}
