package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrOutOfRange        = errors.New("catalog position out of range")
	ErrAllocationFailure = errors.New("catalog allocation failed")
	ErrInvalidButton     = errors.New("invalid button")
)
