package generator

import "errors"

var (
	// ErrInvalidLength is returned when the requested length is not positive.
	ErrInvalidLength = errors.New("invalid length: must be positive")

	// ErrBusy is returned by Worker.Submit while a generation is in flight.
	ErrBusy = errors.New("generation already in progress")
)
