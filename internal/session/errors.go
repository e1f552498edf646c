package session

import "errors"

var (
	// ErrEmptyCandidate is returned when committing an empty or
	// whitespace-only candidate.
	ErrEmptyCandidate = errors.New("candidate is empty")

	// ErrSealFailed is returned when a candidate could not be sealed.
	ErrSealFailed = errors.New("failed to seal candidate")
)
