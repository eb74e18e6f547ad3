package placement

import "errors"

// Sentinel errors for placement.
var (
	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("placement: random source is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("placement: invalid option supplied")
)
