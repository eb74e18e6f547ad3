package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout construction and interchange.
var (
	// ErrConfiguration marks a room list that cannot be synthesized at all
	// (empty list, invalid entry, no hub-capable room).
	ErrConfiguration = errors.New("layout: invalid configuration")

	// ErrNoHub indicates no room classifies into the public zone.
	ErrNoHub = errors.New("layout: no public-zone room to act as hub")

	// ErrEmptySpec indicates an empty room list.
	ErrEmptySpec = errors.New("layout: room list is empty")

	// ErrInvalidRoom indicates an entry with an empty type or a non-positive
	// or non-finite area.
	ErrInvalidRoom = errors.New("layout: invalid room entry")

	// ErrGeoJSON indicates a GeoJSON document that does not describe a layout.
	ErrGeoJSON = errors.New("layout: malformed layout GeoJSON")
)

// ConfigurationError is returned before any placement when the room list
// is unusable. It matches both ErrConfiguration and its Cause via errors.Is.
type ConfigurationError struct {
	// Index is the offending entry, or -1 when the list as a whole is at fault.
	Index int
	// Cause is one of ErrEmptySpec, ErrInvalidRoom or ErrNoHub.
	Cause error
	// Reason is a human-readable detail.
	Reason string
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: room %d: %s", e.Cause, e.Index, e.Reason)
	}

	return fmt.Sprintf("%v: %s", e.Cause, e.Reason)
}

// Is reports ErrConfiguration as well as the wrapped cause.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// Unwrap exposes the cause.
func (e *ConfigurationError) Unwrap() error { return e.Cause }
