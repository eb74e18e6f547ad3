package roomgraph

import "errors"

// Sentinel errors for room graph construction and traversal.
var (
	// ErrEmptyRoomName indicates an empty room name.
	ErrEmptyRoomName = errors.New("roomgraph: room name is empty")

	// ErrRoomNotFound indicates an operation referenced an unknown room.
	ErrRoomNotFound = errors.New("roomgraph: room not found")

	// ErrSelfLink indicates an attempt to link a room to itself.
	ErrSelfLink = errors.New("roomgraph: room cannot link to itself")

	// ErrGraphNil is returned when a nil graph is traversed.
	ErrGraphNil = errors.New("roomgraph: graph is nil")

	// ErrNegativeWeight is returned when a walk cost is negative or NaN.
	ErrNegativeWeight = errors.New("roomgraph: negative walk cost")
)
