package opening

import (
	"errors"
	"fmt"
)

// Defaults.
const (
	DefaultDoorWidth      = 1.4
	DefaultOpenWidth      = 3.2
	DefaultDoorDepth      = 0.25
	DefaultEntranceDepth  = 0.3
	DefaultMinWall        = 0.5
	DefaultMaxWallShare   = 0.7
	DefaultEntranceChoice = 3
	exteriorEps           = 1e-6
)

// Sentinel errors.
var (
	// ErrNoExteriorWall is returned when the hub has no exterior wall wide
	// enough for the entrance.
	ErrNoExteriorWall = errors.New("opening: no exterior wall fits the entrance")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("opening: invalid option supplied")

	// ErrNilRand is returned when Entrance receives no random source.
	ErrNilRand = errors.New("opening: random source is nil")
)

// Option configures Doors and Entrance.
type Option func(*Options)

// Options holds opening dimensions.
type Options struct {
	DoorWidth     float64
	OpenWidth     float64
	DoorDepth     float64
	EntranceDepth float64
	// MinWall is the shortest wall segment that may host an opening.
	MinWall float64
	// MaxWallShare caps an opening's width relative to its host segment.
	MaxWallShare float64
	// EntranceChoice is how many of the longest exterior walls compete.
	EntranceChoice int

	err error
}

// DefaultOptions returns the standard dimensions.
func DefaultOptions() Options {
	return Options{
		DoorWidth:      DefaultDoorWidth,
		OpenWidth:      DefaultOpenWidth,
		DoorDepth:      DefaultDoorDepth,
		EntranceDepth:  DefaultEntranceDepth,
		MinWall:        DefaultMinWall,
		MaxWallShare:   DefaultMaxWallShare,
		EntranceChoice: DefaultEntranceChoice,
	}
}

// setPositive stores v in dst or records a violation.
func setPositive(o *Options, name string, v float64, dst *float64) {
	if !(v > 0) {
		o.err = fmt.Errorf("%w: %s must be > 0, got %v", ErrOptionViolation, name, v)
		return
	}
	*dst = v
}

// WithDoorWidth sets the standard door width (entrance included).
func WithDoorWidth(w float64) Option {
	return func(o *Options) { setPositive(o, "door width", w, &o.DoorWidth) }
}

// WithOpenWidth sets the open-plan opening width.
func WithOpenWidth(w float64) Option {
	return func(o *Options) { setPositive(o, "open width", w, &o.OpenWidth) }
}

// WithDepths sets the interior door and entrance cut depths.
func WithDepths(door, entrance float64) Option {
	return func(o *Options) {
		setPositive(o, "door depth", door, &o.DoorDepth)
		setPositive(o, "entrance depth", entrance, &o.EntranceDepth)
	}
}

// WithMaxWallShare sets the width cap relative to the host wall, in (0,1].
func WithMaxWallShare(s float64) Option {
	return func(o *Options) {
		if !(s > 0 && s <= 1) {
			o.err = fmt.Errorf("%w: max wall share must be in (0,1], got %v", ErrOptionViolation, s)
			return
		}
		o.MaxWallShare = s
	}
}

// WithEntranceChoice sets how many top exterior walls compete; it must be >= 1.
func WithEntranceChoice(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: entrance choice must be >= 1, got %d", ErrOptionViolation, k)
			return
		}
		o.EntranceChoice = k
	}
}

func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
