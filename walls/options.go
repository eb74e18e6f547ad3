package walls

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("walls: invalid option supplied")

// Options holds 3D dimensions, all in metres.
type Options struct {
	WallHeight     float64
	WallThickness  float64
	FloorThickness float64
	DoorHeight     float64
	// DoorPanelRatio is the panel thickness relative to WallThickness.
	DoorPanelRatio float64
	CurbHeight     float64
	// ParapetRatio is the parapet height relative to WallHeight.
	ParapetRatio float64
	// CutBuffer grows each opening before it is clipped out of walls.
	CutBuffer float64
	// MinSegment skips shorter topology segments.
	MinSegment float64
	// MinPiece drops shorter wall pieces left after cutting.
	MinPiece float64
	// MinDoorPanel is the shortest cut that receives a door panel.
	MinDoorPanel float64
	// Snap is the coordinate grid applied before topology.
	Snap float64

	err error
}

// Option configures Build.
type Option func(*Options)

// DefaultOptions returns residential proportions.
func DefaultOptions() Options {
	return Options{
		WallHeight:     2.8,
		WallThickness:  0.15,
		FloorThickness: 0.05,
		DoorHeight:     2.1,
		DoorPanelRatio: 0.8,
		CurbHeight:     0.1,
		ParapetRatio:   0.4,
		CutBuffer:      0.01,
		MinSegment:     0.1,
		MinPiece:       0.05,
		MinDoorPanel:   0.5,
		Snap:           1e-4,
	}
}

// WithWallHeight sets the standard wall height.
func WithWallHeight(h float64) Option {
	return func(o *Options) {
		if !(h > 0) {
			o.err = fmt.Errorf("%w: wall height must be > 0, got %v", ErrOptionViolation, h)
			return
		}
		o.WallHeight = h
	}
}

// WithWallThickness sets the wall thickness.
func WithWallThickness(t float64) Option {
	return func(o *Options) {
		if !(t > 0) {
			o.err = fmt.Errorf("%w: wall thickness must be > 0, got %v", ErrOptionViolation, t)
			return
		}
		o.WallThickness = t
	}
}

// WithDoorHeight sets the door panel height; it may not exceed the wall.
func WithDoorHeight(h float64) Option {
	return func(o *Options) {
		if !(h > 0) {
			o.err = fmt.Errorf("%w: door height must be > 0, got %v", ErrOptionViolation, h)
			return
		}
		o.DoorHeight = h
	}
}

// WithSnap sets the coordinate grid; 0 disables snapping.
func WithSnap(grid float64) Option {
	return func(o *Options) {
		if grid < 0 {
			o.err = fmt.Errorf("%w: snap grid must be >= 0, got %v", ErrOptionViolation, grid)
			return
		}
		o.Snap = grid
	}
}

func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err == nil && o.DoorHeight > o.WallHeight {
		o.err = fmt.Errorf("%w: door height %v exceeds wall height %v", ErrOptionViolation, o.DoorHeight, o.WallHeight)
	}

	return o, o.err
}
