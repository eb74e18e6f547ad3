// Package corridor links accepted room pairs that do not share a usable
// wall with L-shaped corridors.
//
// For each such pair the wall midpoint of each room facing the other
// room's centre is found, an L path (horizontal leg, then vertical leg)
// joins the two points, and each leg is widened with flat caps into an
// axis-aligned rectangle. All pieces are unioned into one MultiPolygon.
package corridor

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
)

// Defaults.
const (
	DefaultWidth           = 1.5
	DefaultSharedTolerance = 0.6
	minLeg                 = 1e-3
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("corridor: invalid option supplied")

// Option configures Generate.
type Option func(*Options)

// Options holds corridor parameters.
type Options struct {
	// Width is the full corridor width.
	Width float64
	// SharedTolerance is the shared-wall length at which no corridor is needed.
	SharedTolerance float64

	err error
}

// DefaultOptions returns width 1.5 and shared-wall tolerance 0.6.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, SharedTolerance: DefaultSharedTolerance}
}

// WithWidth sets the corridor width; it must be positive.
func WithWidth(w float64) Option {
	return func(o *Options) {
		if w <= 0 || math.IsNaN(w) {
			o.err = fmt.Errorf("%w: width must be > 0, got %v", ErrOptionViolation, w)
			return
		}
		o.Width = w
	}
}

// WithSharedTolerance sets the shared-wall threshold; it must be >= 0.
func WithSharedTolerance(t float64) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: shared tolerance must be >= 0, got %v", ErrOptionViolation, t)
			return
		}
		o.SharedTolerance = t
	}
}

// Path returns the L path between the facing wall midpoints of a and b.
// Legs shorter than 1e-3 are dropped.
func Path(a, b geometry.Rect) []geometry.Segment {
	p1 := facingMidpoint(a, b.Center())
	p2 := facingMidpoint(b, a.Center())
	corner := orb.Point{p2[0], p1[1]}

	var legs []geometry.Segment
	if math.Abs(p2[0]-p1[0]) > minLeg {
		legs = append(legs, geometry.Segment{P1: p1, P2: corner})
	}
	if math.Abs(p2[1]-p1[1]) > minLeg {
		legs = append(legs, geometry.Segment{P1: corner, P2: p2})
	}

	return legs
}

// facingMidpoint picks the midpoint of the wall of r facing towards.
func facingMidpoint(r geometry.Rect, towards orb.Point) orb.Point {
	c := r.Center()
	dx, dy := towards[0]-c[0], towards[1]-c[1]
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return orb.Point{r.MaxX, c[1]}
		}
		return orb.Point{r.MinX, c[1]}
	}
	if dy > 0 {
		return orb.Point{c[0], r.MaxY}
	}

	return orb.Point{c[0], r.MinY}
}

// widen turns an axis-aligned leg into a flat-capped rectangle.
func widen(s geometry.Segment, width float64) geometry.Rect {
	half := width / 2
	if s.Orientation() == geometry.Horizontal {
		return geometry.NewRect(s.P1[0], s.P1[1]-half, s.P2[0], s.P1[1]+half)
	}

	return geometry.NewRect(s.P1[0]-half, s.P1[1], s.P1[0]+half, s.P2[1])
}

// Generate builds corridors for every accepted edge whose rooms share less
// than the tolerance of wall. It returns nil when no corridor is needed.
func Generate(rooms map[string]layout.PlacedRoom, accepted []layout.AdjacencyEdge, opts ...Option) (orb.MultiPolygon, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var pieces []orb.Polygon
	for _, e := range accepted {
		a, okA := rooms[e.RoomA]
		b, okB := rooms[e.RoomB]
		if !okA || !okB {
			continue
		}
		if geometry.SharedLength(a.Rect, b.Rect) >= o.SharedTolerance {
			continue
		}
		for _, leg := range Path(a.Rect, b.Rect) {
			pieces = append(pieces, widen(leg, o.Width).Polygon())
		}
	}
	if len(pieces) == 0 {
		return nil, nil
	}

	return geometry.UnionAll(pieces)
}
