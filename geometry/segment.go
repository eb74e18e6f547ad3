package geometry

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// Orientation classifies a segment's direction.
type Orientation int

const (
	// Oblique segments are neither horizontal nor vertical.
	Oblique Orientation = iota
	// Horizontal segments have constant Y.
	Horizontal
	// Vertical segments have constant X.
	Vertical
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "oblique"
	}
}

// Segment is a straight line piece from P1 to P2.
type Segment struct {
	P1, P2 orb.Point
}

// Length returns the Euclidean length.
func (s Segment) Length() float64 {
	return math.Hypot(s.P2[0]-s.P1[0], s.P2[1]-s.P1[1])
}

// Orientation reports whether s is horizontal, vertical or oblique.
// Degenerate segments report Oblique.
func (s Segment) Orientation() Orientation {
	dx, dy := math.Abs(s.P2[0]-s.P1[0]), math.Abs(s.P2[1]-s.P1[1])
	switch {
	case dx <= Eps && dy <= Eps:
		return Oblique
	case dy <= Eps:
		return Horizontal
	case dx <= Eps:
		return Vertical
	default:
		return Oblique
	}
}

// At returns the point at parameter t in [0,1] along s.
func (s Segment) At(t float64) orb.Point {
	return orb.Point{
		s.P1[0] + (s.P2[0]-s.P1[0])*t,
		s.P1[1] + (s.P2[1]-s.P1[1])*t,
	}
}

// Midpoint returns At(0.5).
func (s Segment) Midpoint() orb.Point { return s.At(0.5) }

// Direction returns the unit vector from P1 to P2; ok is false for a
// zero-length segment.
func (s Segment) Direction() (orb.Point, bool) {
	l := s.Length()
	if l <= Eps {
		return orb.Point{}, false
	}

	return orb.Point{(s.P2[0] - s.P1[0]) / l, (s.P2[1] - s.P1[1]) / l}, true
}

// Canonical returns s with its endpoints in lexicographic (x, then y)
// order, so that undirected segments compare equal.
func (s Segment) Canonical() Segment {
	if s.P2[0] < s.P1[0] || (s.P2[0] == s.P1[0] && s.P2[1] < s.P1[1]) {
		return Segment{P1: s.P2, P2: s.P1}
	}

	return s
}

// Sub returns the piece of s between parameters iv.Lo and iv.Hi.
func (s Segment) Sub(iv Interval) Segment {
	return Segment{P1: s.At(iv.Lo), P2: s.At(iv.Hi)}
}

// Overlap returns the collinear overlap of two axis-aligned segments.
// ok is false when they are not collinear, only touch at a point, or
// either is oblique. The result runs in increasing coordinate order.
func (s Segment) Overlap(o Segment) (Segment, bool) {
	so, oo := s.Orientation(), o.Orientation()
	if so != oo || so == Oblique {
		return Segment{}, false
	}
	switch so {
	case Horizontal:
		if math.Abs(s.P1[1]-o.P1[1]) > Eps {
			return Segment{}, false
		}
		lo := math.Max(math.Min(s.P1[0], s.P2[0]), math.Min(o.P1[0], o.P2[0]))
		hi := math.Min(math.Max(s.P1[0], s.P2[0]), math.Max(o.P1[0], o.P2[0]))
		if hi-lo <= Eps {
			return Segment{}, false
		}
		y := s.P1[1]

		return Segment{P1: orb.Point{lo, y}, P2: orb.Point{hi, y}}, true
	default:
		if math.Abs(s.P1[0]-o.P1[0]) > Eps {
			return Segment{}, false
		}
		lo := math.Max(math.Min(s.P1[1], s.P2[1]), math.Min(o.P1[1], o.P2[1]))
		hi := math.Min(math.Max(s.P1[1], s.P2[1]), math.Max(o.P1[1], o.P2[1]))
		if hi-lo <= Eps {
			return Segment{}, false
		}
		x := s.P1[0]

		return Segment{P1: orb.Point{x, lo}, P2: orb.Point{x, hi}}, true
	}
}

// Param returns the parameter of the orthogonal projection of p onto the
// line through s (unclamped). A degenerate segment returns 0.
func (s Segment) Param(p orb.Point) float64 {
	dx, dy := s.P2[0]-s.P1[0], s.P2[1]-s.P1[1]
	l2 := dx*dx + dy*dy
	if l2 <= Eps*Eps {
		return 0
	}

	return ((p[0]-s.P1[0])*dx + (p[1]-s.P1[1])*dy) / l2
}

// Clip returns the parameter interval of s lying inside r
// (Liang–Barsky). ok is false when s misses r or only grazes a corner.
func (s Segment) Clip(r Rect) (Interval, bool) {
	dx, dy := s.P2[0]-s.P1[0], s.P2[1]-s.P1[1]
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{s.P1[0] - r.MinX, r.MaxX - s.P1[0], s.P1[1] - r.MinY, r.MaxY - s.P1[1]}
	for i := range p {
		if math.Abs(p[i]) <= Eps {
			if q[i] < -Eps {
				return Interval{}, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
	}
	if t1-t0 <= Eps {
		return Interval{}, false
	}

	return Interval{Lo: t0, Hi: t1}, true
}

// Subtract removes every cut interval (in parameter space) from s and
// returns the remaining pieces longer than minLen, in order along s.
func (s Segment) Subtract(cuts []Interval, minLen float64) []Segment {
	var out []Segment
	full := Interval{Lo: 0, Hi: 1}
	for _, iv := range full.Subtract(cuts) {
		piece := s.Sub(iv)
		if piece.Length() > minLen {
			out = append(out, piece)
		}
	}

	return out
}

// SplitAt cuts s at the given parameters (values outside (0,1) and
// duplicates are ignored) and returns the pieces in order.
func (s Segment) SplitAt(ts []float64) []Segment {
	cuts := make([]float64, 0, len(ts)+2)
	cuts = append(cuts, 0)
	for _, t := range ts {
		if t > Eps && t < 1-Eps {
			cuts = append(cuts, t)
		}
	}
	cuts = append(cuts, 1)
	sort.Float64s(cuts)

	out := make([]Segment, 0, len(cuts)-1)
	for i := 1; i < len(cuts); i++ {
		if cuts[i]-cuts[i-1] <= Eps {
			continue
		}
		out = append(out, Segment{P1: s.At(cuts[i-1]), P2: s.At(cuts[i])})
	}

	return out
}

// LineString converts s to an orb.LineString.
func (s Segment) LineString() orb.LineString { return orb.LineString{s.P1, s.P2} }
