package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// Eps is the coordinate equality tolerance.
	Eps = 1e-9

	// OverlapTolerance is the largest intersection area two rectangles may
	// share while still counting as non-overlapping.
	OverlapTolerance = 1e-6
)

// Rect is an axis-aligned rectangle with MinX <= MaxX and MinY <= MaxY.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewRect builds a Rect from two opposite corners in any order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		MinX: math.Min(x0, x1),
		MinY: math.Min(y0, y1),
		MaxX: math.Max(x0, x1),
		MaxY: math.Max(y0, y1),
	}
}

// RectFromBound converts an orb.Bound.
func RectFromBound(b orb.Bound) Rect {
	return NewRect(b.Min[0], b.Min[1], b.Max[0], b.Max[1])
}

// RectFromPolygon returns the bounding rectangle of p's exterior ring.
func RectFromPolygon(p orb.Polygon) Rect {
	if len(p) == 0 {
		return Rect{}
	}

	return RectFromBound(p[0].Bound())
}

// Width is the extent along X.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height is the extent along Y.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Area returns Width*Height.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Aspect returns Width/Height, or 0 for a degenerate rectangle.
func (r Rect) Aspect() float64 {
	if r.Height() <= Eps {
		return 0
	}

	return r.Width() / r.Height()
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.Width() <= Eps || r.Height() <= Eps }

// Center returns the centroid.
func (r Rect) Center() orb.Point {
	return orb.Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// Bound converts to orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{r.MinX, r.MinY}, Max: orb.Point{r.MaxX, r.MaxY}}
}

// Ring returns the closed counter-clockwise ring starting at the min corner.
func (r Rect) Ring() orb.Ring {
	return orb.Ring{
		{r.MinX, r.MinY},
		{r.MaxX, r.MinY},
		{r.MaxX, r.MaxY},
		{r.MinX, r.MaxY},
		{r.MinX, r.MinY},
	}
}

// Polygon returns the rectangle as a single-ring orb.Polygon.
func (r Rect) Polygon() orb.Polygon { return orb.Polygon{r.Ring()} }

// Edges returns the boundary edges in ring order: bottom, right, top, left.
func (r Rect) Edges() [4]Segment {
	ring := r.Ring()

	return [4]Segment{
		{P1: ring[0], P2: ring[1]},
		{P1: ring[1], P2: ring[2]},
		{P1: ring[2], P2: ring[3]},
		{P1: ring[3], P2: ring[4]},
	}
}

// Perimeter returns the boundary length.
func (r Rect) Perimeter() float64 { return 2 * (r.Width() + r.Height()) }

// Extend returns the smallest rectangle covering r and o.
func (r Rect) Extend(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Expand grows the rectangle by d on every side (shrinks for d < 0).
func (r Rect) Expand(d float64) Rect {
	return NewRect(r.MinX-d, r.MinY-d, r.MaxX+d, r.MaxY+d)
}

// Intersection returns the overlap of r and o. ok is false when the two
// rectangles are disjoint; touching rectangles yield a degenerate Rect.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	out := Rect{
		MinX: math.Max(r.MinX, o.MinX),
		MinY: math.Max(r.MinY, o.MinY),
		MaxX: math.Min(r.MaxX, o.MaxX),
		MaxY: math.Min(r.MaxY, o.MaxY),
	}
	if out.MinX > out.MaxX+Eps || out.MinY > out.MaxY+Eps {
		return Rect{}, false
	}

	return out, true
}

// OverlapArea returns the area shared by r and o (0 when disjoint or touching).
func (r Rect) OverlapArea(o Rect) float64 {
	in, ok := r.Intersection(o)
	if !ok || in.IsEmpty() {
		return 0
	}

	return in.Area()
}

// Overlaps reports whether r and o share more than OverlapTolerance area.
func (r Rect) Overlaps(o Rect) bool { return r.OverlapArea(o) > OverlapTolerance }

// ContainsPoint reports whether p lies inside or on the boundary of r.
func (r Rect) ContainsPoint(p orb.Point) bool {
	return p[0] >= r.MinX-Eps && p[0] <= r.MaxX+Eps && p[1] >= r.MinY-Eps && p[1] <= r.MaxY+Eps
}

// SharedBoundary returns the non-degenerate pieces of ∂a ∩ ∂b: every
// collinear overlap between an edge of a and an edge of b. Isolated
// touching points are dropped.
//
// Complexity: O(1) (16 edge pairs).
func SharedBoundary(a, b Rect) []Segment {
	var out []Segment
	ea, eb := a.Edges(), b.Edges()
	for i := range ea {
		for j := range eb {
			if s, ok := ea[i].Overlap(eb[j]); ok {
				out = append(out, s)
			}
		}
	}

	return out
}

// SharedLength is the total length of SharedBoundary(a, b).
func SharedLength(a, b Rect) float64 {
	var total float64
	for _, s := range SharedBoundary(a, b) {
		total += s.Length()
	}

	return total
}

// LongestShared returns the longest shared boundary piece of a and b.
// ok is false when the boundaries share no segment.
func LongestShared(a, b Rect) (Segment, bool) {
	var (
		best Segment
		ok   bool
	)
	for _, s := range SharedBoundary(a, b) {
		if !ok || s.Length() > best.Length() {
			best, ok = s, true
		}
	}

	return best, ok
}

// BoundsOf returns the bounding rectangle of all rs; ok is false for none.
func BoundsOf(rs []Rect) (Rect, bool) {
	if len(rs) == 0 {
		return Rect{}, false
	}
	out := rs[0]
	for _, r := range rs[1:] {
		out = out.Extend(r)
	}

	return out, true
}

// OrientedRect builds the rectangle centred at c whose long axis follows
// the unit direction dir, with half extents halfLen (along dir) and
// halfDepth (perpendicular). The ring is closed.
func OrientedRect(c orb.Point, dir orb.Point, halfLen, halfDepth float64) orb.Polygon {
	px, py := -dir[1], dir[0]
	ring := orb.Ring{
		{c[0] - dir[0]*halfLen - px*halfDepth, c[1] - dir[1]*halfLen - py*halfDepth},
		{c[0] + dir[0]*halfLen - px*halfDepth, c[1] + dir[1]*halfLen - py*halfDepth},
		{c[0] + dir[0]*halfLen + px*halfDepth, c[1] + dir[1]*halfLen + py*halfDepth},
		{c[0] - dir[0]*halfLen + px*halfDepth, c[1] - dir[1]*halfLen + py*halfDepth},
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}

// Snap rounds v to the nearest multiple of grid; grid <= 0 returns v.
// Decimal grids such as 1e-4 divide by the integer reciprocal so that
// snapped values equal their decimal literals.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	var s float64
	if inv := math.Round(1 / grid); math.Abs(1/grid-inv) < 1e-9 {
		s = math.Round(v*inv) / inv
	} else {
		s = math.Round(v/grid) * grid
	}
	if s == 0 {
		return 0 // normalise -0
	}

	return s
}

// SnapPoint snaps both coordinates of p.
func SnapPoint(p orb.Point, grid float64) orb.Point {
	return orb.Point{Snap(p[0], grid), Snap(p[1], grid)}
}
