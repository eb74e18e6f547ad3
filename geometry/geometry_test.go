package geometry_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorplan/geometry"
)

const tol = 1e-9

//----------------------------------------------------------------------------//
// Rect
//----------------------------------------------------------------------------//

// TestRect_Basics covers normalisation, measures and ring order.
func TestRect_Basics(t *testing.T) {
	r := geometry.NewRect(4, 3, 0, 0)
	assert.Equal(t, geometry.Rect{MinX: 0, MinY: 0, MaxX: 4, MaxY: 3}, r)
	assert.InDelta(t, 12, r.Area(), tol)
	assert.InDelta(t, 14, r.Perimeter(), tol)
	assert.InDelta(t, 4.0/3.0, r.Aspect(), tol)
	assert.Equal(t, orb.Point{2, 1.5}, r.Center())

	ring := r.Ring()
	require.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[4], "ring must be closed")
	assert.InDelta(t, 12, planar.Area(r.Polygon()), tol)
	assert.Equal(t, r, geometry.RectFromPolygon(r.Polygon()))
}

// TestRect_Overlap distinguishes touching from overlapping rectangles.
func TestRect_Overlap(t *testing.T) {
	a := geometry.NewRect(0, 0, 4, 4)
	touching := geometry.NewRect(4, 1, 6, 3)
	overlapping := geometry.NewRect(3, 3, 5, 5)
	far := geometry.NewRect(10, 10, 11, 11)

	assert.False(t, a.Overlaps(touching))
	assert.Zero(t, a.OverlapArea(touching))
	assert.True(t, a.Overlaps(overlapping))
	assert.InDelta(t, 1, a.OverlapArea(overlapping), tol)
	_, ok := a.Intersection(far)
	assert.False(t, ok)
}

// TestSharedBoundary checks collinear edge contact lengths.
func TestSharedBoundary(t *testing.T) {
	a := geometry.NewRect(0, 0, 4, 4)
	cases := []struct {
		name string
		b    geometry.Rect
		want float64
	}{
		{"FullSide", geometry.NewRect(4, 0, 6, 4), 4},
		{"PartialSide", geometry.NewRect(4, 1, 6, 3), 2},
		{"OverhangingSide", geometry.NewRect(2, 4, 8, 6), 2},
		{"CornerOnly", geometry.NewRect(4, 4, 6, 6), 0},
		{"Apart", geometry.NewRect(5, 0, 6, 4), 0},
		{"CornerFill", geometry.NewRect(-2, -2, 0, 4), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, geometry.SharedLength(a, tc.b), tol)
			assert.InDelta(t, tc.want, geometry.SharedLength(tc.b, a), tol)
		})
	}

	s, ok := geometry.LongestShared(a, geometry.NewRect(4, 1, 6, 3))
	require.True(t, ok)
	assert.Equal(t, geometry.Vertical, s.Orientation())
	assert.InDelta(t, 2, s.Length(), tol)
}

// TestOrientedRect builds an opening-style rectangle on a vertical wall.
func TestOrientedRect(t *testing.T) {
	p := geometry.OrientedRect(orb.Point{4, 2}, orb.Point{0, 1}, 0.7, 0.125)
	b := geometry.RectFromPolygon(p)
	assert.InDelta(t, 0.25, b.Width(), tol)
	assert.InDelta(t, 1.4, b.Height(), tol)
	assert.InDelta(t, 0.35, planar.Area(p), 1e-9)
}

//----------------------------------------------------------------------------//
// Segment / Interval
//----------------------------------------------------------------------------//

// TestSegment_Clip clips a wall against an opening rectangle.
func TestSegment_Clip(t *testing.T) {
	wall := geometry.Segment{P1: orb.Point{0, 0}, P2: orb.Point{10, 0}}
	iv, ok := wall.Clip(geometry.NewRect(4, -0.1, 6, 0.1))
	require.True(t, ok)
	assert.InDelta(t, 0.4, iv.Lo, tol)
	assert.InDelta(t, 0.6, iv.Hi, tol)

	_, ok = wall.Clip(geometry.NewRect(4, 1, 6, 2))
	assert.False(t, ok)

	pieces := wall.Subtract([]geometry.Interval{iv}, 0.05)
	require.Len(t, pieces, 2)
	assert.InDelta(t, 4, pieces[0].Length(), tol)
	assert.InDelta(t, 4, pieces[1].Length(), tol)
}

// TestSegment_SplitAt ignores duplicates and out-of-range parameters.
func TestSegment_SplitAt(t *testing.T) {
	s := geometry.Segment{P1: orb.Point{0, 0}, P2: orb.Point{0, 8}}
	parts := s.SplitAt([]float64{0.5, 0.25, 0.5, 0, 1, 1.5})
	require.Len(t, parts, 3)
	assert.InDelta(t, 2, parts[0].Length(), tol)
	assert.InDelta(t, 2, parts[1].Length(), tol)
	assert.InDelta(t, 4, parts[2].Length(), tol)
	assert.Equal(t, geometry.Vertical, parts[0].Orientation())
}

// TestSegment_Canonical makes undirected segments comparable.
func TestSegment_Canonical(t *testing.T) {
	a := geometry.Segment{P1: orb.Point{3, 1}, P2: orb.Point{1, 1}}
	b := geometry.Segment{P1: orb.Point{1, 1}, P2: orb.Point{3, 1}}
	assert.Equal(t, a.Canonical(), b.Canonical())
	assert.InDelta(t, 0.5, b.Param(orb.Point{2, 7}), tol)
}

// TestInterval_Subtract removes merged cuts.
func TestInterval_Subtract(t *testing.T) {
	base := geometry.Interval{Lo: 0, Hi: 10}
	rest := base.Subtract([]geometry.Interval{{Lo: 2, Hi: 4}, {Lo: 3, Hi: 5}, {Lo: 9, Hi: 12}})
	assert.Equal(t, []geometry.Interval{{Lo: 0, Hi: 2}, {Lo: 5, Hi: 9}}, rest)
	assert.Empty(t, base.Subtract([]geometry.Interval{{Lo: -1, Hi: 11}}))
}

// TestSnap normalises negative zero.
func TestSnap(t *testing.T) {
	assert.InDelta(t, 1.2346, geometry.Snap(1.23456, 1e-4), 1e-12)
	assert.False(t, math.Signbit(geometry.Snap(-0.00001, 1e-4)))
	assert.Equal(t, 3.3, geometry.Snap(3.3, 0))
	assert.Equal(t, 3.5, geometry.Snap(3.50003, 1e-4))
}

//----------------------------------------------------------------------------//
// Overlay
//----------------------------------------------------------------------------//

// TestUnionAll merges touching rectangles into one polygon.
func TestUnionAll(t *testing.T) {
	polys := []orb.Polygon{
		geometry.NewRect(0, 0, 2, 2).Polygon(),
		geometry.NewRect(2, 0, 4, 2).Polygon(),
		geometry.NewRect(10, 10, 11, 11).Polygon(),
	}
	mp, err := geometry.UnionAll(polys)
	require.NoError(t, err)
	require.Len(t, mp, 2)
	assert.InDelta(t, 9, planar.Area(mp), 1e-6)

	empty, err := geometry.UnionAll(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}

// TestMeasureFootprint measures an L-shaped footprint.
func TestMeasureFootprint(t *testing.T) {
	polys := []orb.Polygon{
		geometry.NewRect(0, 0, 4, 2).Polygon(),
		geometry.NewRect(0, 2, 2, 4).Polygon(),
	}
	fp, err := geometry.MeasureFootprint(polys)
	require.NoError(t, err)
	assert.InDelta(t, 12, fp.Area, 1e-6)
	assert.InDelta(t, 14, fp.HullArea, 1e-6)
	assert.InDelta(t, 16, fp.Perimeter, 1e-6)

	zero, err := geometry.MeasureFootprint(nil)
	require.NoError(t, err)
	assert.Equal(t, geometry.Footprint{}, zero)
}
