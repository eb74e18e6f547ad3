package geometry

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/simplify"
	"github.com/peterstace/simplefeatures/geom"
)

// ErrOverlay wraps failures reported by the polygon overlay engine.
var ErrOverlay = errors.New("geometry: overlay failed")

// ringSimplifyTolerance removes collinear vertices left behind by unions
// of rectangles sharing edges.
const ringSimplifyTolerance = 1e-9

// Footprint aggregates measures of the union of a set of polygons.
type Footprint struct {
	// Area is the area of the union (overlaps counted once).
	Area float64
	// HullArea is the area of the union's convex hull.
	HullArea float64
	// Perimeter is the total boundary length of the union.
	Perimeter float64
}

// ToSF converts an orb geometry into a simplefeatures geometry through its
// WKT form.
func ToSF(g orb.Geometry) (geom.Geometry, error) {
	out, err := geom.UnmarshalWKT(wkt.MarshalString(g))
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("%w: %v", ErrOverlay, err)
	}

	return out, nil
}

// FromSF flattens the areal parts of a simplefeatures geometry into an
// orb.MultiPolygon. Lines and points are discarded; an empty input yields nil.
func FromSF(g geom.Geometry) orb.MultiPolygon {
	if g.IsEmpty() {
		return nil
	}
	var out orb.MultiPolygon
	switch g.Type() {
	case geom.TypePolygon:
		if p, ok := g.AsPolygon(); ok {
			out = appendPolygon(out, p)
		}
	case geom.TypeMultiPolygon:
		if mp, ok := g.AsMultiPolygon(); ok {
			for i := 0; i < mp.NumPolygons(); i++ {
				out = appendPolygon(out, mp.PolygonN(i))
			}
		}
	case geom.TypeGeometryCollection:
		if gc, ok := g.AsGeometryCollection(); ok {
			for i := 0; i < gc.NumGeometries(); i++ {
				out = append(out, FromSF(gc.GeometryN(i))...)
			}
		}
	}

	return out
}

func appendPolygon(dst orb.MultiPolygon, p geom.Polygon) orb.MultiPolygon {
	if p.IsEmpty() {
		return dst
	}
	poly := orb.Polygon{cleanRing(ringFromSF(p.ExteriorRing()))}
	for i := 0; i < p.NumInteriorRings(); i++ {
		poly = append(poly, cleanRing(ringFromSF(p.InteriorRingN(i))))
	}

	return append(dst, poly)
}

func ringFromSF(ls geom.LineString) orb.Ring {
	seq := ls.Coordinates()
	ring := make(orb.Ring, seq.Length())
	for i := range ring {
		xy := seq.GetXY(i)
		ring[i] = orb.Point{xy.X, xy.Y}
	}

	return ring
}

// cleanRing drops collinear vertices. Rings that would degenerate are
// returned unchanged.
func cleanRing(r orb.Ring) orb.Ring {
	ls := orb.LineString(r)
	s := simplify.DouglasPeucker(ringSimplifyTolerance).Simplify(ls.Clone())
	out, ok := s.(orb.LineString)
	if !ok || len(out) < 4 {
		return r
	}

	return orb.Ring(out)
}

// unionSF folds every polygon into a single simplefeatures geometry.
func unionSF(polys []orb.Polygon) (geom.Geometry, error) {
	var acc geom.Geometry
	first := true
	for _, p := range polys {
		if len(p) == 0 || len(p[0]) < 4 {
			continue
		}
		g, err := ToSF(p)
		if err != nil {
			return geom.Geometry{}, err
		}
		if first {
			acc, first = g, false
			continue
		}
		if acc, err = geom.Union(acc, g); err != nil {
			return geom.Geometry{}, fmt.Errorf("%w: union: %v", ErrOverlay, err)
		}
	}

	return acc, nil
}

// UnionAll returns the union of polys as orb.MultiPolygon, or nil when
// nothing non-degenerate was supplied.
func UnionAll(polys []orb.Polygon) (orb.MultiPolygon, error) {
	u, err := unionSF(polys)
	if err != nil {
		return nil, err
	}

	return FromSF(u), nil
}

// MeasureFootprint unions polys and measures area, convex hull area and
// boundary length of the result.
func MeasureFootprint(polys []orb.Polygon) (Footprint, error) {
	u, err := unionSF(polys)
	if err != nil {
		return Footprint{}, err
	}
	if u.IsEmpty() {
		return Footprint{}, nil
	}

	return Footprint{
		Area:      u.Area(),
		HullArea:  u.ConvexHull().Area(),
		Perimeter: u.Boundary().Length(),
	}, nil
}
