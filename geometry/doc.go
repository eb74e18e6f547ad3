// Package geometry is the planar kernel of floorplan.
//
// What
//
//   - Rect: axis-aligned rectangles (room footprints, openings, corridor
//     pieces) with exact overlap and shared-boundary arithmetic.
//   - Segment: straight wall segments with parametric clipping,
//     interval subtraction and splitting.
//   - Interval: 1D parameter ranges used to cut openings out of walls.
//   - Overlay: polygon union, convex hull and footprint measures delegated
//     to github.com/peterstace/simplefeatures, with results converted back
//     into github.com/paulmach/orb values.
//
// Why
//
//	Every room produced by the placement heuristic is an axis-aligned
//	rectangle, so contact, overlap and wall cutting reduce to exact interval
//	arithmetic on shared coordinates. General polygon overlay is only needed
//	where unions of many pieces are measured or exported.
//
// Determinism
//
//	All functions are pure and allocation-local; none of them iterate maps.
//
// Tolerances
//
//	Eps (1e-9) guards coordinate equality; OverlapTolerance (1e-6) is the
//	largest overlap area treated as "touching".
package geometry
