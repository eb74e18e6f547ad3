// Package walls turns a 2D layout into a 3D wall, door and floor mesh.
//
// Topology
//
//	Every room edge is split at the vertices of other rooms lying on it, so
//	collinear shared walls break into identical pieces. Pieces are snapped
//	to a 1e-4 grid, canonicalised and mapped to the rooms sharing them: one
//	room means an exterior wall, two an interior wall; more is a modelling
//	anomaly reported and skipped.
//
// Heights
//
//	Walls are full height unless every sharing room is outdoor. Such a
//	wall becomes a low curb when the outdoor room is adjacent to the hub,
//	and a parapet otherwise.
//
// Cutting
//
//	Each opening polygon, buffered slightly, is clipped out of the walls it
//	crosses. Remaining pieces become thin boxes; every cut longer than the
//	minimum door width gets a thinner door panel. Each room gets a floor
//	slab coloured from a fixed palette by placement order.
package walls
