// Package layout defines the data model shared by every floorplan stage.
//
// Types
//
//   - RoomSpec: one requested room (type, target area); the input contract.
//   - PlacedRoom: a committed axis-aligned room rectangle with its unique
//     name ("bedroom_2") and zone.
//   - AdjacencyEdge: a geometric contact with its rule verdict.
//   - Opening: a door, open-plan or entrance cut centred on a wall.
//   - Layout: the complete 2D result of a run, built once and never
//     exposed partially.
//
// Geometry
//
//	All polygons are github.com/paulmach/orb values, i.e. ordered closed
//	point lists. Renderers can consume Layout.RoomPolygons directly or the
//	GeoJSON FeatureCollection produced by MarshalGeoJSON.
//
// Errors
//
//	Unusable room lists fail with *ConfigurationError, which matches
//	ErrConfiguration and its specific cause through errors.Is.
package layout
