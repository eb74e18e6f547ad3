// Package floorplan synthesizes building floor plans from a plain list of
// rooms: rectangular room polygons placed zone by zone around a hub,
// rule-checked adjacencies, corridors, doors, a main entrance, a 3D
// wall/floor mesh and a score for every stochastic candidate.
//
// 🚀 What is floorplan?
//
//	A deterministic, seed-driven pipeline:
//		• Zones: living/dining/hall are public, bedrooms private, bathrooms service…
//		• Placement: hub first, then four-sided candidates scored by shared wall
//		• Adjacency: geometric contacts filtered by an architectural rule table
//		• Circulation: L-shaped corridors, open-plan openings and doors
//		• Entrance: cut on a true exterior wall of the hub
//		• 3D: wall topology, opening cuts, door panels and floor slabs as PLY
//		• Scoring: efficiency, privacy, circulation and daylight, best-of-N
//
// ✨ Why deterministic?
//
//   - Same room list and seed ⇒ identical polygons, even with candidates
//     running concurrently
//   - Every run owns its *rand.Rand; no map order reaches geometry
//
// Packages, leaf to root:
//
//	zone/      room type → privacy zone
//	geometry/  rectangles, segments, intervals and polygon overlay
//	layout/    RoomSpec, PlacedRoom, Layout and GeoJSON interchange
//	rules/     adjacency rule table and validation
//	roomgraph/ contact detection, room graph, hop and walking metrics
//	placement/ zone-ordered room placement
//	corridor/  corridors between non-touching linked rooms
//	opening/   doors, open-plan openings and the entrance
//	mesh/      faces, prisms, palette and PLY output
//	walls/     wall topology and 3D build
//	scoring/   layout metrics and structural score
//	synth/     the 2D pipeline for one seed
//	candidate/ best-of-N selection on a bounded pool
//	config/    YAML configuration and room lists
//
// Quick ASCII example (living hub with kitchen above and bedroom right):
//
//	┌──────┐
//	│ kit  │
//	├──────┴──┬─────┐
//	│ living  ▯ bed │
//	└───▭─────┴─────┘
//
//	▯ is a door, ▭ the entrance.
//
//	go run ./cmd/floorplan -spec rooms.yaml -n 3 -out out/
package floorplan
