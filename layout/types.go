package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/zone"
)

// Exterior is the pseudo-room name used as the far side of the entrance.
const Exterior = "exterior"

// RoomSpec is one requested room: its type and target area.
type RoomSpec struct {
	Type string  `json:"type" yaml:"type"`
	Area float64 `json:"area" yaml:"area"`
}

// Validate checks the structural contract of a single entry.
func (s RoomSpec) Validate() error {
	if strings.TrimSpace(s.Type) == "" {
		return fmt.Errorf("%w: missing type", ErrInvalidRoom)
	}
	if math.IsNaN(s.Area) || math.IsInf(s.Area, 0) || s.Area <= 0 {
		return fmt.Errorf("%w: area %v must be finite and positive", ErrInvalidRoom, s.Area)
	}

	return nil
}

// NormalizeSpecs returns a copy of specs with trimmed, lower-cased types.
func NormalizeSpecs(specs []RoomSpec) []RoomSpec {
	out := make([]RoomSpec, len(specs))
	for i, s := range specs {
		out[i] = RoomSpec{Type: strings.ToLower(strings.TrimSpace(s.Type)), Area: s.Area}
	}

	return out
}

// ValidateSpecs enforces the input contract: non-empty list, every entry
// valid, at least one public-zone room. Failures are *ConfigurationError.
func ValidateSpecs(specs []RoomSpec) error {
	if len(specs) == 0 {
		return &ConfigurationError{Index: -1, Cause: ErrEmptySpec, Reason: "at least one room is required"}
	}
	hub := false
	for i, s := range specs {
		if err := s.Validate(); err != nil {
			return &ConfigurationError{Index: i, Cause: ErrInvalidRoom, Reason: err.Error()}
		}
		if zone.Classify(s.Type) == zone.Public {
			hub = true
		}
	}
	if !hub {
		return &ConfigurationError{Index: -1, Cause: ErrNoHub, Reason: "add a living, dining or hall room"}
	}

	return nil
}

// RoomName formats the unique name of the idx-th (1-based) room of a type.
func RoomName(roomType string, idx int) string { return fmt.Sprintf("%s_%d", roomType, idx) }

// PlacedRoom is a room rectangle committed by the placement stage.
type PlacedRoom struct {
	Name string
	Type string
	Zone zone.Zone
	Rect geometry.Rect
}

// Polygon returns the room outline as a closed ring.
func (r PlacedRoom) Polygon() orb.Polygon { return r.Rect.Polygon() }

// Area returns the rectangle area.
func (r PlacedRoom) Area() float64 { return r.Rect.Area() }

// EdgeKind classifies an adjacency verdict.
type EdgeKind string

const (
	// Preferred edges appear in either type's preference table.
	Preferred EdgeKind = "preferred"
	// Neutral edges are neither preferred nor forbidden.
	Neutral EdgeKind = "neutral"
	// Forbidden edges violate a forbid rule and are rejected.
	Forbidden EdgeKind = "forbidden"
)

// AdjacencyEdge is a geometric contact between two rooms with its rule verdict.
type AdjacencyEdge struct {
	RoomA   string   `json:"room_a"`
	RoomB   string   `json:"room_b"`
	Valid   bool     `json:"valid"`
	Kind    EdgeKind `json:"kind"`
	Reason  string   `json:"reason"`
	Contact float64  `json:"contact"`
}

// Has reports whether name is one of the edge's endpoints.
func (e AdjacencyEdge) Has(name string) bool { return e.RoomA == name || e.RoomB == name }

// Other returns the endpoint opposite to name.
func (e AdjacencyEdge) Other(name string) string {
	if e.RoomA == name {
		return e.RoomB
	}

	return e.RoomA
}

// OpeningKind classifies a wall opening.
type OpeningKind string

const (
	// Door is a standard-width interior door.
	Door OpeningKind = "door"
	// OpenPlan is a wide doorless opening.
	OpenPlan OpeningKind = "open_plan"
	// Entrance is the main exterior door of the hub.
	Entrance OpeningKind = "entrance"
)

// Opening is a rectangular cut centred on a wall.
type Opening struct {
	RoomA   string      `json:"room_a"`
	RoomB   string      `json:"room_b"`
	Width   float64     `json:"width"`
	Kind    OpeningKind `json:"kind"`
	Polygon orb.Polygon `json:"-"`
}

// PlacementFailure records a room that exhausted every placement strategy.
type PlacementFailure struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Area   float64 `json:"area"`
	Reason string  `json:"reason"`
}

// Diagnostics collects non-fatal outcomes of one synthesis run.
type Diagnostics struct {
	PlacementFailures []PlacementFailure `json:"placement_failures,omitempty"`
	EntranceFailure   string             `json:"entrance_failure,omitempty"`
	Notes             []string           `json:"notes,omitempty"`
}

// Layout is the complete 2D result of one synthesis run.
type Layout struct {
	// Hub is the name of the anchor room.
	Hub string
	// Order lists room names in placement order; every iteration over
	// rooms that affects output uses it.
	Order []string
	// Rooms maps room name to placed room.
	Rooms map[string]PlacedRoom
	// Adjacency holds accepted edges only.
	Adjacency []AdjacencyEdge
	// Rejected holds rule-rejected edges; they only affect scoring.
	Rejected []AdjacencyEdge
	// Corridors is the union of corridor pieces, nil when none were needed.
	Corridors orb.MultiPolygon
	// Doors is the union of interior openings, nil when none.
	Doors orb.MultiPolygon
	// Entrance is the main door cut, nil when no exterior wall qualified.
	Entrance orb.Polygon
	// Openings lists every individual cut, the entrance included.
	Openings []Opening
	// StructuralScore is 100 minus rule and entrance penalties, in [0,100].
	StructuralScore int
	// Seed reproduces this layout.
	Seed int64
	// Diagnostics holds non-fatal failures.
	Diagnostics Diagnostics
}

// RoomList returns the rooms in placement order.
func (l *Layout) RoomList() []PlacedRoom {
	out := make([]PlacedRoom, 0, len(l.Order))
	for _, name := range l.Order {
		if r, ok := l.Rooms[name]; ok {
			out = append(out, r)
		}
	}

	return out
}

// Polygons returns room outlines in placement order.
func (l *Layout) Polygons() []orb.Polygon {
	rooms := l.RoomList()
	out := make([]orb.Polygon, len(rooms))
	for i, r := range rooms {
		out[i] = r.Polygon()
	}

	return out
}

// RoomPolygons returns every room outline keyed by name.
func (l *Layout) RoomPolygons() map[string]orb.Polygon {
	out := make(map[string]orb.Polygon, len(l.Rooms))
	for name, r := range l.Rooms {
		out[name] = r.Polygon()
	}

	return out
}

// HasEntrance reports whether an entrance was cut.
func (l *Layout) HasEntrance() bool { return len(l.Entrance) > 0 }

// Neighbors returns the accepted neighbours of name, in edge order.
func (l *Layout) Neighbors(name string) []string {
	var out []string
	for _, e := range l.Adjacency {
		if e.Has(name) {
			out = append(out, e.Other(name))
		}
	}

	return out
}

// Accepted reports whether an accepted edge joins a and b.
func (l *Layout) Accepted(a, b string) bool {
	for _, e := range l.Adjacency {
		if e.Has(a) && e.Has(b) && a != b {
			return true
		}
	}

	return false
}
