package roomgraph

import (
	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
)

// DefaultMinContact is the shortest shared wall counted as a contact.
const DefaultMinContact = 0.5

// Contact is a pair of rooms sharing more than the minimum wall length.
// RoomA < RoomB lexicographically.
type Contact struct {
	RoomA, RoomB string
	TypeA, TypeB string
	Length       float64
}

// Detect returns every contact among rooms whose shared boundary exceeds
// minContact. Non-positive minContact selects DefaultMinContact.
func Detect(rooms []layout.PlacedRoom, minContact float64) []Contact {
	if minContact <= 0 {
		minContact = DefaultMinContact
	}
	var out []Contact
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			a, b := rooms[i], rooms[j]
			if a.Rect.IsEmpty() || b.Rect.IsEmpty() {
				continue
			}
			l := geometry.SharedLength(a.Rect, b.Rect)
			if l <= minContact {
				continue
			}
			if b.Name < a.Name {
				a, b = b, a
			}
			out = append(out, Contact{RoomA: a.Name, RoomB: b.Name, TypeA: a.Type, TypeB: b.Type, Length: l})
		}
	}

	return out
}

// FromEdges builds a graph holding every room in order and one link per edge.
func FromEdges(order []string, edges []layout.AdjacencyEdge) *Graph {
	g := NewGraph()
	for _, name := range order {
		_ = g.AddRoom(name)
	}
	for _, e := range edges {
		_ = g.AddLink(e.RoomA, e.RoomB)
	}

	return g
}
