package placement

import (
	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
)

// Builder accumulates placed rooms for one run. It is threaded by pointer
// through every placement call and never shared between runs.
type Builder struct {
	rooms  []layout.PlacedRoom
	byName map[string]int
	counts map[string]int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{byName: make(map[string]int), counts: make(map[string]int)}
}

// Len returns the number of placed rooms.
func (b *Builder) Len() int { return len(b.rooms) }

// Rooms returns the placed rooms in placement order.
func (b *Builder) Rooms() []layout.PlacedRoom {
	return append([]layout.PlacedRoom(nil), b.rooms...)
}

// Room returns the placed room called name.
func (b *Builder) Room(name string) (layout.PlacedRoom, bool) {
	i, ok := b.byName[name]
	if !ok {
		return layout.PlacedRoom{}, false
	}

	return b.rooms[i], true
}

// NamesOf returns, in placement order, the names of placed rooms whose
// type is one of types.
func (b *Builder) NamesOf(types ...string) []string {
	var out []string
	for _, r := range b.rooms {
		for _, t := range types {
			if r.Type == t {
				out = append(out, r.Name)
				break
			}
		}
	}

	return out
}

// Names returns every placed name in placement order.
func (b *Builder) Names() []string {
	out := make([]string, len(b.rooms))
	for i, r := range b.rooms {
		out[i] = r.Name
	}

	return out
}

// Bounds returns the bounding box of everything placed so far.
func (b *Builder) Bounds() (geometry.Rect, bool) {
	rs := make([]geometry.Rect, len(b.rooms))
	for i, r := range b.rooms {
		rs[i] = r.Rect
	}

	return geometry.BoundsOf(rs)
}

// nextName reserves the next per-type name. Failed rooms keep their number.
func (b *Builder) nextName(roomType string) string {
	b.counts[roomType]++

	return layout.RoomName(roomType, b.counts[roomType])
}

func (b *Builder) add(r layout.PlacedRoom) {
	b.byName[r.Name] = len(b.rooms)
	b.rooms = append(b.rooms, r)
}

// fits reports whether r overlaps no placed room and returns its total
// shared boundary with all of them.
func (b *Builder) fits(r geometry.Rect) (float64, bool) {
	contact := 0.0
	for _, p := range b.rooms {
		if p.Rect.OverlapArea(r) > geometry.OverlapTolerance {
			return 0, false
		}
		contact += geometry.SharedLength(p.Rect, r)
	}

	return contact, true
}
