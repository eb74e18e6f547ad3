package opening

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
)

// Request asks for one opening between two rooms.
type Request struct {
	RoomA, RoomB string
	Width        float64
	Kind         layout.OpeningKind
}

// openPlan lists type pairs joined without a door.
var openPlan = map[[2]string]bool{
	{"kitchen", "living"}: true,
	{"dining", "living"}:  true,
	{"dining", "kitchen"}: true,
}

// WidthFor returns the default opening width and kind for two room types.
func WidthFor(typeA, typeB string, opts ...Option) (float64, layout.OpeningKind) {
	o, _ := build(opts)
	if typeB < typeA {
		typeA, typeB = typeB, typeA
	}
	if openPlan[[2]string{typeA, typeB}] {
		return o.OpenWidth, layout.OpenPlan
	}

	return o.DoorWidth, layout.Door
}

// Cut centres a rectangle of the given width and depth on wall, clamping
// the width to share·length. It returns the polygon and the effective width.
func Cut(wall geometry.Segment, width, depth, share float64) (orb.Polygon, float64, bool) {
	dir, ok := wall.Direction()
	if !ok {
		return nil, 0, false
	}
	eff := math.Min(width, share*wall.Length())
	if eff <= 0 {
		return nil, 0, false
	}

	return geometry.OrientedRect(wall.Midpoint(), dir, eff/2, depth/2), eff, true
}

// Doors cuts one opening per request whose rooms share a wall longer than
// the minimum. Requests naming unknown rooms or rooms without such a wall
// are skipped. The union of all cuts is nil when nothing was cut.
func Doors(rooms map[string]layout.PlacedRoom, requests []Request, opts ...Option) ([]layout.Opening, orb.MultiPolygon, error) {
	o, err := build(opts)
	if err != nil {
		return nil, nil, err
	}

	var (
		out   []layout.Opening
		polys []orb.Polygon
	)
	for _, rq := range requests {
		a, okA := rooms[rq.RoomA]
		b, okB := rooms[rq.RoomB]
		if !okA || !okB {
			continue
		}
		wall, ok := geometry.LongestShared(a.Rect, b.Rect)
		if !ok || wall.Length() <= o.MinWall {
			continue
		}
		poly, eff, ok := Cut(wall, rq.Width, o.DoorDepth, o.MaxWallShare)
		if !ok {
			continue
		}
		kind := rq.Kind
		if kind == "" {
			kind = layout.Door
		}
		out = append(out, layout.Opening{RoomA: rq.RoomA, RoomB: rq.RoomB, Width: eff, Kind: kind, Polygon: poly})
		polys = append(polys, poly)
	}
	if len(polys) == 0 {
		return out, nil, nil
	}
	union, err := geometry.UnionAll(polys)
	if err != nil {
		return nil, nil, err
	}

	return out, union, nil
}
