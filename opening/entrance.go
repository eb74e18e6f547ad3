package opening

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
)

// ExteriorWalls returns the pieces of hub's edges not touched by any other
// room, longer than minLen, in edge order (bottom, right, top, left).
// Shared pieces and isolated contact points are removed with a 1e-6 margin.
func ExteriorWalls(hub geometry.Rect, others []geometry.Rect, minLen float64) []geometry.Segment {
	var out []geometry.Segment
	for _, edge := range hub.Edges() {
		l := edge.Length()
		if l <= geometry.Eps {
			continue
		}
		margin := exteriorEps / l
		var cuts []geometry.Interval
		for _, o := range others {
			for _, oe := range o.Edges() {
				if s, ok := edge.Overlap(oe); ok {
					t0, t1 := edge.Param(s.P1), edge.Param(s.P2)
					cuts = append(cuts, geometry.Interval{Lo: math.Min(t0, t1) - margin, Hi: math.Max(t0, t1) + margin})
				}
			}
			for _, v := range o.Ring()[:4] {
				if t, on := onSegment(edge, v); on {
					cuts = append(cuts, geometry.Interval{Lo: t - margin, Hi: t + margin})
				}
			}
		}
		out = append(out, edge.Subtract(cuts, minLen)...)
	}

	return out
}

// onSegment reports whether p lies on s within exteriorEps and returns its parameter.
func onSegment(s geometry.Segment, p orb.Point) (float64, bool) {
	t := s.Param(p)
	if t < 0 || t > 1 {
		return 0, false
	}
	q := s.At(t)
	if math.Hypot(q[0]-p.X(), q[1]-p.Y()) > exteriorEps {
		return 0, false
	}

	return t, true
}

// Entrance cuts the main door into an exterior wall of hub. Walls at least
// one door wide compete; one of the longest few is chosen at random and
// the door is centred at a random offset in [0.2, 0.8] of its length,
// pulled inwards as needed so the cut stays within the wall.
func Entrance(hub layout.PlacedRoom, others []layout.PlacedRoom, rng *rand.Rand, opts ...Option) (layout.Opening, error) {
	if rng == nil {
		return layout.Opening{}, ErrNilRand
	}
	o, err := build(opts)
	if err != nil {
		return layout.Opening{}, err
	}

	rects := make([]geometry.Rect, 0, len(others))
	for _, r := range others {
		if r.Name != hub.Name {
			rects = append(rects, r.Rect)
		}
	}
	var walls []geometry.Segment
	for _, w := range ExteriorWalls(hub.Rect, rects, o.MinWall) {
		if w.Length() >= o.DoorWidth {
			walls = append(walls, w)
		}
	}
	if len(walls) == 0 {
		return layout.Opening{}, fmt.Errorf("%w: hub %q", ErrNoExteriorWall, hub.Name)
	}
	sort.SliceStable(walls, func(i, j int) bool { return walls[i].Length() > walls[j].Length() })

	k := min(o.EntranceChoice, len(walls))
	wall := walls[rng.Intn(k)]
	t := 0.2 + rng.Float64()*0.6

	l := wall.Length()
	width := math.Min(o.DoorWidth, o.MaxWallShare*l)
	half := width / 2 / l
	t = math.Max(half, math.Min(1-half, t))

	dir, _ := wall.Direction()
	poly := geometry.OrientedRect(wall.At(t), dir, width/2, o.EntranceDepth/2)

	return layout.Opening{RoomA: hub.Name, RoomB: layout.Exterior, Width: width, Kind: layout.Entrance, Polygon: poly}, nil
}
