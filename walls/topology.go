package walls

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
)

// Kind classifies a wall segment by how many rooms share it.
type Kind int

const (
	Exterior Kind = iota + 1
	Interior
	Anomalous
)

func (k Kind) String() string {
	switch k {
	case Exterior:
		return "exterior"
	case Interior:
		return "interior"
	default:
		return "anomalous"
	}
}

// Segment is a canonical wall piece and the rooms that own it.
type Segment struct {
	geometry.Segment
	Rooms []string
}

// Kind reports exterior, interior or anomalous.
func (s Segment) Kind() Kind {
	switch len(s.Rooms) {
	case 1:
		return Exterior
	case 2:
		return Interior
	default:
		return Anomalous
	}
}

// Topology builds the canonical wall map of rooms, in first-seen order.
// Coordinates are snapped to grid (<= 0 disables snapping).
func Topology(rooms []layout.PlacedRoom, grid float64) []Segment {
	rects := make([]geometry.Rect, len(rooms))
	for i, r := range rooms {
		rects[i] = snapRect(r.Rect, grid)
	}

	var out []Segment
	index := map[geometry.Segment]int{}
	for i, r := range rooms {
		for _, edge := range rects[i].Edges() {
			var ts []float64
			for j, o := range rects {
				if j == i {
					continue
				}
				for _, v := range o.Ring()[:4] {
					if t, ok := onEdge(edge, v); ok {
						ts = append(ts, t)
					}
				}
			}
			for _, piece := range edge.SplitAt(ts) {
				key := snapSegment(piece, grid).Canonical()
				if k, ok := index[key]; ok {
					if !contains(out[k].Rooms, r.Name) {
						out[k].Rooms = append(out[k].Rooms, r.Name)
					}
					continue
				}
				index[key] = len(out)
				out = append(out, Segment{Segment: key, Rooms: []string{r.Name}})
			}
		}
	}

	return out
}

func onEdge(s geometry.Segment, p orb.Point) (float64, bool) {
	t := s.Param(p)
	if t <= geometry.Eps || t >= 1-geometry.Eps {
		return 0, false
	}
	q := s.At(t)
	if math.Hypot(q[0]-p[0], q[1]-p[1]) > 1e-6 {
		return 0, false
	}

	return t, true
}

func snapRect(r geometry.Rect, grid float64) geometry.Rect {
	return geometry.NewRect(
		geometry.Snap(r.MinX, grid), geometry.Snap(r.MinY, grid),
		geometry.Snap(r.MaxX, grid), geometry.Snap(r.MaxY, grid))
}

func snapSegment(s geometry.Segment, grid float64) geometry.Segment {
	return geometry.Segment{P1: geometry.SnapPoint(s.P1, grid), P2: geometry.SnapPoint(s.P2, grid)}
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
