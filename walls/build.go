package walls

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
	"github.com/katalvlaran/floorplan/mesh"
	"github.com/katalvlaran/floorplan/zone"
)

// Report summarises one Build call.
type Report struct {
	Exterior   int      `json:"exterior"`
	Interior   int      `json:"interior"`
	Ignored    int      `json:"ignored"`
	Reduced    int      `json:"reduced"`
	Pieces     int      `json:"pieces"`
	DoorPanels int      `json:"door_panels"`
	Notes      []string `json:"notes,omitempty"`
}

// Builder holds validated options and a logger for repeated Build calls.
type Builder struct {
	opts   Options
	logger *slog.Logger
}

// NewBuilder validates opts once.
func NewBuilder(logger *slog.Logger, opts ...Option) (*Builder, error) {
	o, err := build(opts)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Builder{opts: o, logger: logger}, nil
}

// Build is a convenience wrapper around NewBuilder(nil, opts...).Build.
func Build(l *layout.Layout, opts ...Option) (*mesh.Mesh, *Report, error) {
	b, err := NewBuilder(nil, opts...)
	if err != nil {
		return nil, nil, err
	}
	m, rep := b.Build(l)

	return m, rep, nil
}

// Build produces floors, walls and door panels for l.
func (b *Builder) Build(l *layout.Layout) (*mesh.Mesh, *Report) {
	o := b.opts
	m := &mesh.Mesh{}
	rep := &Report{}
	rooms := l.RoomList()

	for i, r := range rooms {
		m.Append(mesh.Prism(r.Rect.Ring(), 0, o.FloorThickness, mesh.Floor, mesh.RoomColor(i), r.Name)...)
	}

	cuts := make([]geometry.Rect, 0, len(l.Openings))
	for _, op := range l.Openings {
		if len(op.Polygon) == 0 {
			continue
		}
		cuts = append(cuts, geometry.RectFromPolygon(op.Polygon).Expand(o.CutBuffer))
	}

	zBottom := o.FloorThickness
	for _, seg := range Topology(rooms, o.Snap) {
		switch seg.Kind() {
		case Exterior:
			rep.Exterior++
		case Interior:
			rep.Interior++
		default:
			rep.Ignored++
			rep.Notes = append(rep.Notes, fmt.Sprintf("segment %v-%v shared by %d rooms %v, skipped",
				seg.P1, seg.P2, len(seg.Rooms), seg.Rooms))
			continue
		}
		if seg.Length() < o.MinSegment {
			continue
		}

		height, reduced := b.height(l, seg)
		if reduced {
			rep.Reduced++
		}

		var ivs []geometry.Interval
		for _, c := range cuts {
			iv, ok := seg.Clip(c)
			if !ok {
				continue
			}
			ivs = append(ivs, iv)
			if iv.Len()*seg.Length() > o.MinDoorPanel {
				m.Append(b.panel(seg.Sub(iv))...)
				rep.DoorPanels++
			}
		}
		for _, piece := range seg.Subtract(ivs, o.MinPiece) {
			m.Append(mesh.WallStrip(piece, zBottom, zBottom+height, o.WallThickness, mesh.WallColor)...)
			rep.Pieces++
		}
	}

	b.logger.Debug("walls built",
		slog.Int("exterior", rep.Exterior),
		slog.Int("interior", rep.Interior),
		slog.Int("pieces", rep.Pieces),
		slog.Int("door_panels", rep.DoorPanels),
		slog.Int("faces", len(m.Faces)))
	for _, n := range rep.Notes {
		b.logger.Warn("wall topology anomaly", slog.String("note", n))
	}

	return m, rep
}

// height returns the wall height for seg and whether it was reduced.
func (b *Builder) height(l *layout.Layout, seg Segment) (float64, bool) {
	o := b.opts
	nearHub := false
	for _, name := range seg.Rooms {
		r, ok := l.Rooms[name]
		if !ok || !zone.IsOutdoor(r.Type) {
			return o.WallHeight, false
		}
		if l.Hub != "" && l.Accepted(name, l.Hub) {
			nearHub = true
		}
	}
	if nearHub {
		return o.CurbHeight, true
	}

	return o.ParapetRatio * o.WallHeight, true
}

func (b *Builder) panel(cut geometry.Segment) []mesh.Face {
	o := b.opts
	dir, ok := cut.Direction()
	if !ok {
		return nil
	}
	poly := geometry.OrientedRect(cut.Midpoint(), dir, cut.Length()/2, o.WallThickness*o.DoorPanelRatio/2)

	return mesh.Prism(poly[0], o.FloorThickness, o.FloorThickness+o.DoorHeight, mesh.DoorPanel, mesh.DoorPanelColor, "")
}
