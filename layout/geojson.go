package layout

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/zone"
)

// Feature kinds written to the "feature" property.
const (
	FeatureLayout    = "layout"
	FeatureRoom      = "room"
	FeatureCorridors = "corridors"
	FeatureDoors     = "doors"
	FeatureOpening   = "opening"
	FeatureEdge      = "adjacency"
)

// MarshalGeoJSON encodes l as a FeatureCollection: one layout feature
// carrying run-level properties, then rooms in placement order,
// corridors, doors, every opening and every adjacency edge (accepted and
// rejected) drawn between room centres.
func MarshalGeoJSON(l *Layout) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	head := geojson.NewFeature(orb.Point{0, 0})
	head.Properties["feature"] = FeatureLayout
	head.Properties["hub"] = l.Hub
	head.Properties["seed"] = strconv.FormatInt(l.Seed, 10)
	head.Properties["structural_score"] = l.StructuralScore
	head.Properties["order"] = l.Order
	head.Properties["diagnostics"] = l.Diagnostics
	fc.Append(head)

	for _, r := range l.RoomList() {
		f := geojson.NewFeature(r.Polygon())
		f.Properties["feature"] = FeatureRoom
		f.Properties["name"] = r.Name
		f.Properties["type"] = r.Type
		f.Properties["zone"] = r.Zone.String()
		f.Properties["area"] = r.Area()
		fc.Append(f)
	}
	if len(l.Corridors) > 0 {
		f := geojson.NewFeature(l.Corridors)
		f.Properties["feature"] = FeatureCorridors
		fc.Append(f)
	}
	if len(l.Doors) > 0 {
		f := geojson.NewFeature(l.Doors)
		f.Properties["feature"] = FeatureDoors
		fc.Append(f)
	}
	for _, o := range l.Openings {
		f := geojson.NewFeature(o.Polygon)
		f.Properties["feature"] = FeatureOpening
		f.Properties["room_a"] = o.RoomA
		f.Properties["room_b"] = o.RoomB
		f.Properties["width"] = o.Width
		f.Properties["kind"] = string(o.Kind)
		fc.Append(f)
	}
	appendEdges := func(edges []AdjacencyEdge) {
		for _, e := range edges {
			a, okA := l.Rooms[e.RoomA]
			b, okB := l.Rooms[e.RoomB]
			if !okA || !okB {
				continue
			}
			f := geojson.NewFeature(orb.LineString{a.Rect.Center(), b.Rect.Center()})
			f.Properties["feature"] = FeatureEdge
			f.Properties["room_a"] = e.RoomA
			f.Properties["room_b"] = e.RoomB
			f.Properties["valid"] = e.Valid
			f.Properties["kind"] = string(e.Kind)
			f.Properties["reason"] = e.Reason
			f.Properties["contact"] = e.Contact
			fc.Append(f)
		}
	}
	appendEdges(l.Adjacency)
	appendEdges(l.Rejected)

	return fc.MarshalJSON()
}

// UnmarshalGeoJSON decodes a document produced by MarshalGeoJSON.
func UnmarshalGeoJSON(data []byte) (*Layout, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeoJSON, err)
	}

	l := &Layout{Rooms: make(map[string]PlacedRoom)}
	seenHead := false
	for i, f := range fc.Features {
		switch f.Properties.MustString("feature", "") {
		case FeatureLayout:
			seenHead = true
			l.Hub = f.Properties.MustString("hub", "")
			if l.Seed, err = strconv.ParseInt(f.Properties.MustString("seed", "0"), 10, 64); err != nil {
				return nil, fmt.Errorf("%w: seed: %v", ErrGeoJSON, err)
			}
			l.StructuralScore = int(f.Properties.MustFloat64("structural_score", 0))
			if err = remarshal(f.Properties["order"], &l.Order); err != nil {
				return nil, fmt.Errorf("%w: order: %v", ErrGeoJSON, err)
			}
			if err = remarshal(f.Properties["diagnostics"], &l.Diagnostics); err != nil {
				return nil, fmt.Errorf("%w: diagnostics: %v", ErrGeoJSON, err)
			}
		case FeatureRoom:
			p, ok := f.Geometry.(orb.Polygon)
			if !ok {
				return nil, fmt.Errorf("%w: feature %d: room geometry is %T", ErrGeoJSON, i, f.Geometry)
			}
			name := f.Properties.MustString("name", "")
			if name == "" {
				return nil, fmt.Errorf("%w: feature %d: room without name", ErrGeoJSON, i)
			}
			l.Rooms[name] = PlacedRoom{
				Name: name,
				Type: f.Properties.MustString("type", ""),
				Zone: zone.Zone(f.Properties.MustString("zone", string(zone.Other))),
				Rect: geometry.RectFromPolygon(p),
			}
		case FeatureCorridors:
			l.Corridors = asMultiPolygon(f.Geometry)
		case FeatureDoors:
			l.Doors = asMultiPolygon(f.Geometry)
		case FeatureOpening:
			p, _ := f.Geometry.(orb.Polygon)
			o := Opening{
				RoomA:   f.Properties.MustString("room_a", ""),
				RoomB:   f.Properties.MustString("room_b", ""),
				Width:   f.Properties.MustFloat64("width", 0),
				Kind:    OpeningKind(f.Properties.MustString("kind", string(Door))),
				Polygon: p,
			}
			if o.Kind == Entrance {
				l.Entrance = p
			}
			l.Openings = append(l.Openings, o)
		case FeatureEdge:
			e := AdjacencyEdge{
				RoomA:   f.Properties.MustString("room_a", ""),
				RoomB:   f.Properties.MustString("room_b", ""),
				Valid:   f.Properties.MustBool("valid", false),
				Kind:    EdgeKind(f.Properties.MustString("kind", string(Neutral))),
				Reason:  f.Properties.MustString("reason", ""),
				Contact: f.Properties.MustFloat64("contact", 0),
			}
			if e.Valid {
				l.Adjacency = append(l.Adjacency, e)
			} else {
				l.Rejected = append(l.Rejected, e)
			}
		}
	}
	if !seenHead {
		return nil, fmt.Errorf("%w: missing %q feature", ErrGeoJSON, FeatureLayout)
	}
	for _, name := range l.Order {
		if _, ok := l.Rooms[name]; !ok {
			return nil, fmt.Errorf("%w: order names unknown room %q", ErrGeoJSON, name)
		}
	}

	return l, nil
}

func asMultiPolygon(g orb.Geometry) orb.MultiPolygon {
	switch v := g.(type) {
	case orb.MultiPolygon:
		return v
	case orb.Polygon:
		return orb.MultiPolygon{v}
	}

	return nil
}

// remarshal converts a decoded JSON value into dst. Nil src leaves dst untouched.
func remarshal(src interface{}, dst interface{}) error {
	if src == nil {
		return nil
	}
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, dst)
}
