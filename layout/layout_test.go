package layout_test

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
	"github.com/katalvlaran/floorplan/zone"
)

//----------------------------------------------------------------------------//
// Specs
//----------------------------------------------------------------------------//

// TestValidateSpecs covers every configuration failure path.
func TestValidateSpecs(t *testing.T) {
	cases := []struct {
		name  string
		specs []layout.RoomSpec
		cause error
		index int
	}{
		{"Empty", nil, layout.ErrEmptySpec, -1},
		{"NoHub", []layout.RoomSpec{{Type: "storage", Area: 5}}, layout.ErrNoHub, -1},
		{"ZeroArea", []layout.RoomSpec{{Type: "living", Area: 20}, {Type: "bedroom", Area: 0}}, layout.ErrInvalidRoom, 1},
		{"NaNArea", []layout.RoomSpec{{Type: "living", Area: math.NaN()}}, layout.ErrInvalidRoom, 0},
		{"BlankType", []layout.RoomSpec{{Type: "  ", Area: 4}}, layout.ErrInvalidRoom, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := layout.ValidateSpecs(tc.specs)
			require.Error(t, err)
			assert.ErrorIs(t, err, layout.ErrConfiguration)
			assert.ErrorIs(t, err, tc.cause)

			var cfgErr *layout.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.index, cfgErr.Index)
		})
	}

	assert.NoError(t, layout.ValidateSpecs([]layout.RoomSpec{{Type: "Dining", Area: 12}}))
}

// TestNormalizeSpecs trims and lower-cases without touching the input.
func TestNormalizeSpecs(t *testing.T) {
	in := []layout.RoomSpec{{Type: " Living ", Area: 20}}
	out := layout.NormalizeSpecs(in)
	assert.Equal(t, "living", out[0].Type)
	assert.Equal(t, " Living ", in[0].Type)
	assert.Equal(t, "bedroom_2", layout.RoomName("bedroom", 2))
}

//----------------------------------------------------------------------------//
// Layout helpers and GeoJSON
//----------------------------------------------------------------------------//

func sampleLayout() *layout.Layout {
	living := layout.PlacedRoom{Name: "living_1", Type: "living", Zone: zone.Public, Rect: geometry.NewRect(0, 0, 6, 4)}
	bed := layout.PlacedRoom{Name: "bedroom_1", Type: "bedroom", Zone: zone.Private, Rect: geometry.NewRect(6, 0, 10, 3.5)}
	kitchen := layout.PlacedRoom{Name: "kitchen_1", Type: "kitchen", Zone: zone.SemiPublic, Rect: geometry.NewRect(0, 4, 3, 7)}
	door := geometry.OrientedRect(orb.Point{6, 1.75}, orb.Point{0, 1}, 0.7, 0.125)
	entrance := geometry.OrientedRect(orb.Point{3, 0}, orb.Point{1, 0}, 0.7, 0.15)

	return &layout.Layout{
		Hub:   "living_1",
		Order: []string{"living_1", "kitchen_1", "bedroom_1"},
		Rooms: map[string]layout.PlacedRoom{living.Name: living, bed.Name: bed, kitchen.Name: kitchen},
		Adjacency: []layout.AdjacencyEdge{
			{RoomA: "bedroom_1", RoomB: "living_1", Valid: true, Kind: layout.Preferred, Reason: "Preferred connection", Contact: 3.5},
		},
		Rejected: []layout.AdjacencyEdge{
			{RoomA: "bedroom_1", RoomB: "kitchen_1", Valid: false, Kind: layout.Forbidden, Reason: "bedroom should not touch kitchen", Contact: 1},
		},
		Doors:    orb.MultiPolygon{door},
		Entrance: entrance,
		Openings: []layout.Opening{
			{RoomA: "bedroom_1", RoomB: "living_1", Width: 1.4, Kind: layout.Door, Polygon: door},
			{RoomA: "living_1", RoomB: layout.Exterior, Width: 1.4, Kind: layout.Entrance, Polygon: entrance},
		},
		StructuralScore: 90,
		Seed:            4242,
		Diagnostics: layout.Diagnostics{
			PlacementFailures: []layout.PlacementFailure{{Name: "garden_1", Type: "garden", Area: 30, Reason: "no free side"}},
		},
	}
}

// TestLayout_Helpers checks ordered views and neighbour lookup.
func TestLayout_Helpers(t *testing.T) {
	l := sampleLayout()
	rooms := l.RoomList()
	require.Len(t, rooms, 3)
	assert.Equal(t, "kitchen_1", rooms[1].Name)
	assert.Len(t, l.Polygons(), 3)
	assert.Len(t, l.RoomPolygons(), 3)
	assert.True(t, l.HasEntrance())
	assert.Equal(t, []string{"bedroom_1"}, l.Neighbors("living_1"))
	assert.True(t, l.Accepted("living_1", "bedroom_1"))
	assert.False(t, l.Accepted("kitchen_1", "bedroom_1"))
}

// TestGeoJSON_RoundTrip encodes and decodes a full layout.
func TestGeoJSON_RoundTrip(t *testing.T) {
	in := sampleLayout()
	data, err := layout.MarshalGeoJSON(in)
	require.NoError(t, err)

	out, err := layout.UnmarshalGeoJSON(data)
	require.NoError(t, err)
	assert.Equal(t, in.Hub, out.Hub)
	assert.Equal(t, in.Order, out.Order)
	assert.Equal(t, in.Seed, out.Seed)
	assert.Equal(t, in.StructuralScore, out.StructuralScore)
	assert.Equal(t, in.Rooms, out.Rooms)
	assert.Equal(t, in.Adjacency, out.Adjacency)
	assert.Equal(t, in.Rejected, out.Rejected)
	assert.Equal(t, in.Entrance, out.Entrance)
	assert.Equal(t, in.Doors, out.Doors)

	// Seeds beyond 2^53 survive the round trip.
	in.Seed = math.MaxInt64 - 1
	data, err = layout.MarshalGeoJSON(in)
	require.NoError(t, err)
	out, err = layout.UnmarshalGeoJSON(data)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), out.Seed)
	assert.Nil(t, out.Corridors)
	assert.Equal(t, in.Openings, out.Openings)
	assert.Equal(t, in.Diagnostics, out.Diagnostics)
}

// TestGeoJSON_Malformed rejects documents that are not layouts.
func TestGeoJSON_Malformed(t *testing.T) {
	_, err := layout.UnmarshalGeoJSON([]byte(`{"type":"FeatureCollection","features":[]}`))
	assert.ErrorIs(t, err, layout.ErrGeoJSON)

	_, err = layout.UnmarshalGeoJSON([]byte(`not json`))
	assert.ErrorIs(t, err, layout.ErrGeoJSON)
}
