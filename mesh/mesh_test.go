package mesh_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/mesh"
)

// TestParseHex covers valid and malformed colours.
func TestParseHex(t *testing.T) {
	c, err := mesh.ParseHex("#A8DADC")
	require.NoError(t, err)
	assert.Equal(t, mesh.RGB{R: 0xA8, G: 0xDA, B: 0xDC}, c)
	assert.Equal(t, "#A8DADC", c.Hex())

	_, err = mesh.ParseHex("#12345")
	assert.ErrorIs(t, err, mesh.ErrBadColor)
	_, err = mesh.ParseHex("zzzzzz")
	assert.ErrorIs(t, err, mesh.ErrBadColor)

	assert.Equal(t, mesh.RoomColor(0), mesh.RoomColor(8))
	assert.NotEqual(t, mesh.RoomColor(0), mesh.RoomColor(1))
}

// TestPrism extrudes a rectangle into six faces.
func TestPrism(t *testing.T) {
	faces := mesh.Prism(geometry.NewRect(0, 0, 2, 1).Ring(), 0, 0.05, mesh.Floor, mesh.RoomColor(0), "living_1")
	require.Len(t, faces, 6)
	for _, f := range faces {
		assert.Equal(t, mesh.Floor, f.Part)
		assert.Equal(t, "living_1", f.Room)
	}
	// Caps carry the slab's range, not their own flat height.
	for i, f := range faces {
		assert.Equal(t, 0.0, f.ZMin, "face %d", i)
		assert.Equal(t, 0.05, f.ZMax, "face %d", i)
	}
	assert.Equal(t, 0.05, faces[4].Vertices[0].Z, "top face")
	assert.Equal(t, 0.0, faces[5].Vertices[0].Z, "bottom face")
	assert.Nil(t, mesh.Prism(orb.Ring{{0, 0}, {1, 1}}, 0, 1, mesh.Floor, mesh.WallColor, ""))
}

// TestWallStrip builds a thin box around a centre line.
func TestWallStrip(t *testing.T) {
	faces := mesh.WallStrip(geometry.Segment{P1: orb.Point{0, 0}, P2: orb.Point{4, 0}}, 0.05, 2.85, 0.15, mesh.WallColor)
	require.Len(t, faces, 5)
	m := &mesh.Mesh{}
	m.Append(faces...)
	lo, hi, ok := m.Bounds()
	require.True(t, ok)
	assert.InDelta(t, -0.075, lo.Y, 1e-12)
	assert.InDelta(t, 0.075, hi.Y, 1e-12)
	assert.InDelta(t, 2.85, hi.Z, 1e-12)
	assert.Equal(t, 5, m.Count(mesh.Wall))
	for _, f := range faces {
		assert.Equal(t, 0.05, f.ZMin)
		assert.Equal(t, 2.85, f.ZMax)
	}

	assert.Nil(t, mesh.WallStrip(geometry.Segment{}, 0, 1, 0.1, mesh.WallColor))
}

// TestTrianglesAndPLY checks fan triangulation and the PLY header.
func TestTrianglesAndPLY(t *testing.T) {
	m := &mesh.Mesh{}
	m.Append(mesh.Prism(geometry.NewRect(0, 0, 1, 1).Ring(), 0, 1, mesh.DoorPanel, mesh.DoorPanelColor, "")...)
	verts, colors, tris := m.Triangles()
	assert.Len(t, verts, 6*4)
	assert.Len(t, colors, len(verts))
	assert.Len(t, tris, 6*2)

	var buf bytes.Buffer
	require.NoError(t, m.WritePLY(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "ply\nformat ascii 1.0\n"))
	assert.Contains(t, out, "element vertex 24\n")
	assert.Contains(t, out, "element face 12\n")
	assert.Contains(t, out, "215 204 200\n")

	_, _, ok := (&mesh.Mesh{}).Bounds()
	assert.False(t, ok)
}
