// Package mesh is a minimal polygon-soup 3D model: coloured planar faces,
// fan triangulation and ASCII PLY export.
//
// Faces are stored as ordered vertex loops. Overlapping or touching faces
// are allowed; consumers (viewers, slicers) tolerate them.
package mesh

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadColor indicates a colour string that is not #RRGGBB.
var ErrBadColor = errors.New("mesh: malformed colour")

// Vec3 is a point in model space (metres, Z up).
type Vec3 struct {
	X, Y, Z float64
}

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats c as #RRGGBB.
func (c RGB) Hex() string { return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B) }

// ParseHex parses #RRGGBB (the leading # is optional).
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}

	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func mustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}

	return c
}

// Fixed colours.
var (
	WallColor      = mustHex("#F5F5F5")
	DoorPanelColor = mustHex("#D7CCC8")
)

// palette holds room floor colours, assigned by iteration order.
var palette = [...]RGB{
	mustHex("#A8DADC"),
	mustHex("#F1FAEE"),
	mustHex("#A8E6CF"),
	mustHex("#FFD3B6"),
	mustHex("#FFAAA5"),
	mustHex("#DCEDC1"),
	mustHex("#D4A5A5"),
	mustHex("#9D8189"),
}

// RoomColor returns the palette colour of the i-th room, cycling.
func RoomColor(i int) RGB {
	if i < 0 {
		i = -i
	}

	return palette[i%len(palette)]
}

// Part tags what a face belongs to.
type Part string

const (
	Floor     Part = "floor"
	Wall      Part = "wall"
	DoorPanel Part = "door"
)

// Face is one planar polygon of the model.
type Face struct {
	Vertices   []Vec3
	// ZMin and ZMax span the solid the face belongs to.
	ZMin, ZMax float64
	Part       Part
	Color      RGB
	// Room names the owning room for floors; empty otherwise.
	Room string
}

// NewFace builds a face and records its vertical extent.
func NewFace(part Part, color RGB, room string, vs ...Vec3) Face {
	f := Face{Vertices: vs, Part: part, Color: color, Room: room}
	for i, v := range vs {
		if i == 0 || v.Z < f.ZMin {
			f.ZMin = v.Z
		}
		if i == 0 || v.Z > f.ZMax {
			f.ZMax = v.Z
		}
	}

	return f
}
