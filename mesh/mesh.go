package mesh

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/floorplan/geometry"
)

// Mesh is an ordered list of faces.
type Mesh struct {
	Faces []Face
}

// Append adds faces in order.
func (m *Mesh) Append(fs ...Face) { m.Faces = append(m.Faces, fs...) }

// Count returns how many faces carry part.
func (m *Mesh) Count(part Part) int {
	n := 0
	for _, f := range m.Faces {
		if f.Part == part {
			n++
		}
	}

	return n
}

// Bounds returns the axis-aligned extent of every vertex; ok is false for
// an empty mesh.
func (m *Mesh) Bounds() (lo, hi Vec3, ok bool) {
	lo = Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, f := range m.Faces {
		for _, v := range f.Vertices {
			lo = Vec3{math.Min(lo.X, v.X), math.Min(lo.Y, v.Y), math.Min(lo.Z, v.Z)}
			hi = Vec3{math.Max(hi.X, v.X), math.Max(hi.Y, v.Y), math.Max(hi.Z, v.Z)}
			ok = true
		}
	}
	if !ok {
		return Vec3{}, Vec3{}, false
	}

	return lo, hi, true
}

// Triangles fan-triangulates every face with at least three vertices.
// Vertices are not shared between faces; colours run parallel to verts.
func (m *Mesh) Triangles() (verts []Vec3, colors []RGB, tris [][3]int) {
	for _, f := range m.Faces {
		if len(f.Vertices) < 3 {
			continue
		}
		base := len(verts)
		for _, v := range f.Vertices {
			verts = append(verts, v)
			colors = append(colors, f.Color)
		}
		for i := 1; i < len(f.Vertices)-1; i++ {
			tris = append(tris, [3]int{base, base + i, base + i + 1})
		}
	}

	return verts, colors, tris
}

// WritePLY writes m as an ASCII PLY with per-vertex colour.
func (m *Mesh) WritePLY(w io.Writer) error {
	verts, colors, tris := m.Triangles()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ply\nformat ascii 1.0\ncomment floorplan\n")
	fmt.Fprintf(bw, "element vertex %d\n", len(verts))
	fmt.Fprintf(bw, "property double x\nproperty double y\nproperty double z\n")
	fmt.Fprintf(bw, "property uchar red\nproperty uchar green\nproperty uchar blue\n")
	fmt.Fprintf(bw, "element face %d\n", len(tris))
	fmt.Fprintf(bw, "property list uchar int vertex_indices\nend_header\n")
	for i, v := range verts {
		c := colors[i]
		fmt.Fprintf(bw, "%g %g %g %d %d %d\n", v.X, v.Y, v.Z, c.R, c.G, c.B)
	}
	for _, t := range tris {
		fmt.Fprintf(bw, "3 %d %d %d\n", t[0], t[1], t[2])
	}

	return bw.Flush()
}

// Prism extrudes a closed ring between zBottom and zTop: one side face per
// edge, a top face and a reversed bottom face.
func Prism(ring orb.Ring, zBottom, zTop float64, part Part, color RGB, room string) []Face {
	pts := []orb.Point(ring)
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil
	}
	faces := make([]Face, 0, len(pts)+2)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		faces = append(faces, NewFace(part, color, room,
			Vec3{a[0], a[1], zBottom}, Vec3{b[0], b[1], zBottom},
			Vec3{b[0], b[1], zTop}, Vec3{a[0], a[1], zTop}))
	}
	top := make([]Vec3, len(pts))
	bottom := make([]Vec3, len(pts))
	for i, p := range pts {
		top[i] = Vec3{p[0], p[1], zTop}
		q := pts[len(pts)-1-i]
		bottom[i] = Vec3{q[0], q[1], zBottom}
	}

	faces = append(faces, NewFace(part, color, room, top...), NewFace(part, color, room, bottom...))

	return span(faces, zBottom, zTop)
}

// WallStrip extrudes a wall centre line into a box of the given thickness:
// outer, inner, start cap, end cap and top faces.
func WallStrip(s geometry.Segment, zBottom, zTop, thickness float64, color RGB) []Face {
	dir, ok := s.Direction()
	if !ok {
		return nil
	}
	h := thickness / 2
	nx, ny := -dir[1]*h, dir[0]*h
	x1, y1, x2, y2 := s.P1[0], s.P1[1], s.P2[0], s.P2[1]
	in1, in2 := Vec3{x1 + nx, y1 + ny, 0}, Vec3{x2 + nx, y2 + ny, 0}
	out1, out2 := Vec3{x1 - nx, y1 - ny, 0}, Vec3{x2 - nx, y2 - ny, 0}
	at := func(v Vec3, z float64) Vec3 { v.Z = z; return v }

	return span([]Face{
		NewFace(Wall, color, "", at(out1, zBottom), at(out2, zBottom), at(out2, zTop), at(out1, zTop)),
		NewFace(Wall, color, "", at(in2, zBottom), at(in1, zBottom), at(in1, zTop), at(in2, zTop)),
		NewFace(Wall, color, "", at(out1, zBottom), at(in1, zBottom), at(in1, zTop), at(out1, zTop)),
		NewFace(Wall, color, "", at(in2, zBottom), at(out2, zBottom), at(out2, zTop), at(in2, zTop)),
		NewFace(Wall, color, "", at(out1, zTop), at(out2, zTop), at(in2, zTop), at(in1, zTop)),
	}, zBottom, zTop)
}

// span tags every face with the height range of the solid it belongs to.
func span(fs []Face, zBottom, zTop float64) []Face {
	for i := range fs {
		fs[i].ZMin, fs[i].ZMax = zBottom, zTop
	}

	return fs
}
