package roomgraph_test

import (
	"testing"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
	"github.com/katalvlaran/floorplan/roomgraph"
)

// BenchmarkDetect_Grid measures contact detection on a 10×10 grid of rooms.
func BenchmarkDetect_Grid(b *testing.B) {
	const n = 10
	rooms := make([]layout.PlacedRoom, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, y := float64(i)*3, float64(j)*3
			rooms = append(rooms, layout.PlacedRoom{
				Name: layout.RoomName("room", i*n+j+1),
				Type: "room",
				Rect: geometry.NewRect(x, y, x+3, y+3),
			})
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = roomgraph.Detect(rooms, roomgraph.DefaultMinContact)
	}
}

// BenchmarkPathMetrics_Chain runs all-pairs hops on a 200-room chain.
func BenchmarkPathMetrics_Chain(b *testing.B) {
	g := roomgraph.NewGraph()
	for i := 1; i < 200; i++ {
		_ = g.AddLink(layout.RoomName("room", i), layout.RoomName("room", i+1))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = roomgraph.PathMetrics(g, "room_1")
	}
}
