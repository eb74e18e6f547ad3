package placement_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/floorplan/placement"
)

// BenchmarkSynthesize_Villa places a thirteen-room house.
func BenchmarkSynthesize_Villa(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = placement.Synthesize(villa, rand.New(rand.NewSource(int64(i))))
	}
}
