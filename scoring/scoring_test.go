package scoring_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
	"github.com/katalvlaran/floorplan/scoring"
	"github.com/katalvlaran/floorplan/zone"
)

func build(rects ...geometry.Rect) *layout.Layout {
	l := &layout.Layout{Rooms: map[string]layout.PlacedRoom{}}
	for i, r := range rects {
		name := layout.RoomName("room", i+1)
		l.Order = append(l.Order, name)
		l.Rooms[name] = layout.PlacedRoom{Name: name, Type: "living", Zone: zone.Public, Rect: r}
	}
	if len(rects) > 0 {
		l.Hub = l.Order[0]
	}

	return l
}

//----------------------------------------------------------------------------//
// Features and metrics
//----------------------------------------------------------------------------//

// TestEvaluate_SingleRoom: a convex footprint is fully efficient.
func TestEvaluate_SingleRoom(t *testing.T) {
	l := build(geometry.NewRect(0, 0, 4, 4))
	f := scoring.Extract(l)
	assert.InDelta(t, 16, f.TotalArea, 1e-9)
	assert.InDelta(t, 16, f.HullArea, 1e-9)
	assert.InDelta(t, 16, f.Exposure, 1e-9)
	assert.Zero(t, f.AvgDistance)
	assert.Equal(t, 1, f.RoomCount)

	s := scoring.Evaluate(l)
	assert.Equal(t, scoring.Scores{Efficiency: 100, Privacy: 0, Circulation: 100, Daylight: 19, Average: 54}, s)
}

// TestEvaluate_LShape checks every metric on a concave footprint.
func TestEvaluate_LShape(t *testing.T) {
	l := build(geometry.NewRect(0, 0, 6, 4), geometry.NewRect(0, 4, 3, 7))
	f := scoring.Extract(l)
	assert.InDelta(t, 33, f.TotalArea, 1e-9)
	assert.InDelta(t, 37.5, f.HullArea, 1e-9)
	assert.InDelta(t, 26, f.Exposure, 1e-9)
	assert.InDelta(t, 3.81, f.AvgDistance, 1e-9)
	assert.False(t, f.Approximated)

	s := scoring.Score(f)
	assert.Equal(t, 88, s.Efficiency)
	assert.Equal(t, 30, s.Privacy)
	assert.Equal(t, 86, s.Circulation)
	assert.Equal(t, 31, s.Daylight)
	assert.Equal(t, 59, s.Average)
}

// TestEvaluate_Empty scores an empty layout as zeros.
func TestEvaluate_Empty(t *testing.T) {
	assert.Equal(t, scoring.Scores{}, scoring.Evaluate(build()))
	assert.Equal(t, scoring.Features{}, scoring.Extract(build()))
}

// TestScore_Bounds sweeps random layouts and checks every metric stays in range.
func TestScore_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		var rects []geometry.Rect
		x := 0.0
		for n := 1 + rng.Intn(6); n > 0; n-- {
			w := 1 + rng.Float64()*20
			rects = append(rects, geometry.NewRect(x, 0, x+w, 1+rng.Float64()*20))
			x += w
		}
		s := scoring.Evaluate(build(rects...))
		for name, v := range map[string]int{
			"efficiency": s.Efficiency, "privacy": s.Privacy, "circulation": s.Circulation,
			"daylight": s.Daylight, "average": s.Average,
		} {
			assert.GreaterOrEqual(t, v, 0, fmt.Sprintf("%s case %d", name, i))
			assert.LessOrEqual(t, v, 100, fmt.Sprintf("%s case %d", name, i))
		}
	}
}

// TestScore_DistanceTradeOff: more separation raises privacy and lowers circulation.
func TestScore_DistanceTradeOff(t *testing.T) {
	near := scoring.Score(scoring.Features{TotalArea: 10, HullArea: 10, AvgDistance: 3, RoomCount: 2})
	far := scoring.Score(scoring.Features{TotalArea: 10, HullArea: 10, AvgDistance: 8, RoomCount: 2})
	assert.Greater(t, far.Privacy, near.Privacy)
	assert.Less(t, far.Circulation, near.Circulation)

	huge := scoring.Score(scoring.Features{TotalArea: 10, HullArea: 0, AvgDistance: 100, Exposure: 500, RoomCount: 2})
	assert.Equal(t, 100, huge.Efficiency)
	assert.Equal(t, 100, huge.Privacy)
	assert.Equal(t, 0, huge.Circulation)
	assert.Equal(t, 100, huge.Daylight)
}

//----------------------------------------------------------------------------//
// Structural
//----------------------------------------------------------------------------//

// TestStructural covers penalties, clamping and monotonicity.
func TestStructural(t *testing.T) {
	assert.Equal(t, 100, scoring.Structural(0, true))
	assert.Equal(t, 80, scoring.Structural(0, false))
	assert.Equal(t, 70, scoring.Structural(3, true))
	assert.Equal(t, 0, scoring.Structural(12, false))

	for _, entrance := range []bool{true, false} {
		prev := scoring.Structural(0, entrance)
		for r := 1; r <= 15; r++ {
			cur := scoring.Structural(r, entrance)
			require.LessOrEqual(t, cur, prev)
			require.GreaterOrEqual(t, cur, 0)
			prev = cur
		}
	}
}
