package candidate_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorplan/candidate"
	"github.com/katalvlaran/floorplan/layout"
	"github.com/katalvlaran/floorplan/mesh"
	"github.com/katalvlaran/floorplan/synth"
)

var house = []layout.RoomSpec{
	{Type: "living", Area: 30},
	{Type: "bedroom", Area: 15},
	{Type: "kitchen", Area: 10},
	{Type: "bathroom", Area: 6},
	{Type: "balcony", Area: 5},
}

//----------------------------------------------------------------------------//
// Selection
//----------------------------------------------------------------------------//

// TestSelect_Deterministic runs the same seed list twice on different pool sizes.
func TestSelect_Deterministic(t *testing.T) {
	seeds := []int64{11, 222, 3333}
	a, err := candidate.Select(context.Background(), house, candidate.WithSeeds(seeds...), candidate.WithWorkers(1))
	require.NoError(t, err)
	b, err := candidate.Select(context.Background(), house, candidate.WithSeeds(seeds...), candidate.WithWorkers(3))
	require.NoError(t, err)

	require.Len(t, a.Candidates, 3)
	assert.Equal(t, a.Best, b.Best)
	assert.Equal(t, a.BestCandidate().Scores, b.BestCandidate().Scores)
	for i := range a.Candidates {
		ca, cb := a.Candidates[i], b.Candidates[i]
		assert.Equal(t, seeds[i], ca.Seed)
		assert.Equal(t, i, ca.Index)
		assert.Equal(t, ca.Layout, cb.Layout)
		assert.Equal(t, ca.Scores, cb.Scores)
		assert.Equal(t, ca.Mesh, cb.Mesh)
	}
	assert.NotEqual(t, a.ID, b.ID)
}

// TestSelect_BestIsFirstMaximum checks the selection rule.
func TestSelect_BestIsFirstMaximum(t *testing.T) {
	res, err := candidate.Select(context.Background(), house, candidate.WithBaseSeed(42), candidate.WithCount(5))
	require.NoError(t, err)
	require.Len(t, res.Candidates, 5)

	best := res.BestCandidate().Scores.Average
	for i, c := range res.Candidates {
		assert.LessOrEqual(t, c.Scores.Average, best)
		if i < res.Best {
			assert.Less(t, c.Scores.Average, best)
		}
		assert.Equal(t, res.ID.String()+"_"+strconv.Itoa(i), c.ModelID)
		assert.NotNil(t, c.Mesh)
		assert.NotNil(t, c.Walls)
		assert.GreaterOrEqual(t, c.Walk.Max, c.Walk.Avg)
		assert.GreaterOrEqual(t, c.Seed, int64(0))
		assert.LessOrEqual(t, c.Seed, int64(candidate.MaxSeed))
	}
	assert.Equal(t, candidate.DeriveSeeds(42, 5), seedsOf(res))
}

// TestSelect_SameAsSynth: a candidate layout equals a direct pipeline run.
func TestSelect_SameAsSynth(t *testing.T) {
	res, err := candidate.Select(context.Background(), house, candidate.WithSeeds(7), candidate.WithMesh(false))
	require.NoError(t, err)
	direct, err := synth.Synthesize(house, 7)
	require.NoError(t, err)
	assert.Equal(t, direct, res.Candidates[0].Layout)
	assert.Nil(t, res.Candidates[0].Mesh)
	m := res.Candidates[0].Metrics
	assert.True(t, m.Reachable > 0 && m.Reachable <= 1, "reachable %v", m.Reachable)
}

// TestSelect_Errors covers configuration, options and cancellation.
func TestSelect_Errors(t *testing.T) {
	_, err := candidate.Select(context.Background(), []layout.RoomSpec{{Type: "storage", Area: 5}})
	assert.ErrorIs(t, err, layout.ErrConfiguration)

	_, err = candidate.Select(context.Background(), house, candidate.WithCount(0))
	assert.ErrorIs(t, err, candidate.ErrOptionViolation)
	_, err = candidate.Select(context.Background(), house, candidate.WithWorkers(0))
	assert.ErrorIs(t, err, candidate.ErrOptionViolation)
	_, err = candidate.Select(context.Background(), house, candidate.WithSeeds())
	assert.ErrorIs(t, err, candidate.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = candidate.Select(ctx, house)
	assert.ErrorIs(t, err, context.Canceled)
}

//----------------------------------------------------------------------------//
// Summaries
//----------------------------------------------------------------------------//

// TestSummaries converts areas and cycles the palette by placement order.
func TestSummaries(t *testing.T) {
	l, err := synth.Synthesize(house, 3)
	require.NoError(t, err)
	sums := candidate.Summaries(l)
	require.Len(t, sums, len(l.Order))
	for i, s := range sums {
		assert.Equal(t, l.Order[i], s.ID)
		assert.Equal(t, mesh.RoomColor(i).Hex(), s.Color)
		assert.Equal(t, int(l.Rooms[s.ID].Area()*candidate.SquareFeetPerSquareMetre), s.AreaFt2)
	}
	assert.Equal(t, "Living", sums[0].DisplayType)
	assert.Equal(t, "Living Room", candidate.DisplayType("living_room"))
}

func seedsOf(r *candidate.Result) []int64 {
	out := make([]int64, len(r.Candidates))
	for i, c := range r.Candidates {
		out[i] = c.Seed
	}

	return out
}
