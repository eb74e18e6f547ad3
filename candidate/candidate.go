// Package candidate runs the synthesis pipeline for several seeds on a
// bounded worker pool and selects the best-scoring layout.
package candidate

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/floorplan/layout"
	"github.com/katalvlaran/floorplan/mesh"
	"github.com/katalvlaran/floorplan/roomgraph"
	"github.com/katalvlaran/floorplan/scoring"
	"github.com/katalvlaran/floorplan/synth"
	"github.com/katalvlaran/floorplan/walls"
)

// SquareFeetPerSquareMetre converts room areas for display.
const SquareFeetPerSquareMetre = 10.764

// RoomSummary is the display record of one room.
type RoomSummary struct {
	ID          string  `json:"id"`
	DisplayType string  `json:"type"`
	AreaM2      float64 `json:"area_m2"`
	AreaFt2     int     `json:"area_ft2"`
	Color       string  `json:"color"`
}

// Candidate is one seeded run with its scores and optional mesh.
type Candidate struct {
	Index    int                 `json:"index"`
	Seed     int64               `json:"seed"`
	ModelID  string              `json:"model_id"`
	Layout   *layout.Layout      `json:"-"`
	Features scoring.Features    `json:"features"`
	Scores   scoring.Scores      `json:"scores"`
	Metrics  roomgraph.Metrics   `json:"metrics"`
	Walk     roomgraph.WalkStats `json:"walk"`
	Mesh     *mesh.Mesh          `json:"-"`
	Walls    *walls.Report       `json:"walls,omitempty"`
	Rooms    []RoomSummary       `json:"rooms"`
}

// Result holds every candidate and the index of the best one.
type Result struct {
	ID         uuid.UUID   `json:"id"`
	Best       int         `json:"best"`
	Candidates []Candidate `json:"candidates"`
}

// BestCandidate returns the selected candidate.
func (r *Result) BestCandidate() *Candidate { return &r.Candidates[r.Best] }

// DeriveSeeds draws n seeds in [0, MaxSeed] from base.
func DeriveSeeds(base int64, n int) []int64 {
	rng := rand.New(rand.NewSource(base))
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int63n(MaxSeed + 1)
	}

	return out
}

// Select synthesizes, scores and optionally meshes one candidate per seed,
// and picks the highest average score; ties go to the lowest index.
// Invalid room lists fail before any candidate starts. Cancellation is
// observed between candidates.
func Select(ctx context.Context, specs []layout.RoomSpec, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := layout.ValidateSpecs(layout.NormalizeSpecs(specs)); err != nil {
		return nil, err
	}

	seeds := o.Seeds
	if len(seeds) == 0 {
		seeds = DeriveSeeds(o.BaseSeed, o.Count)
	}
	id := uuid.New()
	log := o.Logger.With(slog.String("generation", id.String()))

	syn, err := synth.New(append([]synth.Option{synth.WithLogger(log)}, o.Synth...)...)
	if err != nil {
		return nil, err
	}
	var wb *walls.Builder
	if o.Mesh {
		if wb, err = walls.NewBuilder(log, o.Walls...); err != nil {
			return nil, err
		}
	}

	out := make([]Candidate, len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, seed := range seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := evaluate(syn, wb, specs, seed)
			if err != nil {
				return fmt.Errorf("candidate %d (seed %d): %w", i, seed, err)
			}
			c.Index = i
			c.ModelID = fmt.Sprintf("%s_%d", id, i)
			out[i] = c
			log.Info("candidate scored",
				slog.Int("index", i),
				slog.Int64("seed", seed),
				slog.Int("average", c.Scores.Average),
				slog.Int("structural", c.Layout.StructuralScore))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{ID: id, Best: -1, Candidates: out}
	bestScore := math.MinInt
	for i, c := range out {
		if len(c.Rooms) == 0 {
			continue
		}
		if c.Scores.Average > bestScore {
			res.Best, bestScore = i, c.Scores.Average
		}
	}
	if res.Best < 0 {
		return nil, ErrNoCandidates
	}
	log.Info("candidate selected", slog.Int("best", res.Best), slog.Int("average", bestScore))

	return res, nil
}

func evaluate(syn *synth.Synthesizer, wb *walls.Builder, specs []layout.RoomSpec, seed int64) (Candidate, error) {
	l, err := syn.Run(specs, seed)
	if err != nil {
		return Candidate{}, err
	}
	c := Candidate{Seed: seed, Layout: l}
	c.Features = scoring.Extract(l)
	c.Scores = scoring.Score(c.Features)
	if m, err := roomgraph.PathMetrics(roomgraph.FromEdges(l.Order, l.Adjacency), l.Hub); err == nil {
		c.Metrics = m
	}
	if w, err := roomgraph.Walking(l); err == nil {
		c.Walk = w
	}
	if wb != nil {
		c.Mesh, c.Walls = wb.Build(l)
	}
	c.Rooms = Summaries(l)

	return c, nil
}

// Summaries lists rooms in placement order with display names, areas and
// palette colours.
func Summaries(l *layout.Layout) []RoomSummary {
	rooms := l.RoomList()
	out := make([]RoomSummary, len(rooms))
	for i, r := range rooms {
		area := r.Area()
		out[i] = RoomSummary{
			ID:          r.Name,
			DisplayType: DisplayType(r.Type),
			AreaM2:      math.Round(area*100) / 100,
			AreaFt2:     int(area * SquareFeetPerSquareMetre),
			Color:       mesh.RoomColor(i).Hex(),
		}
	}

	return out
}

// DisplayType turns a room type into a title: "bedroom" becomes "Bedroom".
func DisplayType(roomType string) string {
	words := strings.Fields(strings.ReplaceAll(roomType, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
