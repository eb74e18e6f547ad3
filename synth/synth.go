// Package synth runs the whole 2D pipeline for one seed: placement,
// adjacency detection and validation, corridors, doors and entrance, and
// returns a fully built Layout with its structural score.
package synth

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/floorplan/corridor"
	"github.com/katalvlaran/floorplan/layout"
	"github.com/katalvlaran/floorplan/opening"
	"github.com/katalvlaran/floorplan/placement"
	"github.com/katalvlaran/floorplan/roomgraph"
	"github.com/katalvlaran/floorplan/rules"
	"github.com/katalvlaran/floorplan/scoring"
)

// Synthesizer holds validated options; it is safe for concurrent use
// because every Run owns its generator and layout.
type Synthesizer struct {
	opts Options
}

// New validates opts.
func New(opts ...Option) (*Synthesizer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Synthesizer{opts: o}, nil
}

// Synthesize is New(opts...).Run(specs, seed).
func Synthesize(specs []layout.RoomSpec, seed int64, opts ...Option) (*layout.Layout, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return s.Run(specs, seed)
}

// Run builds one layout. Configuration problems surface as
// *layout.ConfigurationError before placement; unplaced rooms and a
// missing entrance are recorded in Layout.Diagnostics.
func (s *Synthesizer) Run(specs []layout.RoomSpec, seed int64) (*layout.Layout, error) {
	o := s.opts
	log := o.Logger.With(slog.Int64("seed", seed))
	rng := rand.New(rand.NewSource(seed))

	popts := append([]placement.Option{placement.WithLogger(log)}, o.Placement...)
	placed, err := placement.Synthesize(specs, rng, popts...)
	if err != nil {
		return nil, err
	}

	l := &layout.Layout{
		Hub:   placed.Hub,
		Rooms: make(map[string]layout.PlacedRoom, len(placed.Rooms)),
		Seed:  seed,
	}
	for _, r := range placed.Rooms {
		l.Order = append(l.Order, r.Name)
		l.Rooms[r.Name] = r
	}
	l.Diagnostics.PlacementFailures = placed.Failures
	for _, d := range placed.Decisions {
		if d.Strategy != placement.Primary {
			l.Diagnostics.Notes = append(l.Diagnostics.Notes,
				fmt.Sprintf("%s placed by %s fallback against %s", d.Room, d.Strategy, d.Target))
		}
	}

	contacts := roomgraph.Detect(placed.Rooms, o.MinContact)
	l.Adjacency, l.Rejected = rules.Validate(contacts)
	for _, e := range l.Rejected {
		log.Debug("adjacency rejected", slog.String("a", e.RoomA), slog.String("b", e.RoomB), slog.String("reason", e.Reason))
	}

	if l.Corridors, err = corridor.Generate(l.Rooms, l.Adjacency, o.Corridor...); err != nil {
		return nil, fmt.Errorf("synth: corridors: %w", err)
	}

	requests := make([]opening.Request, 0, len(l.Adjacency))
	for _, e := range l.Adjacency {
		w, kind := opening.WidthFor(l.Rooms[e.RoomA].Type, l.Rooms[e.RoomB].Type, o.Opening...)
		requests = append(requests, opening.Request{RoomA: e.RoomA, RoomB: e.RoomB, Width: w, Kind: kind})
	}
	doors, doorUnion, err := opening.Doors(l.Rooms, requests, o.Opening...)
	if err != nil {
		return nil, fmt.Errorf("synth: doors: %w", err)
	}
	l.Doors = doorUnion
	l.Openings = doors

	entrance, err := opening.Entrance(l.Rooms[l.Hub], placed.Rooms, rng, o.Opening...)
	switch {
	case errors.Is(err, opening.ErrNoExteriorWall):
		l.Diagnostics.EntranceFailure = err.Error()
		log.Warn("no entrance", slog.String("hub", l.Hub))
	case err != nil:
		return nil, fmt.Errorf("synth: entrance: %w", err)
	default:
		l.Entrance = entrance.Polygon
		l.Openings = append(l.Openings, entrance)
	}

	g := roomgraph.FromEdges(l.Order, l.Adjacency)
	if hops, herr := roomgraph.Hops(g, l.Hub); herr == nil {
		for _, name := range l.Order {
			if _, ok := hops.Depth[name]; !ok {
				l.Diagnostics.Notes = append(l.Diagnostics.Notes, fmt.Sprintf("%s is not reachable from %s", name, l.Hub))
			}
		}
	}

	l.StructuralScore = scoring.Structural(len(l.Rejected), l.HasEntrance())
	log.Info("layout synthesized",
		slog.Int("rooms", len(l.Order)),
		slog.Int("failures", len(l.Diagnostics.PlacementFailures)),
		slog.Int("accepted", len(l.Adjacency)),
		slog.Int("rejected", len(l.Rejected)),
		slog.Int("openings", len(l.Openings)),
		slog.Int("structural", l.StructuralScore))

	return l, nil
}
