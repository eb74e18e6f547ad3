package placement

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
	"github.com/katalvlaran/floorplan/zone"
)

// Strategy names the fallback stage that placed a room.
type Strategy string

const (
	Primary     Strategy = "primary"
	Secondary   Strategy = "secondary"
	Desperation Strategy = "desperation"
)

// Decision records where and how a room was placed.
type Decision struct {
	Room     string   `json:"room"`
	Strategy Strategy `json:"strategy"`
	Target   string   `json:"target"`
	Side     string   `json:"side"`
	Score    float64  `json:"score"`
}

// Result is the outcome of one placement run.
type Result struct {
	// Hub is the name of the first public room.
	Hub string
	// Rooms lists placed rooms in placement order.
	Rooms []layout.PlacedRoom
	// Failures lists rooms that could not be placed.
	Failures []layout.PlacementFailure
	// Decisions holds one entry per placed room except the hub.
	Decisions []Decision
}

// target is one reference room to try, with the number of compact sides
// that earn the preferred bonus (0 = all four, -1 = none).
type target struct {
	name  string
	sides int
}

// attempt is the explicit outcome of trying one strategy.
type attempt struct {
	strategy Strategy
	target   string
	side     Side
	rect     geometry.Rect
	score    float64
	ok       bool
}

// run holds per-call state; the Builder is the only accumulating value.
type run struct {
	b    *Builder
	rng  *rand.Rand
	opts Options
	log  *slog.Logger
	hub  string
	res  *Result
}

// Synthesize places specs zone by zone around a hub room. Identical specs
// and identically seeded rng yield identical rectangles. Configuration
// problems are returned as *layout.ConfigurationError before anything is
// placed; rooms that fit nowhere are reported in Result.Failures.
func Synthesize(specs []layout.RoomSpec, rng *rand.Rand, opts ...Option) (*Result, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	specs = layout.NormalizeSpecs(specs)
	if err := layout.ValidateSpecs(specs); err != nil {
		return nil, err
	}

	r := &run{b: NewBuilder(), rng: rng, opts: o, log: o.Logger, res: &Result{}}
	groups := zone.Group(len(specs), func(i int) string { return specs[i].Type })

	r.placePublic(specs, groups[zone.Public])
	r.placeKitchens(specs, groups[zone.SemiPublic])
	r.placePrivate(specs, groups[zone.Private])
	r.placeServices(specs, groups[zone.Service])
	r.placeOutdoor(specs, groups[zone.Outdoor])
	r.placeOther(specs, groups[zone.Other])

	r.res.Hub = r.hub
	r.res.Rooms = r.b.Rooms()

	return r.res, nil
}

func (r *run) area(s layout.RoomSpec) float64 {
	if p, ok := r.opts.Priors[s.Type]; ok {
		return p.Clamp(s.Area)
	}

	return s.Area
}

func (r *run) pick(bases ...float64) float64 { return bases[r.rng.Intn(len(bases))] }

func (r *run) placePublic(specs []layout.RoomSpec, idx []int) {
	if len(idx) == 0 {
		return
	}
	hub := specs[idx[0]]
	w, h := dims(r.area(hub), randomAspect(r.rng, r.pick(1.2, 1.5, 1.8, 0.8), 0.5))
	r.hub = r.b.nextName(hub.Type)
	r.b.add(layout.PlacedRoom{Name: r.hub, Type: hub.Type, Zone: zone.Public, Rect: geometry.NewRect(0, 0, w, h)})
	r.log.Debug("placed hub", "room", r.hub, "width", w, "height", h)

	for _, i := range idx[1:] {
		aspect := randomAspect(r.rng, r.pick(1.1, 1.4, 1.0), 0.4)
		r.place(specs[i], zone.Public, aspect, []target{{name: r.hub}})
	}
}

func (r *run) placeKitchens(specs []layout.RoomSpec, idx []int) {
	for _, i := range idx {
		aspect := randomAspect(r.rng, r.pick(1.0, 1.3, 0.9), 0.3)
		var primary []target
		for _, d := range r.b.NamesOf("dining") {
			primary = append(primary, target{name: d})
		}
		primary = append(primary, target{name: r.hub, sides: 2})
		r.place(specs[i], zone.SemiPublic, aspect, primary)
	}
}

func (r *run) placePrivate(specs []layout.RoomSpec, idx []int) {
	order := append([]int(nil), idx...)
	r.rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })
	for _, i := range order {
		aspect := randomAspect(r.rng, r.pick(1.1, 1.4, 1.0), 0.4)
		r.place(specs[i], zone.Private, aspect, []target{{name: r.hub, sides: 3}})
	}
}

func (r *run) placeServices(specs []layout.RoomSpec, idx []int) {
	bath := 0
	for _, i := range idx {
		s := specs[i]
		aspect := randomAspect(r.rng, 1.0, 0.2)
		var primary []target
		switch s.Type {
		case "bathroom":
			if beds := r.b.NamesOf("bedroom"); bath < len(beds) {
				primary = append(primary, target{name: beds[bath]})
			}
			bath++
			primary = appendTargets(primary, r.b.NamesOf("living"))
		case "storage", "utility", "pantry", "laundry":
			primary = appendTargets(primary, r.b.NamesOf("kitchen"))
		}
		primary = appendTargets(primary, append([]string{r.hub}, r.b.NamesOf("living")...))
		r.place(s, zone.Service, aspect, primary)
	}
}

func (r *run) placeOutdoor(specs []layout.RoomSpec, idx []int) {
	for _, i := range idx {
		s := specs[i]
		aspect := randomAspect(r.rng, 1.0, 0.3)
		var names []string
		if s.Type == "balcony" {
			names = r.b.NamesOf("living", "bedroom")
		} else {
			names = r.b.NamesOf("living", "dining")
		}
		primary := appendTargets(nil, append(names, r.hub))
		for k := range primary {
			primary[k].sides = -1
		}
		r.place(s, zone.Outdoor, aspect, primary)
	}
}

func (r *run) placeOther(specs []layout.RoomSpec, idx []int) {
	for _, i := range idx {
		aspect := randomAspect(r.rng, 1.0, 0.3)
		r.place(specs[i], zone.Other, aspect, []target{{name: r.hub, sides: -1}})
	}
}

// appendTargets adds names not already present, preferring all sides.
func appendTargets(dst []target, names []string) []target {
	for _, n := range names {
		dup := false
		for _, t := range dst {
			if t.name == n {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, target{name: n})
		}
	}

	return dst
}

// place runs the primary → secondary → desperation chain for one room.
func (r *run) place(s layout.RoomSpec, z zone.Zone, aspect float64, primary []target) {
	area := r.area(s)
	w, h := dims(area, aspect)
	name := r.b.nextName(s.Type)

	a := r.tryTargets(Primary, primary, w, h)
	if !a.ok {
		a = r.tryTargets(Secondary, r.secondaryTargets(primary), w, h)
	}
	if !a.ok {
		a = r.tryTargets(Desperation, r.desperationTargets(), w, h)
	}
	if !a.ok {
		f := layout.PlacementFailure{
			Name:   name,
			Type:   s.Type,
			Area:   area,
			Reason: "no collision-free side next to any placed room",
		}
		r.res.Failures = append(r.res.Failures, f)
		r.log.Warn("room not placed", "room", name, "area", area)
		return
	}

	r.b.add(layout.PlacedRoom{Name: name, Type: s.Type, Zone: z, Rect: a.rect})
	r.res.Decisions = append(r.res.Decisions, Decision{
		Room:     name,
		Strategy: a.strategy,
		Target:   a.target,
		Side:     a.side.String(),
		Score:    a.score,
	})
	r.log.Debug("placed room", "room", name, "strategy", a.strategy, "target", a.target, "side", a.side.String())
}

// secondaryTargets lists public rooms not already tried.
func (r *run) secondaryTargets(tried []target) []target {
	var out []target
	for _, n := range r.b.NamesOf("living", "dining", "hall") {
		seen := false
		for _, t := range tried {
			if t.name == n {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, target{name: n})
		}
	}

	return out
}

// desperationTargets lists every placed room in random order.
func (r *run) desperationTargets() []target {
	names := r.b.Names()
	r.rng.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	out := make([]target, len(names))
	for i, n := range names {
		out[i] = target{name: n}
	}

	return out
}

func (r *run) tryTargets(st Strategy, targets []target, w, h float64) attempt {
	for _, t := range targets {
		ref, ok := r.b.Room(t.name)
		if !ok {
			continue
		}
		if a := r.tryAdjacent(ref, t.sides, w, h); a.ok {
			a.strategy = st
			a.target = t.name

			return a
		}
	}

	return attempt{strategy: st}
}

// tryAdjacent scores the four flush candidates around ref by total shared
// boundary, adds the bonus on preferred sides and returns the best
// collision-free one. Ties keep the earlier side in canonical order.
func (r *run) tryAdjacent(ref layout.PlacedRoom, nPreferred int, w, h float64) attempt {
	preferred := map[Side]bool{}
	if nPreferred >= 0 {
		sides := compactSides(r.b, r.rng)
		if nPreferred > 0 && nPreferred < len(sides) {
			sides = sides[:nPreferred]
		}
		for _, s := range sides {
			preferred[s] = true
		}
	}

	best := attempt{}
	for _, side := range allSides {
		cand := side.against(ref.Rect, w, h)
		score, ok := r.b.fits(cand)
		if !ok {
			continue
		}
		if preferred[side] {
			score += r.opts.PreferredBonus
		}
		if !best.ok || score > best.score {
			best = attempt{side: side, rect: cand, score: score, ok: true}
		}
	}

	return best
}
