package roomgraph

import (
	"context"
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("roomgraph: invalid option supplied")

// Option configures a Hops walk.
type Option func(*Options)

// Options holds parameters of a breadth-first walk.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context
	// MaxDepth, if > 0, stops exploring beyond this many hops.
	MaxDepth int

	err error
}

// DefaultOptions returns a background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the walk to d hops. Negative d is an option violation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// HopResult is the outcome of a breadth-first walk.
type HopResult struct {
	// Order lists rooms in visit order.
	Order []string
	// Depth maps each reached room to its hop distance from the start.
	Depth map[string]int
	// Parent maps each reached room (except the start) to its predecessor.
	Parent map[string]string
}

// PathTo rebuilds the shortest hop path from the start to dest.
func (r *HopResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q unreachable", ErrRoomNotFound, dest)
	}
	path := []string{dest}
	for cur := dest; ; {
		p, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

type queueItem struct {
	id    string
	depth int
}

type walker struct {
	graph *Graph
	opts  Options
	queue []queueItem
	res   *HopResult
}

// Hops walks g breadth-first from start. Neighbours are expanded in sorted
// order, so the result is deterministic.
func Hops(g *Graph, start string, opts ...Option) (*HopResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasRoom(start) {
		return nil, fmt.Errorf("%w: start %q", ErrRoomNotFound, start)
	}

	w := &walker{
		graph: g,
		opts:  o,
		res: &HopResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		nbrs, err := w.graph.Neighbors(item.id)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, next, item.id)
			}
		}
	}

	return nil
}

// Metrics summarises hop distances over a room graph.
type Metrics struct {
	// AvgPath is the mean hop distance over reachable ordered pairs.
	AvgPath float64 `json:"avg_path"`
	// MaxPath is the largest hop distance between reachable rooms.
	MaxPath int `json:"max_path"`
	// DeadEnds counts rooms with exactly one neighbour.
	DeadEnds int `json:"dead_ends"`
	// Reachable is the share of rooms reachable from the hub, in [0,1].
	Reachable float64 `json:"reachable"`
}

// PathMetrics computes Metrics for g, measuring reachability from hub.
// An empty graph yields zero metrics.
func PathMetrics(g *Graph, hub string) (Metrics, error) {
	if g == nil {
		return Metrics{}, ErrGraphNil
	}
	rooms := g.Rooms()
	if len(rooms) == 0 {
		return Metrics{}, nil
	}

	var m Metrics
	sum, pairs := 0, 0
	for _, r := range rooms {
		if deg, _ := g.Degree(r); deg == 1 {
			m.DeadEnds++
		}
		res, err := Hops(g, r)
		if err != nil {
			return Metrics{}, err
		}
		for _, other := range res.Order[1:] {
			d := res.Depth[other]
			sum += d
			pairs++
			if d > m.MaxPath {
				m.MaxPath = d
			}
		}
		if r == hub {
			m.Reachable = float64(len(res.Order)) / float64(len(rooms))
		}
	}
	if pairs > 0 {
		m.AvgPath = float64(sum) / float64(pairs)
	}

	return m, nil
}
