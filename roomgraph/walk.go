package roomgraph

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/floorplan/geometry"
	"github.com/katalvlaran/floorplan/layout"
)

// WeightFunc returns the cost of walking between two linked rooms.
type WeightFunc func(a, b string) float64

// WalkResult holds shortest walking costs from one source room.
// Unreachable rooms are absent from Dist.
type WalkResult struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// PathTo rebuilds the cheapest room sequence from the source to dest.
func (r *WalkResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %q unreachable", ErrRoomNotFound, dest)
	}
	var path []string
	for cur := dest; cur != ""; cur = r.Prev[cur] {
		path = append([]string{cur}, path...)
	}

	return path, nil
}

// Walk runs Dijkstra from source over g using weight as link cost.
// Neighbours are relaxed in sorted order and heap ties break by name, so
// equal-cost alternatives resolve deterministically.
//
// Complexity: O((V + E) log V) with lazy decrease-key.
func Walk(g *Graph, source string, weight WeightFunc) (*WalkResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if source == "" {
		return nil, ErrEmptyRoomName
	}
	if !g.HasRoom(source) {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, source)
	}

	w := &walkRunner{
		g:       g,
		weight:  weight,
		res:     &WalkResult{Source: source, Dist: map[string]float64{source: 0}, Prev: map[string]string{}},
		visited: map[string]bool{},
	}
	heap.Push(&w.pq, &walkItem{id: source})
	if err := w.process(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// walkRunner holds the mutable state of one Walk.
type walkRunner struct {
	g       *Graph
	weight  WeightFunc
	res     *WalkResult
	visited map[string]bool
	pq      walkPQ
}

func (w *walkRunner) process() error {
	for w.pq.Len() > 0 {
		item := heap.Pop(&w.pq).(*walkItem)
		if w.visited[item.id] {
			continue // stale entry
		}
		w.visited[item.id] = true
		if err := w.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

func (w *walkRunner) relax(u string) error {
	nbrs, err := w.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("roomgraph: neighbours of %q: %w", u, err)
	}
	for _, v := range nbrs {
		if w.visited[v] {
			continue
		}
		c := w.weight(u, v)
		if c < 0 || math.IsNaN(c) {
			return fmt.Errorf("%w: %s-%s cost %v", ErrNegativeWeight, u, v, c)
		}
		nd := w.res.Dist[u] + c
		if old, ok := w.res.Dist[v]; ok && nd >= old {
			continue
		}
		w.res.Dist[v] = nd
		w.res.Prev[v] = u
		heap.Push(&w.pq, &walkItem{id: v, dist: nd})
	}

	return nil
}

type walkItem struct {
	id   string
	dist float64
}

// walkPQ is a min-heap ordered by distance, then name.
type walkPQ []*walkItem

func (pq walkPQ) Len() int { return len(pq) }
func (pq walkPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}
func (pq walkPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *walkPQ) Push(x interface{}) { *pq = append(*pq, x.(*walkItem)) }
func (pq *walkPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

//----------------------------------------------------------------------------//
// Walking distances over a layout
//----------------------------------------------------------------------------//

// WalkStats summarises walking distances from the hub through openings.
type WalkStats struct {
	// Avg is the mean distance from the hub to every other reachable room.
	Avg float64 `json:"avg"`
	// Max is the largest such distance.
	Max float64 `json:"max"`
	// Farthest names the room at Max.
	Farthest string `json:"farthest,omitempty"`
	// Unreachable counts rooms with no accepted path from the hub.
	Unreachable int `json:"unreachable"`
}

// Walking measures centre-to-centre walks from the hub of l along
// accepted adjacencies. A walk between two rooms passes through the
// centre of their opening when one exists. Distances are rounded to
// two decimals.
func Walking(l *layout.Layout) (WalkStats, error) {
	g := FromEdges(l.Order, l.Adjacency)
	doors := make(map[[2]string]orb.Point, len(l.Openings))
	for _, op := range l.Openings {
		if len(op.Polygon) == 0 {
			continue
		}
		c := geometry.RectFromPolygon(op.Polygon).Center()
		doors[[2]string{op.RoomA, op.RoomB}] = c
		doors[[2]string{op.RoomB, op.RoomA}] = c
	}
	weight := func(a, b string) float64 {
		ca, cb := l.Rooms[a].Rect.Center(), l.Rooms[b].Rect.Center()
		if d, ok := doors[[2]string{a, b}]; ok {
			return dist(ca, d) + dist(d, cb)
		}

		return dist(ca, cb)
	}

	res, err := Walk(g, l.Hub, weight)
	if err != nil {
		return WalkStats{}, err
	}
	var st WalkStats
	sum, n := 0.0, 0
	for _, name := range l.Order {
		if name == l.Hub {
			continue
		}
		d, ok := res.Dist[name]
		if !ok {
			st.Unreachable++
			continue
		}
		sum += d
		n++
		if d > st.Max {
			st.Max, st.Farthest = d, name
		}
	}
	if n > 0 {
		st.Avg = math.Round(sum/float64(n)*100) / 100
	}
	st.Max = math.Round(st.Max*100) / 100

	return st, nil
}

func dist(a, b orb.Point) float64 { return math.Hypot(a[0]-b[0], a[1]-b[1]) }
