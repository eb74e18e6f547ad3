package roomgraph

import (
	"sort"
	"sync"
)

// Graph is an undirected, unweighted room connectivity graph.
// All methods are safe for concurrent use.
type Graph struct {
	mu    sync.RWMutex
	links map[string]map[string]struct{} // room -> neighbour set
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{links: make(map[string]map[string]struct{})}
}

// AddRoom inserts name if missing. Adding an existing room is a no-op.
func (g *Graph) AddRoom(name string) error {
	if name == "" {
		return ErrEmptyRoomName
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(name)

	return nil
}

func (g *Graph) ensure(name string) {
	if _, ok := g.links[name]; !ok {
		g.links[name] = make(map[string]struct{})
	}
}

// HasRoom reports whether name is present.
func (g *Graph) HasRoom(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.links[name]

	return ok
}

// AddLink connects a and b, adding either room when missing.
// Repeated links collapse into one.
func (g *Graph) AddLink(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyRoomName
	}
	if a == b {
		return ErrSelfLink
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensure(a)
	g.ensure(b)
	g.links[a][b] = struct{}{}
	g.links[b][a] = struct{}{}

	return nil
}

// HasLink reports whether a and b are directly connected.
func (g *Graph) HasLink(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.links[a][b]

	return ok
}

// Neighbors returns the rooms linked to name, sorted ascending.
func (g *Graph) Neighbors(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.links[name]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return sortedKeys(set), nil
}

// Rooms returns every room name, sorted ascending.
func (g *Graph) Rooms() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.links)
}

// Degree returns the number of distinct neighbours of name.
func (g *Graph) Degree(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.links[name]
	if !ok {
		return 0, ErrRoomNotFound
	}

	return len(set), nil
}

// LinkCount returns the number of undirected links.
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, set := range g.links {
		n += len(set)
	}

	return n / 2
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
