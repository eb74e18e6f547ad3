// Package roomgraph detects geometric contacts between placed rooms and
// maintains the resulting room connectivity graph.
//
// Detect
//
//	Every unordered pair of rooms whose boundaries share more than a
//	minimum length of wall becomes a Contact. Pairs are reported with their
//	names sorted and in a deterministic order (input order of the first
//	room, then of the second), so downstream stages never depend on map
//	iteration.
//
// Graph
//
//	Graph is a small undirected, unweighted graph keyed by room name:
//
//	  AddRoom(name) error        // idempotent
//	  AddLink(a, b) error        // implicitly adds both rooms
//	  HasLink(a, b) bool
//	  Neighbors(name) ([]string, error)   // sorted
//	  Rooms() []string                    // sorted
//	  Degree(name) (int, error)
//
//	A single sync.RWMutex guards the catalog and the adjacency sets;
//	reads share the lock.
//
// Traversal
//
//	Hops runs a breadth-first walk from a start room and returns the visit
//	order, hop depths and parent links; PathTo rebuilds a shortest path.
//	PathMetrics summarises the whole graph: average and maximum hop
//	distance over reachable ordered pairs, number of dead ends (degree 1)
//	and the share of rooms reachable from the hub.
//
// Walking
//
//	Walk is Dijkstra over the graph with a caller-supplied link cost and a
//	lazy decrease-key heap. Walking applies it to a layout: links are the
//	accepted adjacencies and a step between two rooms goes from centre to
//	the centre of their opening (when one was cut) and on to the other
//	centre.
package roomgraph
