package roadgraph

import (
	"fmt"

	"github.com/voidshard/roadgraph/internal/encoding"
)

var (
	// ErrInvalidEndpoint is returned when a road names a node we don't have.
	ErrInvalidEndpoint = fmt.Errorf("road endpoint not found")

	// ErrSelfLoop is returned when a road's endpoints are the same node.
	ErrSelfLoop = fmt.Errorf("road endpoints must differ")

	// ErrDuplicateRoad is returned when the given node pair already has a road.
	ErrDuplicateRoad = fmt.Errorf("road already exists")

	// ErrDuplicatePosition is returned when a node already sits at exactly
	// the given position.
	ErrDuplicatePosition = fmt.Errorf("node already exists at position")
)

// Graph holds the road network; nodes, roads & the growth step counter.
//
// Nodes & roads are append only. We never delete or re-order, so a node
// id is simply its index into the node arena (same for roads).
// The graph is the source of truth; spatial indexes & frontiers are
// derived from it.
type Graph struct {
	nodes  []Node
	roads  []Road
	degree []int

	byPos  map[Point]int  // exact position -> node id
	byPair map[uint64]int // packed (lo, hi) node pair -> road id

	step int64
}

// NewGraph returns an empty graph at step 0.
func NewGraph() *Graph {
	return &Graph{
		nodes:  []Node{},
		roads:  []Road{},
		degree: []int{},
		byPos:  map[Point]int{},
		byPair: map[uint64]int{},
	}
}

// roadKey packs an unordered node pair into a single map key.
func roadKey(a, b int) uint64 {
	if b < a {
		a, b = b, a
	}
	return encoding.Merge32(uint32(a), uint32(b))
}

// AddNode creates a node at p, stamped with the current step, returning
// its id. Ids are assigned sequentially & are stable for the life of
// the graph.
// A second node at exactly the same position is an error; positions
// that are merely close together are the caller's business.
func (g *Graph) AddNode(p Point) (int, error) {
	prev, ok := g.byPos[p]
	if ok {
		return 0, fmt.Errorf("%w: (%v,%v) is node %d", ErrDuplicatePosition, p.X, p.Y, prev)
	}

	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Pos: p, Created: g.step})
	g.degree = append(g.degree, 0)
	g.byPos[p] = id
	return id, nil
}

// AddRoad creates a road between nodes a & b, stamped with the current
// step, returning its id. The pair is unordered; adding (a, b) then
// (b, a) is a duplicate.
func (g *Graph) AddRoad(a, b int) (int, error) {
	if a == b {
		return 0, fmt.Errorf("%w: node %d", ErrSelfLoop, a)
	}
	if a < 0 || a >= len(g.nodes) {
		return 0, fmt.Errorf("%w: node %d", ErrInvalidEndpoint, a)
	}
	if b < 0 || b >= len(g.nodes) {
		return 0, fmt.Errorf("%w: node %d", ErrInvalidEndpoint, b)
	}

	key := roadKey(a, b)
	prev, ok := g.byPair[key]
	if ok {
		return 0, fmt.Errorf("%w: road %d joins %d & %d", ErrDuplicateRoad, prev, a, b)
	}

	id := len(g.roads)
	g.roads = append(g.roads, Road{A: a, B: b, Created: g.step})
	g.byPair[key] = id
	g.degree[a]++
	g.degree[b]++
	return id, nil
}

// AdvanceStep moves the step counter forward.
// Called once per growth cycle no matter how many roads were laid.
func (g *Graph) AdvanceStep() {
	g.step++
}

// CurrentStep returns the growth step counter.
func (g *Graph) CurrentStep() int64 {
	return g.step
}

// NodeCount returns how many nodes the graph holds.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// RoadCount returns how many roads the graph holds.
func (g *Graph) RoadCount() int {
	return len(g.roads)
}

// Degree returns the number of roads meeting at the given node.
func (g *Graph) Degree(id int) int {
	if id < 0 || id >= len(g.degree) {
		return 0
	}
	return g.degree[id]
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) (Node, bool) {
	if id < 0 || id >= len(g.nodes) {
		return Node{}, false
	}
	return g.nodes[id], true
}

// Snapshot returns a copy of the graph contents. The copy shares no
// memory with the graph so callers can hold it as long as they like.
func (g *Graph) Snapshot() *Snapshot {
	s := &Snapshot{
		Step:  g.step,
		Nodes: make([]Node, len(g.nodes)),
		Roads: make([]Road, len(g.roads)),
	}
	copy(s.Nodes, g.nodes)
	copy(s.Roads, g.roads)
	return s
}
