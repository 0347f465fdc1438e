package roadgraph

// Point is a position in the (unbounded) 2d world.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Node is a road junction (or dead end). Immutable once created.
type Node struct {
	ID      int   `json:"id"`
	Pos     Point `json:"pos"`
	Created int64 `json:"created"` // step counter value at creation
}

// Road joins two nodes. The pair (A, B) is unordered & a road never
// changes once laid; readers derive "age" as step - Created.
type Road struct {
	A       int   `json:"a"`
	B       int   `json:"b"`
	Created int64 `json:"created"`
}

// Snapshot is a point-in-time copy of a network, handed to renderers
// or written to disk. It shares no memory with the live graph.
// Node ids double as indexes into Nodes.
type Snapshot struct {
	Step  int64  `json:"step"`
	Nodes []Node `json:"nodes"`
	Roads []Road `json:"roads"`
}

// Age returns how many steps ago the given road was laid.
func (s *Snapshot) Age(r Road) int64 {
	return s.Step - r.Created
}

// Bounds returns the min / max co-ords over all nodes.
// Ok is false if the snapshot holds no nodes at all.
func (s *Snapshot) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(s.Nodes) == 0 {
		return 0, 0, 0, 0, false
	}
	first := s.Nodes[0].Pos
	minX, minY, maxX, maxY = first.X, first.Y, first.X, first.Y
	for _, n := range s.Nodes[1:] {
		if n.Pos.X < minX {
			minX = n.Pos.X
		}
		if n.Pos.X > maxX {
			maxX = n.Pos.X
		}
		if n.Pos.Y < minY {
			minY = n.Pos.Y
		}
		if n.Pos.Y > maxY {
			maxY = n.Pos.Y
		}
	}
	return minX, minY, maxX, maxY, true
}
