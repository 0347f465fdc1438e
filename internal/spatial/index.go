package spatial

import (
	"sort"

	"github.com/unixpickle/model3d/model2d"
)

// Match is a point we found near a query; its id & how far away it was.
type Match struct {
	ID   int
	Dist float64
}

// Index answers nearest-neighbour & radius queries over node positions.
//
// Queries lean on a kd-tree, but the tree is only rebuilt once every
// `every` inserts (building is the expensive bit). Points that arrived
// since the last rebuild sit in an overflow region & are checked
// linearly, so every insert is visible to queries immediately.
type Index struct {
	every int

	pts []model2d.Coord       // every point, in insert order
	ids map[model2d.Coord]int // position -> id (positions are unique)

	tree     *model2d.CoordTree
	treed    int // how many of pts the tree covers
	rebuilds int
}

// New returns an empty Index that rebuilds its tree every `every` inserts.
func New(every int) *Index {
	if every < 1 {
		every = 1
	}
	return &Index{
		every: every,
		pts:   []model2d.Coord{},
		ids:   map[model2d.Coord]int{},
	}
}

// Len returns the number of indexed points.
func (i *Index) Len() int {
	return len(i.pts)
}

// Rebuilds returns how many times the tree has been rebuilt.
func (i *Index) Rebuilds() int {
	return i.rebuilds
}

// Insert adds a point under the given id.
func (i *Index) Insert(id int, x, y float64) {
	c := model2d.Coord{X: x, Y: y}
	i.pts = append(i.pts, c)
	i.ids[c] = id
	if len(i.pts)-i.treed >= i.every {
		i.rebuild()
	}
}

// rebuild recreates the tree over everything, emptying the overflow region
func (i *Index) rebuild() {
	all := make([]model2d.Coord, len(i.pts))
	copy(all, i.pts)
	i.tree = model2d.NewCoordTree(all)
	i.treed = len(i.pts)
	i.rebuilds++
}

// Nearest returns up to k matches closest to (x, y), nearest first.
func (i *Index) Nearest(x, y float64, k int) []Match {
	if k < 1 || len(i.pts) == 0 {
		return nil
	}

	c := model2d.Coord{X: x, Y: y}
	found := []Match{}

	if i.tree != nil {
		for _, n := range i.tree.KNN(k, c) {
			found = append(found, Match{ID: i.ids[n], Dist: n.Dist(c)})
		}
	}
	for _, p := range i.pts[i.treed:] {
		found = append(found, Match{ID: i.ids[p], Dist: p.Dist(c)})
	}

	sort.Slice(found, func(a, b int) bool { return found[a].Dist < found[b].Dist })
	if len(found) > k {
		found = found[:k]
	}
	return found
}

// WithinRadius returns the ids of all points within r of (x, y),
// the boundary included.
func (i *Index) WithinRadius(x, y, r float64) []int {
	if len(i.pts) == 0 || r < 0 {
		return nil
	}

	c := model2d.Coord{X: x, Y: y}
	found := []int{}

	if i.tree != nil {
		// we don't know how many tree points fall inside r, so ask for
		// k nearest & double k until the last is outside (or we've
		// pulled the whole tree)
		k := 8
		for {
			neighbours := i.tree.KNN(k, c)
			last := neighbours[len(neighbours)-1]
			if last.Dist(c) > r || len(neighbours) < k {
				for _, n := range neighbours {
					if n.Dist(c) <= r {
						found = append(found, i.ids[n])
					}
				}
				break
			}
			k *= 2
		}
	}

	for _, p := range i.pts[i.treed:] {
		if p.Dist(c) <= r {
			found = append(found, i.ids[p])
		}
	}

	return found
}
