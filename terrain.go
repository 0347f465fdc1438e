package roadgraph

import (
	"math"

	"github.com/boljen/go-bitmap"

	"github.com/voidshard/roadgraph/internal/line"
)

// openTerrain is the zero-constraint world.
type openTerrain struct{}

func (o openTerrain) CanBuildAt(x, y float64) bool         { return true }
func (o openTerrain) CanCross(ax, ay, bx, by float64) bool { return true }

// Open returns a Terrain with no restrictions at all.
func Open() Terrain {
	return openTerrain{}
}

// combined allows a position / crossing only if every member does.
type combined []Terrain

func (c combined) CanBuildAt(x, y float64) bool {
	for _, t := range c {
		if !t.CanBuildAt(x, y) {
			return false
		}
	}
	return true
}

func (c combined) CanCross(ax, ay, bx, by float64) bool {
	for _, t := range c {
		if !t.CanCross(ax, ay, bx, by) {
			return false
		}
	}
	return true
}

// Combine returns a Terrain permitting only what every given terrain
// permits; any veto wins.
func Combine(ts ...Terrain) Terrain {
	return combined(ts)
}

// rectTerrain forbids an axis aligned rectangle.
type rectTerrain struct {
	minX, minY, maxX, maxY float64
}

// ExcludeRect returns a Terrain that forbids the axis aligned rectangle
// (minX, minY) -> (maxX, maxY), borders included.
func ExcludeRect(minX, minY, maxX, maxY float64) Terrain {
	return &rectTerrain{minX: minX, minY: minY, maxX: maxX, maxY: maxY}
}

func (r *rectTerrain) contains(x, y float64) bool {
	return x >= r.minX && x <= r.maxX && y >= r.minY && y <= r.maxY
}

func (r *rectTerrain) CanBuildAt(x, y float64) bool {
	return !r.contains(x, y)
}

func (r *rectTerrain) CanCross(ax, ay, bx, by float64) bool {
	if r.contains(ax, ay) || r.contains(bx, by) {
		return false
	}

	// both ends are outside, so the segment is bad only if it cuts
	// through one of the rectangle's sides
	corners := [4][2]float64{
		{r.minX, r.minY}, {r.maxX, r.minY}, {r.maxX, r.maxY}, {r.minX, r.maxY},
	}
	for i := range corners {
		j := (i + 1) % 4
		if segmentsIntersect(ax, ay, bx, by, corners[i][0], corners[i][1], corners[j][0], corners[j][1]) {
			return false
		}
	}
	return true
}

// circleTerrain forbids a disc.
type circleTerrain struct {
	x, y, r float64
}

// ExcludeCircle returns a Terrain that forbids the disc of radius r
// about (x, y), boundary included.
func ExcludeCircle(x, y, r float64) Terrain {
	return &circleTerrain{x: x, y: y, r: r}
}

func (c *circleTerrain) CanBuildAt(x, y float64) bool {
	return calculateDist(x, y, c.x, c.y) > c.r
}

func (c *circleTerrain) CanCross(ax, ay, bx, by float64) bool {
	return segmentDist(c.x, c.y, ax, ay, bx, by) > c.r
}

// polyTerrain forbids the inside of a polygon.
type polyTerrain struct {
	poly *Polygon
}

// ExcludePolygon returns a Terrain that forbids the area enclosed by
// the given ring of points.
func ExcludePolygon(points []Point) Terrain {
	return &polyTerrain{poly: NewPolygon(points)}
}

func (p *polyTerrain) CanBuildAt(x, y float64) bool {
	return !p.poly.Contains(x, y)
}

func (p *polyTerrain) CanCross(ax, ay, bx, by float64) bool {
	return !p.poly.CrossedBy(ax, ay, bx, by)
}

// GridMask is a rasterised Terrain; a finite region broken into square
// cells, each either open or excluded. Positions beyond the masked
// region are always open (the world is unbounded, the mask is not).
//
// Nb. crossing checks walk the cells under the segment with bresenham,
// so a razor-thin corner clip can slip through; good enough for the
// coarse masks this is meant for.
type GridMask struct {
	minX, minY float64
	cell       float64
	w, h       int
	bits       bitmap.Bitmap
}

// NewGridMask returns an all-open mask of w x h cells of the given
// size, anchored at (minX, minY).
func NewGridMask(minX, minY, cellSize float64, w, h int) *GridMask {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &GridMask{
		minX: minX,
		minY: minY,
		cell: cellSize,
		w:    w,
		h:    h,
		bits: bitmap.New(w * h),
	}
}

// Cell returns the cell containing the world position (x, y).
func (m *GridMask) Cell(x, y float64) (int, int) {
	return int(math.Floor((x - m.minX) / m.cell)), int(math.Floor((y - m.minY) / m.cell))
}

// Exclude marks the given cell as off limits. Out-of-mask cells are
// ignored.
func (m *GridMask) Exclude(cx, cy int) {
	if cx < 0 || cy < 0 || cx >= m.w || cy >= m.h {
		return
	}
	m.bits.Set(cy*m.w+cx, true)
}

// excluded returns if a cell is off limits; anything outside the mask is open
func (m *GridMask) excluded(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= m.w || cy >= m.h {
		return false
	}
	return m.bits.Get(cy*m.w + cx)
}

func (m *GridMask) CanBuildAt(x, y float64) bool {
	cx, cy := m.Cell(x, y)
	return !m.excluded(cx, cy)
}

func (m *GridMask) CanCross(ax, ay, bx, by float64) bool {
	acx, acy := m.Cell(ax, ay)
	bcx, bcy := m.Cell(bx, by)

	ok := true
	line.Walk(acx, acy, bcx, bcy, func(cx, cy int) bool {
		if m.excluded(cx, cy) {
			ok = false
			return false
		}
		return true
	})
	return ok
}
