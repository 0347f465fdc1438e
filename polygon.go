package roadgraph

import (
	"math"
)

// Stolen from https://github.com/kellydunn/golang-geo/blob/master/polygon.go
// and reworked for float64 coords.

// Polygon is a closed ring of points on the plane (the last point forms
// an edge back to the first).
type Polygon struct {
	Points []Point
}

// NewPolygon returns a polygon over the given points.
func NewPolygon(points []Point) *Polygon {
	return &Polygon{Points: points}
}

// IsClosed returns whether the polygon has enough points to enclose
// anything at all.
func (p *Polygon) IsClosed() bool {
	return len(p.Points) >= 3
}

// Contains returns whether the polygon contains the given point.
// Nb. this is something of a fast approximation.
func (p *Polygon) Contains(x, y float64) bool {
	if !p.IsClosed() {
		return false
	}

	start := len(p.Points) - 1
	end := 0

	contains := p.intersectsWithRaycast(x, y, p.Points[start], p.Points[end])

	for i := 1; i < len(p.Points); i++ {
		if p.intersectsWithRaycast(x, y, p.Points[i-1], p.Points[i]) {
			contains = !contains
		}
	}

	return contains
}

// CrossedBy returns whether the segment (ax, ay) -> (bx, by) enters the
// polygon; either an endpoint lies inside or the segment cuts an edge.
func (p *Polygon) CrossedBy(ax, ay, bx, by float64) bool {
	if !p.IsClosed() {
		return false
	}
	if p.Contains(ax, ay) || p.Contains(bx, by) {
		return true
	}

	n := len(p.Points)
	for i := 0; i < n; i++ {
		q := p.Points[i]
		r := p.Points[(i+1)%n]
		if segmentsIntersect(ax, ay, bx, by, q.X, q.Y, r.X, r.Y) {
			return true
		}
	}
	return false
}

// Using the raycast algorithm, this returns whether or not the passed in point
// Intersects with the edge drawn by the passed in start and end points.
// Original implementation: http://rosettacode.org/wiki/Ray-casting_algorithm#Go
func (p *Polygon) intersectsWithRaycast(x, y float64, start, end Point) bool {
	// Always ensure that the the first point
	// has a y coordinate that is less than the second point
	if start.Y > end.Y {
		start, end = end, start
	}

	// Move the point's y coordinate
	// outside of the bounds of the testing region
	// so we can start drawing a ray
	for y == start.Y || y == end.Y {
		y = math.Nextafter(y, math.Inf(1))
	}

	// If we are outside of the polygon, indicate so.
	if y < start.Y || y > end.Y {
		return false
	}

	if start.X > end.X {
		if x > start.X {
			return false
		}
		if x < end.X {
			return true
		}
	} else {
		if x > end.X {
			return false
		}
		if x < start.X {
			return true
		}
	}

	raySlope := (y - start.Y) / (x - start.X)
	diagSlope := (end.Y - start.Y) / (end.X - start.X)

	return raySlope >= diagSlope
}
