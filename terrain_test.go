package roadgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenTerrain(t *testing.T) {
	o := Open()
	assert.True(t, o.CanBuildAt(0, 0))
	assert.True(t, o.CanBuildAt(-1e9, 1e9))
	assert.True(t, o.CanCross(-50, 0, 50, 0))
}

func TestExcludeRect(t *testing.T) {
	r := ExcludeRect(0, 0, 10, 10)

	assert.False(t, r.CanBuildAt(5, 5))
	assert.False(t, r.CanBuildAt(0, 0)) // borders count
	assert.True(t, r.CanBuildAt(-1, 5))
	assert.True(t, r.CanBuildAt(11, 11))

	// both ends outside but the segment cuts straight through
	assert.False(t, r.CanCross(-5, 5, 15, 5))
	// an end inside
	assert.False(t, r.CanCross(1, 1, 20, 20))
	// passes beside
	assert.True(t, r.CanCross(-5, -5, 15, -5))
	assert.True(t, r.CanCross(-5, 11, 15, 11))
}

func TestExcludeCircle(t *testing.T) {
	c := ExcludeCircle(0, 0, 2)

	assert.False(t, c.CanBuildAt(1, 0))
	assert.False(t, c.CanBuildAt(2, 0)) // boundary counts
	assert.True(t, c.CanBuildAt(3, 0))

	assert.False(t, c.CanCross(-5, 0, 5, 0)) // straight through the middle
	assert.False(t, c.CanCross(-5, 1, 5, 1)) // a chord
	assert.True(t, c.CanCross(-5, 3, 5, 3))  // passes above
}

func TestExcludePolygon(t *testing.T) {
	// diamond around the origin
	p := ExcludePolygon([]Point{Pt(0, 2), Pt(2, 0), Pt(0, -2), Pt(-2, 0)})

	assert.False(t, p.CanBuildAt(0, 0))
	assert.False(t, p.CanBuildAt(0.5, 0.5))
	assert.True(t, p.CanBuildAt(3, 3))
	assert.True(t, p.CanBuildAt(1.9, 1.9)) // outside the diamond, inside its bounding box

	assert.False(t, p.CanCross(-3, 0, 3, 0)) // straight through
	assert.True(t, p.CanCross(-3, 3, 3, 3))  // clear above
}

func TestExcludePolygonTooFewPoints(t *testing.T) {
	p := ExcludePolygon([]Point{Pt(0, 0), Pt(1, 1)})
	assert.True(t, p.CanBuildAt(0.5, 0.5))
	assert.True(t, p.CanCross(0, 0, 1, 1))
}

func TestCombineAnyVetoWins(t *testing.T) {
	both := Combine(ExcludeRect(0, 0, 1, 1), ExcludeCircle(5, 5, 1))

	assert.False(t, both.CanBuildAt(0.5, 0.5))
	assert.False(t, both.CanBuildAt(5, 5))
	assert.True(t, both.CanBuildAt(3, 3))

	assert.False(t, both.CanCross(0.5, -5, 0.5, 5))
	assert.True(t, both.CanCross(2, 2, 3, 3))
}

func TestGridMask(t *testing.T) {
	m := NewGridMask(0, 0, 1.0, 10, 10)
	m.Exclude(5, 5)

	assert.False(t, m.CanBuildAt(5.5, 5.5))
	assert.True(t, m.CanBuildAt(4.5, 5.5))
	assert.True(t, m.CanBuildAt(-100, -100)) // outside the mask is open

	assert.False(t, m.CanCross(3.5, 5.5, 7.5, 5.5)) // walks through (5,5)
	assert.True(t, m.CanCross(3.5, 3.5, 7.5, 3.5))
}

func TestGridMaskIgnoresOutOfRangeExcludes(t *testing.T) {
	m := NewGridMask(0, 0, 1.0, 4, 4)
	m.Exclude(-1, 0)
	m.Exclude(0, 99)

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			assert.True(t, m.CanBuildAt(float64(x)+0.5, float64(y)+0.5))
		}
	}
}

func TestSegmentsIntersect(t *testing.T) {
	// a plain crossing
	assert.True(t, segmentsIntersect(0, 0, 2, 2, 0, 2, 2, 0))
	// parallel, never touch
	assert.False(t, segmentsIntersect(0, 0, 2, 0, 0, 1, 2, 1))
	// touching at an endpoint counts
	assert.True(t, segmentsIntersect(0, 0, 1, 1, 1, 1, 2, 0))
	// colinear overlap counts
	assert.True(t, segmentsIntersect(0, 0, 2, 0, 1, 0, 3, 0))
	// colinear but apart
	assert.False(t, segmentsIntersect(0, 0, 1, 0, 2, 0, 3, 0))
}

func TestSegmentDist(t *testing.T) {
	// closest point is mid-segment
	assert.InDelta(t, 1.0, segmentDist(1, 1, 0, 0, 2, 0), 1e-9)
	// closest point is an endpoint
	assert.InDelta(t, 5.0, segmentDist(5, 4, 0, 0, 2, 0), 1e-9)
	// degenerate segment
	assert.InDelta(t, 5.0, segmentDist(3, 4, 0, 0, 0, 0), 1e-9)
}
