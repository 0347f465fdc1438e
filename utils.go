package roadgraph

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
)

// calculateDist standard pythag.
func calculateDist(ax, ay, bx, by float64) float64 {
	return math.Sqrt(math.Pow(ax-bx, 2) + math.Pow(ay-by, 2))
}

// segmentDist returns the shortest distance from the point (px, py) to
// the segment (ax, ay) -> (bx, by).
func segmentDist(px, py, ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay

	l2 := dx*dx + dy*dy
	if l2 == 0 { // segment is a point
		return calculateDist(px, py, ax, ay)
	}

	// project onto the segment, clamped to its ends
	t := ((px-ax)*dx + (py-ay)*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return calculateDist(px, py, ax+t*dx, ay+t*dy)
}

// cross is the sign of the 2d cross product (b-a) x (p-a)
func cross(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// onSegment returns if p (already known colinear) sits within the
// segment's bounding box
func onSegment(ax, ay, bx, by, px, py float64) bool {
	return math.Min(ax, bx) <= px && px <= math.Max(ax, bx) &&
		math.Min(ay, by) <= py && py <= math.Max(ay, by)
}

// segmentsIntersect returns if the segments (a1 -> a2) & (b1 -> b2)
// cross, touching counts. Standard orientation test.
func segmentsIntersect(a1x, a1y, a2x, a2y, b1x, b1y, b2x, b2y float64) bool {
	d1 := cross(b1x, b1y, b2x, b2y, a1x, a1y)
	d2 := cross(b1x, b1y, b2x, b2y, a2x, a2y)
	d3 := cross(a1x, a1y, a2x, a2y, b1x, b1y)
	d4 := cross(a1x, a1y, a2x, a2y, b2x, b2y)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(b1x, b1y, b2x, b2y, a1x, a1y) {
		return true
	}
	if d2 == 0 && onSegment(b1x, b1y, b2x, b2y, a2x, a2y) {
		return true
	}
	if d3 == 0 && onSegment(a1x, a1y, a2x, a2y, b1x, b1y) {
		return true
	}
	return d4 == 0 && onSegment(a1x, a1y, a2x, a2y, b2x, b2y)
}

// savePNG to disk
func savePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}
