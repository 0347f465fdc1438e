package roadgraph

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GrowthStyle picks how new road directions are proposed.
type GrowthStyle string

const (
	// StyleRandom sprouts roads at uniformly random angles.
	StyleRandom GrowthStyle = "random"

	// StyleDirectional biases roads towards configured angles
	// (cardinal directions by default) with a little gaussian jitter.
	StyleDirectional GrowthStyle = "directional"

	// StyleGrid lays roads on a fixed square lattice.
	StyleGrid GrowthStyle = "grid"
)

// how many distances we try walking out from a node before giving up
// on a direction
const (
	randomRungs      = 5
	directionalRungs = 3
)

var allStyles = []GrowthStyle{StyleRandom, StyleDirectional, StyleGrid}

// valid returns if this is a style we know
func (s GrowthStyle) valid() bool {
	for _, known := range allStyles {
		if s == known {
			return true
		}
	}
	return false
}

// AllGrowthStyles returns all known GrowthStyle enums
func AllGrowthStyles() []GrowthStyle {
	return allStyles
}

// proposeCount returns how many candidates the active style sprouts
// from a single node in one cycle.
func (e *Engine) proposeCount() int {
	if e.cfg.Style == StyleGrid {
		// one per cardinal lattice neighbour
		return 4
	}
	return 1 + e.rng.Intn(3)
}

// propose returns the i-th candidate position around p, or ok=false
// when no position clear of existing nodes exists in the direction we
// picked.
func (e *Engine) propose(p Point, i int) (Point, bool) {
	switch e.cfg.Style {
	case StyleGrid:
		return e.gridOffset(p, i)
	case StyleDirectional:
		base := e.cfg.Bias.Angles[e.rng.Intn(len(e.cfg.Bias.Angles))]
		return e.walkOut(p, base+e.rng.NormFloat64()*e.cfg.Bias.Jitter, directionalRungs)
	default:
		return e.walkOut(p, e.rng.Float64()*2*math.Pi, randomRungs)
	}
}

// walkOut tries positions along the given angle at increasing distances
// between MinDistance & 2x MinDistance, returning the first that isn't
// too close to an existing node.
func (e *Engine) walkOut(p Point, angle float64, rungs int) (Point, bool) {
	sin, cos := math.Sincos(angle)
	for _, d := range floats.Span(make([]float64, rungs), e.cfg.MinDistance, 2*e.cfg.MinDistance) {
		c := Pt(p.X+d*cos, p.Y+d*sin)
		if e.spaced(c) {
			return c, true
		}
	}
	return Point{}, false
}

// gridOffset returns the i-th cardinal lattice neighbour of p, snapped
// onto the lattice.
func (e *Engine) gridOffset(p Point, i int) (Point, bool) {
	g := e.cfg.GridSize
	offsets := [4][2]float64{{g, 0}, {0, g}, {-g, 0}, {0, -g}}

	c := Pt(snap(p.X+offsets[i%4][0], g), snap(p.Y+offsets[i%4][1], g))
	return c, e.spaced(c)
}

// snap rounds v onto a lattice of the given size.
func snap(v, size float64) float64 {
	return math.Round(v/size) * size
}
