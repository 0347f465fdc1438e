package roadgraph

import (
	"gonum.org/v1/gonum/stat"
)

// GrowthStats counts what the engine has done so far; handy for
// end-of-run reports.
type GrowthStats struct {
	// Cycles run (one popped node per cycle)
	Cycles int64

	// Committed candidates, ie. nodes + roads actually created
	Committed int

	// RejectedSpacing counts candidates for which no position clear
	// of existing nodes could be found
	RejectedSpacing int

	// RejectedTerrain counts candidates vetoed by terrain
	RejectedTerrain int
}

// RoadLengths returns the length of every road in the snapshot.
func (s *Snapshot) RoadLengths() []float64 {
	out := make([]float64, len(s.Roads))
	for i, r := range s.Roads {
		a := s.Nodes[r.A].Pos
		b := s.Nodes[r.B].Pos
		out[i] = calculateDist(a.X, a.Y, b.X, b.Y)
	}
	return out
}

// LengthStats returns the mean & sample standard deviation of road
// lengths, (0, 0) for a network with no roads.
func (s *Snapshot) LengthStats() (mean, stddev float64) {
	lengths := s.RoadLengths()
	if len(lengths) == 0 {
		return 0, 0
	}
	if len(lengths) == 1 {
		return lengths[0], 0
	}
	return stat.Mean(lengths, nil), stat.StdDev(lengths, nil)
}
