package roadgraph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthStats(t *testing.T) {
	g := NewGraph()
	a, _ := g.AddNode(Pt(0, 0))
	b, _ := g.AddNode(Pt(3, 0))
	c, _ := g.AddNode(Pt(3, 5))

	_, err := g.AddRoad(a, b) // length 3
	require.NoError(t, err)
	_, err = g.AddRoad(b, c) // length 5
	require.NoError(t, err)

	mean, stddev := g.Snapshot().LengthStats()
	assert.InDelta(t, 4.0, mean, 1e-9)
	assert.InDelta(t, math.Sqrt2, stddev, 1e-9)
}

func TestLengthStatsSingleRoad(t *testing.T) {
	g := NewGraph()
	a, _ := g.AddNode(Pt(0, 0))
	b, _ := g.AddNode(Pt(0, 2))
	_, err := g.AddRoad(a, b)
	require.NoError(t, err)

	mean, stddev := g.Snapshot().LengthStats()
	assert.InDelta(t, 2.0, mean, 1e-9)
	assert.Zero(t, stddev)
}

func TestLengthStatsEmpty(t *testing.T) {
	mean, stddev := NewGraph().Snapshot().LengthStats()
	assert.Zero(t, mean)
	assert.Zero(t, stddev)
}

func TestGrowthStatsAccumulate(t *testing.T) {
	eng, err := New(&Config{Style: StyleGrid, MinDistance: 1, Seed: 9}, nil)
	require.NoError(t, err)

	_, err = eng.Advance(50)
	require.NoError(t, err)

	assert.Equal(t, int64(50), eng.Stats.Cycles)
	assert.Equal(t, eng.NodeCount()-1, eng.Stats.Committed)
	// a packed lattice guarantees plenty of collisions along the way
	assert.Greater(t, eng.Stats.RejectedSpacing, 0)
	assert.Equal(t, 0, eng.Stats.RejectedTerrain)
}
