package roadgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	raw := `
style: grid
seed_position: {x: 4, y: 2}
min_distance: 2.5
grid_size: 3
max_degree: 3
random_pop: true
seed: 77
exclusions:
  rects:
    - {min_x: 0, min_y: 0, max_x: 5, max_y: 5}
  circles:
    - {x: 9, y: 9, r: 2}
  polygons:
    - [{x: 20, y: 20}, {x: 22, y: 20}, {x: 21, y: 23}]
`
	fpath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte(raw), 0644))

	cfg, err := LoadConfig(fpath)
	require.NoError(t, err)

	assert.Equal(t, StyleGrid, cfg.Style)
	assert.Equal(t, Pt(4, 2), cfg.SeedPosition)
	assert.Equal(t, 2.5, cfg.MinDistance)
	assert.Equal(t, 3.0, cfg.GridSize)
	assert.Equal(t, 3, cfg.MaxDegree)
	assert.True(t, cfg.RandomPop)
	assert.Equal(t, int64(77), cfg.Seed)

	require.NotNil(t, cfg.Exclusions)
	assert.Len(t, cfg.Exclusions.Rects, 1)
	assert.Len(t, cfg.Exclusions.Circles, 1)
	require.Len(t, cfg.Exclusions.Polygons, 1)
	assert.Len(t, cfg.Exclusions.Polygons[0], 3)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/no/such/file.yaml")
	assert.Error(t, err)
}

func TestLoadConfigBadYaml(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(fpath, []byte("style: [nope"), 0644))

	_, err := LoadConfig(fpath)
	assert.Error(t, err)
}

func TestExclusionSetTerrain(t *testing.T) {
	var empty *ExclusionSet
	open := empty.Terrain() // nil set is open ground
	assert.True(t, open.CanBuildAt(0, 0))

	es := &ExclusionSet{
		Rects:   []RectDef{{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}},
		Circles: []CircleDef{{X: 5, Y: 5, R: 1}},
	}
	terr := es.Terrain()
	assert.False(t, terr.CanBuildAt(0.5, 0.5))
	assert.False(t, terr.CanBuildAt(5, 5))
	assert.True(t, terr.CanBuildAt(-2, -2))
}

func TestEngineAppliesDefaults(t *testing.T) {
	eng, err := New(&Config{Seed: 1}, nil)
	require.NoError(t, err)

	assert.Equal(t, StyleRandom, eng.cfg.Style)
	assert.Equal(t, 1.0, eng.cfg.MinDistance)
	assert.Equal(t, 1.0, eng.cfg.GridSize)
	assert.Equal(t, 4, eng.cfg.MaxDegree)
	assert.Equal(t, 10, eng.cfg.StepsPerFrame)
	assert.Equal(t, 10, eng.cfg.RebuildInterval)
	require.NotNil(t, eng.cfg.Bias)
	assert.Len(t, eng.cfg.Bias.Angles, 4)
	assert.Equal(t, int64(1), eng.Seed)
}

func TestEngineRejectsUnknownStyle(t *testing.T) {
	_, err := New(&Config{Style: "spiral"}, nil)
	assert.Error(t, err)
}

func TestGridSizeRaisedToMinDistance(t *testing.T) {
	eng, err := New(&Config{Style: StyleGrid, MinDistance: 2, GridSize: 0.5, Seed: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, eng.cfg.GridSize)
}

func TestRandomSeedChosenWhenZero(t *testing.T) {
	eng, err := New(nil, nil)
	require.NoError(t, err)
	assert.NotEqual(t, int64(0), eng.Seed)
}
