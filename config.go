package roadgraph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for a growth run.
// Everything here has a usable default; a zero Config grows a
// random-style network out from the origin.
type Config struct {
	// Style of growth; random, directional or grid (see styles.go).
	// Random if not given.
	Style GrowthStyle `yaml:"style"`

	// SeedPosition is where the first node is planted.
	SeedPosition Point `yaml:"seed_position"`

	// MinDistance is the spacing floor; no two nodes may sit closer
	// together than this. New roads reach out to between MinDistance
	// & 2x MinDistance from their parent node.
	// Defaults to 1.
	MinDistance float64 `yaml:"min_distance"`

	// GridSize is the lattice spacing used by the grid style.
	// Defaults to MinDistance & is raised to MinDistance if set lower,
	// since lattice points closer together than the spacing floor can
	// never be built anyway.
	GridSize float64 `yaml:"grid_size"`

	// Bias configures the directional style; the angles roads prefer
	// & how much they wander off them. Cardinal directions with a
	// little jitter if not given.
	Bias *DirectionBias `yaml:"direction_bias"`

	// MaxDegree caps how many roads may meet at one node. A node at
	// the cap is saturated & permanently leaves the frontier.
	// Defaults to 4.
	MaxDegree int `yaml:"max_degree"`

	// StepsPerFrame is how many growth cycles run between renders (or
	// interrupt checks) in batch loops. Defaults to 10.
	StepsPerFrame int `yaml:"steps_per_frame"`

	// RebuildInterval is how many inserts the spatial index accepts
	// before rebuilding its tree. New nodes are visible to queries
	// either way. Defaults to 10.
	RebuildInterval int `yaml:"rebuild_interval"`

	// RandomPop expands frontier nodes in random order rather than
	// oldest first. Growth is deterministic for a fixed Seed either way.
	RandomPop bool `yaml:"random_pop"`

	// Seed for rng (random seed chosen if not set)
	Seed int64 `yaml:"seed"`

	// Exclusions declares regions roads must keep out of; sugar for
	// building a Terrain without writing one (see ExclusionSet).
	Exclusions *ExclusionSet `yaml:"exclusions"`
}

// DirectionBias configures the directional growth style.
type DirectionBias struct {
	// Angles (radians) that roads prefer to follow.
	Angles []float64 `yaml:"angles"`

	// Jitter is the stddev (radians) of gaussian noise added to the
	// chosen angle.
	Jitter float64 `yaml:"jitter"`
}

// ExclusionSet declares regions no node or road may enter.
type ExclusionSet struct {
	Rects    []RectDef   `yaml:"rects"`
	Circles  []CircleDef `yaml:"circles"`
	Polygons [][]Point   `yaml:"polygons"`
}

// RectDef is an axis aligned exclusion rectangle.
type RectDef struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// CircleDef is a circular exclusion region.
type CircleDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
}

// Terrain builds the composite Terrain this exclusion set describes.
// A nil or empty set is open terrain.
func (e *ExclusionSet) Terrain() Terrain {
	if e == nil {
		return Open()
	}

	ts := []Terrain{}
	for _, r := range e.Rects {
		ts = append(ts, ExcludeRect(r.MinX, r.MinY, r.MaxX, r.MaxY))
	}
	for _, c := range e.Circles {
		ts = append(ts, ExcludeCircle(c.X, c.Y, c.R))
	}
	for _, pts := range e.Polygons {
		ts = append(ts, ExcludePolygon(pts))
	}

	if len(ts) == 0 {
		return Open()
	}
	return Combine(ts...)
}

// LoadConfig reads a yaml Config from disk.
func LoadConfig(fpath string) (*Config, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", fpath, err)
	}
	return cfg, nil
}
