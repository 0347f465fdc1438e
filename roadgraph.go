package roadgraph

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/voidshard/roadgraph/internal/spatial"
)

// tolerance for distance compares at the MinDistance boundary, so a
// candidate sitting exactly on the spacing floor is accepted
const epsilon = 1e-9

// Engine grows a road network outward from a seed node, one frontier
// node per cycle.
//
// The engine owns its graph, spatial index & frontier outright; all
// mutation happens on the caller's goroutine inside Advance. Growth is
// deterministic for a fixed Seed & Terrain.
type Engine struct {
	cfg     *Config
	terrain Terrain
	rng     *rand.Rand

	graph    *Graph
	index    *spatial.Index
	frontier *frontier

	// Stats counts committed & rejected candidates so far
	Stats *GrowthStats

	// Seed the rng was built with, useful to reproduce a run when the
	// seed was randomly chosen
	Seed int64
}

// New creates an Engine with the given config & terrain.
// A nil terrain means open ground everywhere; a nil config means all
// defaults.
func New(cfg *Config, t Terrain) (*Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if t == nil {
		t = Open()
	}
	e := &Engine{cfg: cfg, terrain: t}
	return e, e.init()
}

// init validates config, fills in defaults & plants the seed node.
func (e *Engine) init() error {
	if e.cfg.Style == "" {
		e.cfg.Style = StyleRandom
	}
	if !e.cfg.Style.valid() {
		return fmt.Errorf("unknown growth style %q", e.cfg.Style)
	}
	if e.cfg.MinDistance <= 0 {
		e.cfg.MinDistance = 1
	}
	if e.cfg.GridSize < e.cfg.MinDistance {
		e.cfg.GridSize = e.cfg.MinDistance
	}
	if e.cfg.MaxDegree < 1 {
		e.cfg.MaxDegree = 4
	}
	if e.cfg.StepsPerFrame < 1 {
		e.cfg.StepsPerFrame = 10
	}
	if e.cfg.RebuildInterval < 1 {
		e.cfg.RebuildInterval = 10
	}
	if e.cfg.Bias == nil {
		e.cfg.Bias = &DirectionBias{Jitter: math.Pi / 16}
	}
	if len(e.cfg.Bias.Angles) == 0 {
		e.cfg.Bias.Angles = []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
	}
	if e.cfg.Seed == 0 {
		e.cfg.Seed = time.Now().UnixNano()
	}

	e.Seed = e.cfg.Seed
	e.rng = rand.New(rand.NewSource(e.cfg.Seed))

	e.graph = NewGraph()
	e.index = spatial.New(e.cfg.RebuildInterval)
	e.frontier = newFrontier(e.rng, e.cfg.RandomPop, e.cfg.MaxDegree)
	e.Stats = &GrowthStats{}

	seed := e.cfg.SeedPosition
	if !e.terrain.CanBuildAt(seed.X, seed.Y) {
		return fmt.Errorf("seed position (%v,%v) is not buildable", seed.X, seed.Y)
	}

	id, err := e.graph.AddNode(seed)
	if err != nil {
		return err
	}
	e.index.Insert(id, seed.X, seed.Y)
	e.frontier.PushIfEligible(id, 0)

	return nil
}

// Advance runs up to `steps` growth cycles, returning how many actually
// ran. It returns early when the frontier empties, which only happens
// once every node has saturated; the network is finished & further
// calls are no-ops.
// An error means a graph invariant was violated mid-cycle; this is a
// bug & the network should be considered suspect.
func (e *Engine) Advance(steps int) (int, error) {
	done := 0
	for done < steps {
		if e.frontier.Len() == 0 {
			return done, nil
		}
		err := e.step()
		if err != nil {
			return done, err
		}
		done++
	}
	return done, nil
}

// step runs one growth cycle; pop a node, try to sprout roads from it,
// re-queue whatever is still under the degree cap, advance time.
func (e *Engine) step() error {
	id, ok := e.frontier.Pop()
	if !ok {
		return nil
	}

	node, _ := e.graph.Node(id)
	count := e.proposeCount()

	for i := 0; i < count; i++ {
		if e.graph.Degree(id) >= e.cfg.MaxDegree {
			break // filled up mid cycle
		}

		c, ok := e.propose(node.Pos, i)
		if !ok {
			e.Stats.RejectedSpacing++
			continue
		}
		if !e.terrain.CanBuildAt(c.X, c.Y) || !e.terrain.CanCross(node.Pos.X, node.Pos.Y, c.X, c.Y) {
			e.Stats.RejectedTerrain++
			continue
		}

		nid, err := e.graph.AddNode(c)
		if err != nil {
			return err
		}
		_, err = e.graph.AddRoad(id, nid)
		if err != nil {
			return err
		}

		e.index.Insert(nid, c.X, c.Y)
		e.frontier.PushIfEligible(nid, e.graph.Degree(nid))
		e.Stats.Committed++
	}

	e.frontier.PushIfEligible(id, e.graph.Degree(id))
	e.graph.AdvanceStep()
	e.Stats.Cycles++
	return nil
}

// spaced returns if c is clear of every existing node by MinDistance.
// Nb. a node exactly MinDistance away is fine, hence the epsilon.
func (e *Engine) spaced(c Point) bool {
	return len(e.index.WithinRadius(c.X, c.Y, e.cfg.MinDistance-epsilon)) == 0
}

// Quiescent returns if growth has stopped for good; every node has
// saturated & Advance has nothing left to do.
func (e *Engine) Quiescent() bool {
	return e.frontier.Len() == 0
}

// Snapshot returns a copy of the network as it stands.
func (e *Engine) Snapshot() *Snapshot {
	return e.graph.Snapshot()
}

// CurrentStep returns how many growth cycles have run.
func (e *Engine) CurrentStep() int64 {
	return e.graph.CurrentStep()
}

// NodeCount returns how many nodes the network holds.
func (e *Engine) NodeCount() int {
	return e.graph.NodeCount()
}

// RoadCount returns how many roads the network holds.
func (e *Engine) RoadCount() int {
	return e.graph.RoadCount()
}

// SaveJSON writes the current network to disk as json.
func (e *Engine) SaveJSON(fpath string) error {
	data, err := json.Marshal(e.Snapshot())
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, data, 0644)
}

// LoadSnapshot reads a json Snapshot (see SaveJSON) from disk.
func LoadSnapshot(fpath string) (*Snapshot, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	s := &Snapshot{}
	err = json.Unmarshal(data, s)
	if err != nil {
		return nil, err
	}

	for _, r := range s.Roads {
		if r.A < 0 || r.A >= len(s.Nodes) || r.B < 0 || r.B >= len(s.Nodes) {
			return nil, fmt.Errorf("%w: road (%d, %d)", ErrInvalidEndpoint, r.A, r.B)
		}
	}
	return s, nil
}
