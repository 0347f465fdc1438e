package roadgraph

// Terrain tells the growth engine what the world allows at a given
// location. Implementations should be pure; the engine treats terrain
// as fixed for the life of a run.
// We only have two questions;
// - can a node sit at (x, y)?
// - can a road run straight between two positions? (ie. it doesn't cut
//   through anything off limits, even where both ends are fine)
type Terrain interface {
	// true if a node may be placed at this position
	CanBuildAt(x, y float64) bool

	// true if a road may join the two positions
	CanCross(ax, ay, bx, by float64) bool
}
