// Package chimera defines the Tile type and sentinel errors for
// partitioning Chimera-structured models.
package chimera

import (
	"errors"
	"sort"
)

// Sentinel errors for chimera operations.
var (
	// ErrBadShape indicates a tile shape dimension that is not positive.
	ErrBadShape = errors.New("chimera: tile shape dimensions must be positive")

	// ErrNotChimeraIndexed indicates a model variable whose name is not
	// a decimal Chimera linear index.
	ErrNotChimeraIndexed = errors.New("chimera: variable is not a chimera linear index")
)

// Tile is one m-by-n window of the source lattice: its position in
// tile-grid coordinates and the embedding of the problem variables it
// covers.
type Tile struct {
	// Row and Col locate the tile in the grid of tiles (not in cells).
	Row, Col int

	// Embedding maps each covered problem variable to its chain of node
	// indices local to a C(m,n,t) tile. Chains here always have length
	// one; the slice form matches what downstream embedding consumers
	// expect.
	Embedding map[string][]int
}

// Variables returns the covered problem variables in sorted order.
// Complexity: O(V log V).
func (t Tile) Variables() []string {
	vars := make([]string, 0, len(t.Embedding))
	for v := range t.Embedding {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}
