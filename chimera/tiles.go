// Package chimera - partitioning a Chimera-indexed model into tiles.
package chimera

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hhtong/dwave-hybrid/bqm"
)

// node is a decoded Chimera linear index.
type node struct {
	i, j int // cell coordinates in the source lattice
	u    int // shore, 0 or 1
	k    int // position within the shore
}

// Tiles partitions the Chimera-indexed model b into m-by-n tiles of
// shore size t, returned in row-major tile order. Tiles covering no
// model variable are skipped, so every returned tile induces a
// nonempty subproblem.
//
// The source lattice shape is inferred from the largest linear index
// present, assuming the square lattices of real hardware: with C cells
// occupied, the source is taken as ceil(sqrt(C)) columns.
//
// Errors: ErrBadShape for non-positive m, n, or t; ErrNotChimeraIndexed
// for a variable name that is not a decimal linear index.
//
// Complexity: O(V log V) over the model's variables.
func Tiles(b *bqm.BQM, m, n, t int) ([]Tile, error) {
	if m < 1 || n < 1 || t < 1 {
		return nil, fmt.Errorf("%w: (%d, %d, %d)", ErrBadShape, m, n, t)
	}

	variables := b.Variables()
	if len(variables) == 0 {
		return nil, nil
	}

	indices := make(map[string]int, len(variables))
	maxIdx := 0
	for _, v := range variables {
		idx, err := strconv.Atoi(v)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrNotChimeraIndexed, v)
		}
		indices[v] = idx
		if idx > maxIdx {
			maxIdx = idx
		}
	}

	// Infer source lattice dimensions from the occupied cell count.
	cells := maxIdx/(2*t) + 1
	srcCols := int(math.Ceil(math.Sqrt(float64(cells))))
	srcRows := (cells + srcCols - 1) / srcCols

	// Bucket variables into tiles keyed by tile-grid coordinates.
	type tileKey struct{ row, col int }
	buckets := make(map[tileKey]map[string][]int)
	for _, v := range variables {
		nd := decode(indices[v], srcCols, t)
		key := tileKey{row: nd.i / m, col: nd.j / n}
		local := ((nd.i%m)*n+(nd.j%n))*2*t + nd.u*t + nd.k
		if buckets[key] == nil {
			buckets[key] = make(map[string][]int)
		}
		buckets[key][v] = []int{local}
	}

	// Emit tiles in row-major order over the tile grid.
	tileRows := (srcRows + m - 1) / m
	tileCols := (srcCols + n - 1) / n
	tiles := make([]Tile, 0, len(buckets))
	for ti := 0; ti < tileRows; ti++ {
		for tj := 0; tj < tileCols; tj++ {
			emb, ok := buckets[tileKey{row: ti, col: tj}]
			if !ok {
				continue
			}
			tiles = append(tiles, Tile{Row: ti, Col: tj, Embedding: emb})
		}
	}
	return tiles, nil
}

// decode splits a linear index into lattice coordinates given the
// source column count and shore size.
func decode(idx, srcCols, t int) node {
	cell := idx / (2 * t)
	rem := idx % (2 * t)
	return node{
		i: cell / srcCols,
		j: cell % srcCols,
		u: rem / t,
		k: rem % t,
	}
}
