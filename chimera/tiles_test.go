package chimera_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhtong/dwave-hybrid/bqm"
	"github.com/hhtong/dwave-hybrid/chimera"
)

// buildLattice returns a model over the Chimera linear indices of a
// C(2,2,1) lattice: four cells of two nodes each, indices 0..7, with
// the in-cell couplers set.
func buildLattice(t *testing.T, omit ...int) *bqm.BQM {
	t.Helper()
	skip := make(map[int]struct{}, len(omit))
	for _, idx := range omit {
		skip[idx] = struct{}{}
	}
	b := bqm.New(bqm.Spin)
	for idx := 0; idx < 8; idx++ {
		if _, ok := skip[idx]; ok {
			continue
		}
		require.NoError(t, b.SetLinear(strconv.Itoa(idx), float64(idx)))
	}
	for cell := 0; cell < 4; cell++ {
		u, v := strconv.Itoa(2*cell), strconv.Itoa(2*cell+1)
		if b.HasVariable(u) && b.HasVariable(v) {
			require.NoError(t, b.SetQuadratic(u, v, -1))
		}
	}
	return b
}

// TestTiles_FullLattice verifies row-major single-cell tiling of a full
// 2x2 lattice.
func TestTiles_FullLattice(t *testing.T) {
	b := buildLattice(t)

	tiles, err := chimera.Tiles(b, 1, 1, 1)
	require.NoError(t, err)
	require.Len(t, tiles, 4)

	wantPos := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, tile := range tiles {
		assert.Equal(t, wantPos[i][0], tile.Row, "tile %d row", i)
		assert.Equal(t, wantPos[i][1], tile.Col, "tile %d col", i)

		// each cell holds its two shore nodes at locals 0 and 1
		vars := tile.Variables()
		require.Len(t, vars, 2)
		assert.Equal(t, []int{0}, tile.Embedding[vars[0]])
		assert.Equal(t, []int{1}, tile.Embedding[vars[1]])
	}

	// cell 0 covers exactly indices 0 and 1
	assert.Equal(t, []string{"0", "1"}, tiles[0].Variables())
}

// TestTiles_SkipsEmpty verifies tiles with no covered variable are
// dropped from the sequence.
func TestTiles_SkipsEmpty(t *testing.T) {
	// omit cell 2 (indices 4, 5)
	b := buildLattice(t, 4, 5)

	tiles, err := chimera.Tiles(b, 1, 1, 1)
	require.NoError(t, err)
	require.Len(t, tiles, 3)
	assert.Equal(t, [2]int{1, 1}, [2]int{tiles[2].Row, tiles[2].Col})
}

// TestTiles_MultiCell verifies a 1x2 tile window groups two cells and
// assigns distinct locals.
func TestTiles_MultiCell(t *testing.T) {
	b := buildLattice(t)

	tiles, err := chimera.Tiles(b, 1, 2, 1)
	require.NoError(t, err)
	require.Len(t, tiles, 2)

	top := tiles[0]
	assert.Equal(t, []string{"0", "1", "2", "3"}, top.Variables())
	// cell (0,0) → locals 0,1; cell (0,1) → locals 2,3
	assert.Equal(t, []int{0}, top.Embedding["0"])
	assert.Equal(t, []int{1}, top.Embedding["1"])
	assert.Equal(t, []int{2}, top.Embedding["2"])
	assert.Equal(t, []int{3}, top.Embedding["3"])
}

// TestTiles_Errors covers shape and naming validation.
func TestTiles_Errors(t *testing.T) {
	b := buildLattice(t)

	_, err := chimera.Tiles(b, 0, 1, 1)
	assert.ErrorIs(t, err, chimera.ErrBadShape)

	named := bqm.New(bqm.Spin)
	require.NoError(t, named.SetLinear("x7", 1))
	_, err = chimera.Tiles(named, 1, 1, 1)
	assert.ErrorIs(t, err, chimera.ErrNotChimeraIndexed)

	// an empty model tiles to nothing
	tiles, err := chimera.Tiles(bqm.New(bqm.Spin), 1, 1, 1)
	require.NoError(t, err)
	assert.Empty(t, tiles)
}
