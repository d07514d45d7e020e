// Package decompose - the hardware-tiling strategy.
package decompose

import (
	"fmt"

	"github.com/hhtong/dwave-hybrid/bqm"
	"github.com/hhtong/dwave-hybrid/chimera"
)

// TilingChimeraDecomposer returns sequential Chimera sub-lattices that
// tile a hardware-structured problem. Setup partitions the problem into
// m-by-n tiles of shore size t exactly once; each Select consumes the
// next tile, induces its subproblem, and attaches the tile's embedding
// to the returned state.
//
// With Loop enabled (the default) the sequence cycles indefinitely;
// otherwise an exhausted sequence reports ErrEndOfStream on every
// further call. Tile order is fixed at Setup, so runs are reproducible.
//
// Relevant options: WithLoop, WithObserver.
type TilingChimeraDecomposer struct {
	m, n, t int
	loop    bool
	observe Observer

	tiles  []chimera.Tile
	cursor int
	ready  bool
}

// NewTilingChimera creates a tiling decomposer cutting (m, n, t)
// Chimera tiles. Returns chimera.ErrBadShape for non-positive
// dimensions, or the recorded option violation.
func NewTilingChimera(m, n, t int, opts ...Option) (*TilingChimeraDecomposer, error) {
	if m < 1 || n < 1 || t < 1 {
		return nil, fmt.Errorf("%w: (%d, %d, %d)", chimera.ErrBadShape, m, n, t)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &TilingChimeraDecomposer{
		m:       m,
		n:       n,
		t:       t,
		loop:    o.Loop,
		observe: o.Observer,
	}, nil
}

// Setup partitions the state's problem into tiles. Must run once before
// the first Select and must not run concurrently with one.
func (d *TilingChimeraDecomposer) Setup(st State) error {
	if st.Problem == nil {
		return ErrMissingProblem
	}
	tiles, err := chimera.Tiles(st.Problem, d.m, d.n, d.t)
	if err != nil {
		return err
	}
	d.tiles = tiles
	d.cursor = 0
	d.ready = true
	return nil
}

// Select consumes the next tile and returns the state updated with the
// tile's induced subproblem and embedding. Returns ErrNotInitialized
// before Setup and ErrEndOfStream once a non-looping sequence is
// exhausted.
func (d *TilingChimeraDecomposer) Select(st State) (State, error) {
	if !d.ready {
		return st, ErrNotInitialized
	}
	sample, err := bestSample(st)
	if err != nil {
		return st, err
	}

	if d.cursor >= len(d.tiles) {
		if !d.loop || len(d.tiles) == 0 {
			return st, ErrEndOfStream
		}
		d.cursor = 0
	}
	tile := d.tiles[d.cursor]
	d.cursor++

	d.observe(Event{Name: EventTile, Fields: map[string]any{
		"row": tile.Row,
		"col": tile.Col,
	}})

	sub, err := bqm.InducedBy(st.Problem, tile.Variables(), sample)
	if err != nil {
		return st, err
	}
	return st.WithSubproblem(sub).WithEmbedding(Embedding(tile.Embedding)), nil
}
