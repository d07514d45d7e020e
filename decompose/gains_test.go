package decompose_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhtong/dwave-hybrid/bqm"
	"github.com/hhtong/dwave-hybrid/decompose"
)

// TestFlipEnergyGains_Ranking verifies descending order and values on
// the clique fixture.
func TestFlipEnergyGains_Ranking(t *testing.T) {
	b := buildClique(t)
	sample := bqm.Sample{"a": 1, "b": 1, "c": 1, "d": 1}

	gains, err := decompose.FlipEnergyGains(b, sample, math.Inf(-1))
	require.NoError(t, err)
	require.Len(t, gains, 4)

	want := []decompose.Gain{
		{Variable: "a", Gain: 5},
		{Variable: "b", Gain: 3},
		{Variable: "c", Gain: 1},
		{Variable: "d", Gain: 0},
	}
	for i, g := range gains {
		assert.Equal(t, want[i].Variable, g.Variable, "rank %d", i)
		assert.InDelta(t, want[i].Gain, g.Gain, 1e-12, "rank %d", i)
	}
}

// TestFlipEnergyGains_SpinSymmetry verifies the spin-domain gain of a
// lone variable: flipping s from +1 to -1 under bias h reduces energy
// by 2h.
func TestFlipEnergyGains_SpinSymmetry(t *testing.T) {
	b := bqm.New(bqm.Spin)
	require.NoError(t, b.SetLinear("s", 1.5))

	gains, err := decompose.FlipEnergyGains(b, bqm.Sample{"s": 1}, math.Inf(-1))
	require.NoError(t, err)
	require.Len(t, gains, 1)
	assert.InDelta(t, 3.0, gains[0].Gain, 1e-12)

	gains, err = decompose.FlipEnergyGains(b, bqm.Sample{"s": -1}, math.Inf(-1))
	require.NoError(t, err)
	assert.InDelta(t, -3.0, gains[0].Gain, 1e-12)
}

// TestFlipEnergyGains_MinGain verifies the threshold excludes exactly
// the variables below it, keeping the boundary.
func TestFlipEnergyGains_MinGain(t *testing.T) {
	b := buildClique(t)
	sample := bqm.Sample{"a": 1, "b": 1, "c": 1, "d": 1}

	gains, err := decompose.FlipEnergyGains(b, sample, 1.0)
	require.NoError(t, err)
	require.Len(t, gains, 3) // a=5, b=3, c=1; d=0 excluded
	assert.Equal(t, "c", gains[2].Variable)
}

// TestFlipEnergyGains_TieBreak verifies equal gains keep the model's
// sorted variable order across repeated calls.
func TestFlipEnergyGains_TieBreak(t *testing.T) {
	b := bqm.New(bqm.Binary)
	for _, v := range []string{"p", "q", "m", "z"} {
		require.NoError(t, b.SetLinear(v, 2.0))
	}
	sample := bqm.Sample{"p": 1, "q": 1, "m": 1, "z": 1}

	for run := 0; run < 3; run++ {
		gains, err := decompose.FlipEnergyGains(b, sample, math.Inf(-1))
		require.NoError(t, err)
		order := make([]string, len(gains))
		for i, g := range gains {
			order[i] = g.Variable
		}
		assert.Equal(t, []string{"m", "p", "q", "z"}, order, "run %d", run)
	}
}

// TestFlipEnergyGains_IncompleteSample verifies the error path.
func TestFlipEnergyGains_IncompleteSample(t *testing.T) {
	b := buildClique(t)
	_, err := decompose.FlipEnergyGains(b, bqm.Sample{"a": 1}, math.Inf(-1))
	assert.ErrorIs(t, err, bqm.ErrIncompleteSample)
}
