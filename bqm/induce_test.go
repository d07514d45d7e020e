package bqm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhtong/dwave-hybrid/bqm"
)

// TestInducedBy_Scope verifies the induced model's variable set is
// exactly the scope and interactions inside it are copied unchanged.
func TestInducedBy_Scope(t *testing.T) {
	b := buildTriangle(t)
	fixed := bqm.Sample{"a": 1, "b": 0, "c": 1}

	sub, err := bqm.InducedBy(b, []string{"a", "b"}, fixed)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, sub.Variables())
	w, ok := sub.Quadratic("a", "b")
	require.True(t, ok)
	assert.Equal(t, 0.5, w)
	_, ok = sub.Quadratic("b", "c")
	assert.False(t, ok)
}

// TestInducedBy_BiasFolding verifies each kept variable's bias gains
// Σ fixed[u]·J_uv over excluded neighbors u.
func TestInducedBy_BiasFolding(t *testing.T) {
	b := buildTriangle(t)
	fixed := bqm.Sample{"a": 1, "b": 1, "c": 1}

	sub, err := bqm.InducedBy(b, []string{"a", "b"}, fixed)
	require.NoError(t, err)

	// a: 1.0 + c(1)·0.25 = 1.25; b: -0.5 + c(1)·(-1.0) = -1.5
	assert.InDelta(t, 1.25, sub.Linear("a"), 1e-12)
	assert.InDelta(t, -1.5, sub.Linear("b"), 1e-12)

	// with c fixed to 0 nothing folds
	sub, err = bqm.InducedBy(b, []string{"a", "b"}, bqm.Sample{"c": 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sub.Linear("a"), 1e-12)
	assert.InDelta(t, -0.5, sub.Linear("b"), 1e-12)
}

// TestInducedBy_FullScope verifies inducing over every variable
// reproduces the model (the offset excepted by contract).
func TestInducedBy_FullScope(t *testing.T) {
	b := buildTriangle(t)

	sub, err := bqm.InducedBy(b, []string{"a", "b", "c"}, bqm.Sample{})
	require.NoError(t, err)
	assert.True(t, sub.Equal(b))
}

// TestInducedBy_Errors covers the failure taxonomy.
func TestInducedBy_Errors(t *testing.T) {
	b := buildTriangle(t)

	_, err := bqm.InducedBy(b, nil, bqm.Sample{})
	assert.ErrorIs(t, err, bqm.ErrEmptyScope)

	_, err = bqm.InducedBy(b, []string{"a", "zz"}, bqm.Sample{})
	assert.ErrorIs(t, err, bqm.ErrVariableNotFound)

	// excluded neighbor c has no fixed value
	_, err = bqm.InducedBy(b, []string{"a", "b"}, bqm.Sample{})
	assert.ErrorIs(t, err, bqm.ErrIncompleteSample)
}
