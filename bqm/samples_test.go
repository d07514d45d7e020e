package bqm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hhtong/dwave-hybrid/bqm"
)

// TestSampleSet_Ordering verifies ascending-energy order and First.
func TestSampleSet_Ordering(t *testing.T) {
	ss := bqm.NewSampleSet(bqm.Binary,
		bqm.Record{Sample: bqm.Sample{"a": 1}, Energy: 3.0},
		bqm.Record{Sample: bqm.Sample{"a": 0}, Energy: -1.0},
		bqm.Record{Sample: bqm.Sample{"a": 1}, Energy: 0.5},
	)

	require.Equal(t, 3, ss.Len())
	first, err := ss.First()
	require.NoError(t, err)
	assert.Equal(t, -1.0, first.Energy)
	assert.Equal(t, bqm.Sample{"a": 0}, first.Sample)
	assert.Equal(t, 3.0, ss.Record(2).Energy)
}

// TestSampleSet_FirstEmpty verifies the empty-set sentinel.
func TestSampleSet_FirstEmpty(t *testing.T) {
	_, err := bqm.NewSampleSet(bqm.Binary).First()
	assert.ErrorIs(t, err, bqm.ErrEmptySampleSet)
}

// TestSampleSet_FromSamples verifies energy annotation against a model.
func TestSampleSet_FromSamples(t *testing.T) {
	b := buildTriangle(t)
	ss, err := bqm.FromSamples(b,
		bqm.Sample{"a": 1, "b": 1, "c": 1},
		bqm.Sample{"a": 0, "b": 0, "c": 0},
	)
	require.NoError(t, err)

	first, err := ss.First()
	require.NoError(t, err)
	// all-zeros has energy 0, below all-ones (2.25)
	assert.Equal(t, 0.0, first.Energy)

	_, err = bqm.FromSamples(b, bqm.Sample{"a": 1})
	assert.ErrorIs(t, err, bqm.ErrIncompleteSample)
}

// TestSampleSet_ChangeVartype verifies lossless binary↔spin conversion.
func TestSampleSet_ChangeVartype(t *testing.T) {
	ss := bqm.NewSampleSet(bqm.Binary,
		bqm.Record{Sample: bqm.Sample{"a": 0, "b": 1}, Energy: 1.0},
	)

	spin := ss.ChangeVartype(bqm.Spin)
	first, err := spin.First()
	require.NoError(t, err)
	assert.Equal(t, bqm.Sample{"a": -1, "b": 1}, first.Sample)
	assert.Equal(t, 1.0, first.Energy)

	// round trip restores the original values
	back, err := spin.ChangeVartype(bqm.Binary).First()
	require.NoError(t, err)
	assert.Equal(t, bqm.Sample{"a": 0, "b": 1}, back.Sample)

	// matching vartype returns the receiver untouched
	assert.Same(t, ss, ss.ChangeVartype(bqm.Binary))
}
