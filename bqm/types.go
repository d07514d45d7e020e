// Package bqm defines core types and sentinel errors for binary
// quadratic models.
package bqm

import "errors"

// Sentinel errors for bqm operations.
var (
	// ErrEmptyVariable indicates a variable with an empty name.
	ErrEmptyVariable = errors.New("bqm: variable name is empty")

	// ErrVariableNotFound indicates an operation referenced a variable
	// absent from the model.
	ErrVariableNotFound = errors.New("bqm: variable not found")

	// ErrSelfInteraction indicates an interaction from a variable to itself.
	ErrSelfInteraction = errors.New("bqm: self-interaction not allowed")

	// ErrIncompleteSample indicates a sample missing a value for a
	// variable the operation needs.
	ErrIncompleteSample = errors.New("bqm: sample does not cover variable")

	// ErrEmptyScope indicates an induced sub-model was requested over an
	// empty variable selection.
	ErrEmptyScope = errors.New("bqm: induced scope is empty")

	// ErrEmptySampleSet indicates First was called on a sample set with
	// no records.
	ErrEmptySampleSet = errors.New("bqm: sample set is empty")

	// ErrVartypeMismatch indicates samples of one vartype were combined
	// with a model of another.
	ErrVartypeMismatch = errors.New("bqm: vartype mismatch")
)

// Vartype selects the domain of every variable in a model.
type Vartype int

const (
	// Binary variables take values in {0, 1}.
	Binary Vartype = iota
	// Spin variables take values in {-1, +1}.
	Spin
)

// String returns the conventional name of the vartype.
func (vt Vartype) String() string {
	if vt == Spin {
		return "SPIN"
	}
	return "BINARY"
}

// Sample is a total assignment of one value per variable.
type Sample map[string]int

// Clone returns an independent copy of the sample.
// Complexity: O(n).
func (s Sample) Clone() Sample {
	c := make(Sample, len(s))
	for v, x := range s {
		c[v] = x
	}
	return c
}

// Equal reports whether two samples assign identical values to
// identical variables.
// Complexity: O(n).
func (s Sample) Equal(o Sample) bool {
	if len(s) != len(o) {
		return false
	}
	for v, x := range s {
		y, ok := o[v]
		if !ok || x != y {
			return false
		}
	}
	return true
}

// convertValue maps a single value between vartypes:
// Binary 0 ↔ Spin -1, Binary 1 ↔ Spin +1.
func convertValue(x int, from, to Vartype) int {
	if from == to {
		return x
	}
	if from == Binary { // to Spin
		if x == 0 {
			return -1
		}
		return 1
	}
	// Spin to Binary
	if x == -1 {
		return 0
	}
	return 1
}
