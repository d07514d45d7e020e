// Package bqm - the BQM type: construction, queries, energy, and
// content fingerprinting.
package bqm

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
)

// BQM is a binary quadratic model: linear biases, symmetric pairwise
// interactions, a constant offset, and a vartype fixing the variable
// domain.
//
// The zero value is not usable; construct with New. A BQM is mutable
// during construction and treated as read-only by the decomposition
// engine afterwards. It is not safe for concurrent mutation.
type BQM struct {
	vartype Vartype
	offset  float64

	// linear maps variable name → bias h_v.
	linear map[string]float64

	// quadratic[u][v] = quadratic[v][u] = J_uv for u != v.
	quadratic map[string]map[string]float64
}

// New creates an empty model of the given vartype.
// Complexity: O(1).
func New(vt Vartype) *BQM {
	return &BQM{
		vartype:   vt,
		linear:    make(map[string]float64),
		quadratic: make(map[string]map[string]float64),
	}
}

// Vartype returns the model's variable domain.
func (b *BQM) Vartype() Vartype { return b.vartype }

// Offset returns the constant energy offset.
func (b *BQM) Offset() float64 { return b.offset }

// SetOffset replaces the constant energy offset.
func (b *BQM) SetOffset(x float64) { b.offset = x }

// AddVariable ensures v exists in the model with a zero bias.
// Returns ErrEmptyVariable for an empty name.
// Complexity: O(1).
func (b *BQM) AddVariable(v string) error {
	if v == "" {
		return ErrEmptyVariable
	}
	if _, ok := b.linear[v]; !ok {
		b.linear[v] = 0
	}
	return nil
}

// SetLinear sets the linear bias of v, creating the variable if absent.
// Returns ErrEmptyVariable for an empty name.
// Complexity: O(1).
func (b *BQM) SetLinear(v string, bias float64) error {
	if v == "" {
		return ErrEmptyVariable
	}
	b.linear[v] = bias
	return nil
}

// SetQuadratic sets the interaction weight between u and v, creating
// either endpoint if absent. Returns ErrSelfInteraction when u == v and
// ErrEmptyVariable for an empty name.
// Complexity: O(1).
func (b *BQM) SetQuadratic(u, v string, weight float64) error {
	if u == "" || v == "" {
		return ErrEmptyVariable
	}
	if u == v {
		return fmt.Errorf("%w: %q", ErrSelfInteraction, u)
	}
	if err := b.AddVariable(u); err != nil {
		return err
	}
	if err := b.AddVariable(v); err != nil {
		return err
	}
	if b.quadratic[u] == nil {
		b.quadratic[u] = make(map[string]float64)
	}
	if b.quadratic[v] == nil {
		b.quadratic[v] = make(map[string]float64)
	}
	b.quadratic[u][v] = weight
	b.quadratic[v][u] = weight
	return nil
}

// HasVariable reports whether v exists in the model.
func (b *BQM) HasVariable(v string) bool {
	_, ok := b.linear[v]
	return ok
}

// NumVariables returns the number of variables.
func (b *BQM) NumVariables() int { return len(b.linear) }

// Linear returns the linear bias of v (zero when absent).
func (b *BQM) Linear(v string) float64 { return b.linear[v] }

// Quadratic returns the interaction weight between u and v, and whether
// the interaction exists.
func (b *BQM) Quadratic(u, v string) (float64, bool) {
	w, ok := b.quadratic[u][v]
	return w, ok
}

// Variables returns all variable names in sorted order.
// Complexity: O(n log n).
func (b *BQM) Variables() []string {
	vars := make([]string, 0, len(b.linear))
	for v := range b.linear {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// Neighbors returns the variables sharing a nonzero-recorded interaction
// with v, in sorted order. Returns ErrVariableNotFound when v is absent.
// Complexity: O(deg log deg).
func (b *BQM) Neighbors(v string) ([]string, error) {
	if !b.HasVariable(v) {
		return nil, fmt.Errorf("%w: %q", ErrVariableNotFound, v)
	}
	adj := b.quadratic[v]
	out := make([]string, 0, len(adj))
	for u := range adj {
		out = append(out, u)
	}
	sort.Strings(out)
	return out, nil
}

// Energy evaluates offset + Σ h_v·s_v + Σ_{u<v} J_uv·s_u·s_v for the
// given sample. Returns ErrIncompleteSample when the sample misses a
// model variable.
// Complexity: O(V + E).
func (b *BQM) Energy(s Sample) (float64, error) {
	e := b.offset
	for v, h := range b.linear {
		x, ok := s[v]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrIncompleteSample, v)
		}
		e += h * float64(x)
	}
	for u, adj := range b.quadratic {
		for v, w := range adj {
			if u < v { // each pair once
				e += w * float64(s[u]) * float64(s[v])
			}
		}
	}
	return e, nil
}

// Equal reports structural equality: same vartype, offset, variables,
// biases, and interactions, compared exactly.
// Complexity: O(V + E).
func (b *BQM) Equal(o *BQM) bool {
	if o == nil || b.vartype != o.vartype || b.offset != o.offset {
		return false
	}
	if len(b.linear) != len(o.linear) {
		return false
	}
	for v, h := range b.linear {
		oh, ok := o.linear[v]
		if !ok || h != oh {
			return false
		}
	}
	if len(b.quadratic) != len(o.quadratic) {
		return false
	}
	for u, adj := range b.quadratic {
		oadj := o.quadratic[u]
		if len(adj) != len(oadj) {
			return false
		}
		for v, w := range adj {
			ow, ok := oadj[v]
			if !ok || w != ow {
				return false
			}
		}
	}
	return true
}

// Fingerprint returns an FNV-1a content hash of the model. Two
// structurally equal models produce the same fingerprint, making it a
// by-value cache key for "is this the same problem as last call"
// checks, with no reliance on pointer identity.
// Complexity: O(V log V + E log E).
func (b *BQM) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeFloat := func(x float64) {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(x))
		_, _ = h.Write(buf[:])
	}
	writeString := func(s string) {
		_, _ = h.Write([]byte(s))
		_, _ = h.Write([]byte{0})
	}

	buf[0] = byte(b.vartype)
	_, _ = h.Write(buf[:1])
	writeFloat(b.offset)

	for _, v := range b.Variables() {
		writeString(v)
		writeFloat(b.linear[v])
	}
	// pairs in sorted (u, v) order, each once
	us := make([]string, 0, len(b.quadratic))
	for u := range b.quadratic {
		us = append(us, u)
	}
	sort.Strings(us)
	for _, u := range us {
		adj := b.quadratic[u]
		vs := make([]string, 0, len(adj))
		for v := range adj {
			if u < v {
				vs = append(vs, v)
			}
		}
		sort.Strings(vs)
		for _, v := range vs {
			writeString(u)
			writeString(v)
			writeFloat(adj[v])
		}
	}
	return h.Sum64()
}
