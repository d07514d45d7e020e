// Package decompose - the uniform-random strategy.
package decompose

import (
	"fmt"
	"math/rand"

	"github.com/hhtong/dwave-hybrid/bqm"
)

// RandomSubproblemDecomposer selects size variables uniformly at
// random, without replacement and with no structural constraint on the
// result. It carries no rolling state: every call draws fresh.
//
// Relevant options: WithSeed, WithObserver.
type RandomSubproblemDecomposer struct {
	size    int
	rng     *rand.Rand
	observe Observer
}

// NewRandomSubproblem creates a random decomposer producing
// subproblems of exactly size variables. Returns ErrBadSize for a
// non-positive size, or the recorded option violation.
func NewRandomSubproblem(size int, opts ...Option) (*RandomSubproblemDecomposer, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &RandomSubproblemDecomposer{
		size:    size,
		rng:     rngFromSeed(o.Seed),
		observe: o.Observer,
	}, nil
}

// Setup implements Decomposer; nothing to prepare.
func (d *RandomSubproblemDecomposer) Setup(State) error { return nil }

// Select draws size variables at random and returns the state updated
// with the induced subproblem. Returns ErrSubproblemTooLarge when size
// exceeds the problem size; no clamping.
func (d *RandomSubproblemDecomposer) Select(st State) (State, error) {
	sample, err := bestSample(st)
	if err != nil {
		return st, err
	}
	problem := st.Problem

	if n := problem.NumVariables(); d.size > n {
		return st, fmt.Errorf("%w: %d > %d", ErrSubproblemTooLarge, d.size, n)
	}

	variables := problem.Variables()
	shuffleStringsInPlace(variables, d.rng)
	chosen := variables[:d.size]

	d.observe(Event{Name: EventSelect, Fields: map[string]any{
		"variables": chosen,
	}})

	sub, err := bqm.InducedBy(problem, chosen, sample)
	if err != nil {
		return st, err
	}
	return st.WithSubproblem(sub), nil
}
