// Package decompose - the energy-impact strategy.
package decompose

import (
	"github.com/hhtong/dwave-hybrid/bqm"
)

// EnergyImpactDecomposer selects the subproblem of variables maximally
// contributing to the problem energy, as measured by single-flip gains
// against the best current sample.
//
// With rolling enabled (the default), successive calls on the same
// problem roll down the gain ranking instead of re-picking the same
// high-impact variables, until the configured fraction of the problem
// has been exposed; the visited set then rewinds. With SilentRewind
// disabled, the rewinding call reports ErrEndOfStream and the next call
// starts the fresh cycle.
//
// The gain ranking is cached per (problem fingerprint, sample) and only
// recomputed when either changes. A problem change also rewinds the
// rolling state.
//
// Relevant options: WithMinGain, WithRolling, WithRollingHistory,
// WithSilentRewind, WithTraversal, WithObserver.
type EnergyImpactDecomposer struct {
	size int
	opts Options

	// rolling coverage across calls
	visited map[string]struct{}

	// (problem, sample) cache keys
	prevFingerprint uint64
	haveFingerprint bool
	prevSample      bqm.Sample

	// cached gain ranking and its lookup form
	ranking  []Gain
	priority map[string]float64
}

// NewEnergyImpact creates an energy-impact decomposer producing
// subproblems of up to size variables. Size is clamped per call when it
// exceeds the problem size. Returns ErrBadSize for a non-positive size,
// or the recorded option violation.
func NewEnergyImpact(size int, opts ...Option) (*EnergyImpactDecomposer, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &EnergyImpactDecomposer{
		size:    size,
		opts:    o,
		visited: make(map[string]struct{}),
	}, nil
}

// Setup implements Decomposer; nothing to prepare.
func (d *EnergyImpactDecomposer) Setup(State) error { return nil }

// rewind resets rolling coverage and re-keys the cache to the problem
// identified by fp.
func (d *EnergyImpactDecomposer) rewind(fp uint64) {
	d.visited = make(map[string]struct{})
	d.prevFingerprint = fp
	d.haveFingerprint = true
}

// Select picks the next variable subset and returns the state updated
// with the induced subproblem.
//
// Per call: clamp size to the problem; detect problem/sample change by
// value (content fingerprint, sample equality); rewind rolling state on
// problem change; recompute the gain ranking only when the cache key
// changed; rewind (and, with SilentRewind off, report ErrEndOfStream)
// once rolling history saturates; traverse; update rolling state;
// induce the sub-model.
func (d *EnergyImpactDecomposer) Select(st State) (State, error) {
	sample, err := bestSample(st)
	if err != nil {
		return st, err
	}
	problem := st.Problem

	size := d.size
	if n := problem.NumVariables(); size > n {
		// informational only; selection proceeds with the whole problem
		d.opts.Observer(Event{Name: EventClamp, Fields: map[string]any{
			"requested": d.size,
			"problem":   n,
		}})
		size = n
	}

	fp := problem.Fingerprint()
	problemChanged := !d.haveFingerprint || fp != d.prevFingerprint
	sampleChanged := !sample.Equal(d.prevSample)

	if problemChanged {
		d.rewind(fp)
	}
	if sampleChanged {
		d.prevSample = sample.Clone()
	}

	if problemChanged || sampleChanged || d.ranking == nil {
		ranking, gerr := FlipEnergyGains(problem, sample, d.opts.MinGain)
		if gerr != nil {
			return st, gerr
		}
		d.ranking = ranking
		d.priority = make(map[string]float64, len(ranking))
		for _, g := range ranking {
			d.priority[g.Variable] = g.Gain
		}
	}

	if d.opts.Rolling {
		if float64(len(d.visited)) >= d.opts.RollingHistory*float64(problem.NumVariables()) {
			d.opts.Observer(Event{Name: EventRewind, Fields: map[string]any{
				"unrolled": len(d.visited),
			}})
			// reset first, to be ready on the subsequent call
			d.rewind(fp)
			if !d.opts.SilentRewind {
				return st, ErrEndOfStream
			}
		}
	}

	next := d.traverse(problem, size)

	if d.opts.Rolling {
		for _, v := range next {
			d.visited[v] = struct{}{}
		}
	}
	d.opts.Observer(Event{Name: EventSelect, Fields: map[string]any{
		"variables": next,
	}})

	sub, err := bqm.InducedBy(problem, next, sample)
	if err != nil {
		return st, err
	}
	return st.WithSubproblem(sub), nil
}

// traverse dispatches the configured traversal over the cached ranking,
// excluding rolled-over variables.
func (d *EnergyImpactDecomposer) traverse(problem *bqm.BQM, size int) []string {
	switch d.opts.Traversal {
	case TraversalBFS:
		g := newSearchGraph(problem, d.visited)
		return iterativeSearch(g, d.ranking, d.visited, size, bfsNodes)
	case TraversalPFS:
		g := newSearchGraph(problem, d.visited)
		expand := func(g *searchGraph, source string, budget int) []string {
			return pfsNodes(g, source, budget, d.priority)
		}
		return iterativeSearch(g, d.ranking, d.visited, size, expand)
	default:
		return energyPick(d.ranking, d.visited, size)
	}
}
