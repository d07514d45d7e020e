// Package decompose - the constraint-guided random strategy.
package decompose

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/hhtong/dwave-hybrid/bqm"
)

// RandomConstraintDecomposer selects variables randomly as constrained
// by groupings: whole constraint groups are accumulated breadth-first
// from a uniformly random seed group, never splitting a group, so each
// subproblem respects the problem's logical structure.
//
// Setup builds the group-adjacency graph (two groups are linked when
// they share at least one variable) exactly once.
//
// Relevant options: WithSeed, WithObserver.
type RandomConstraintDecomposer struct {
	size    int
	groups  [][]string
	rng     *rand.Rand
	observe Observer

	// adjacency[i] lists the groups sharing a variable with group i,
	// ascending; built by Setup.
	adjacency [][]int
	ready     bool
}

// NewRandomConstraint creates a constraint decomposer producing
// subproblems of up to size variables from the given variable groups.
// Returns ErrBadSize for a non-positive size, ErrNoConstraints for an
// empty list or an empty group, ErrConstraintTooLarge when any group
// exceeds size, or the recorded option violation.
func NewRandomConstraint(size int, groups [][]string, opts ...Option) (*RandomConstraintDecomposer, error) {
	if size < 1 {
		return nil, ErrBadSize
	}
	if len(groups) == 0 {
		return nil, ErrNoConstraints
	}
	for i, group := range groups {
		if len(group) == 0 {
			return nil, fmt.Errorf("%w: group %d is empty", ErrNoConstraints, i)
		}
		if len(group) > size {
			return nil, fmt.Errorf("%w: group %d has %d variables", ErrConstraintTooLarge, i, len(group))
		}
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// defensive copy; groups are read on every Select
	copied := make([][]string, len(groups))
	for i, group := range groups {
		copied[i] = append([]string(nil), group...)
	}
	return &RandomConstraintDecomposer{
		size:    size,
		groups:  copied,
		rng:     rngFromSeed(o.Seed),
		observe: o.Observer,
	}, nil
}

// Setup validates the size against the problem and builds the
// group-adjacency graph. Must run once before the first Select and must
// not run concurrently with one.
func (d *RandomConstraintDecomposer) Setup(st State) error {
	if st.Problem == nil {
		return ErrMissingProblem
	}
	if n := st.Problem.NumVariables(); d.size > n {
		return fmt.Errorf("%w: %d > %d", ErrSubproblemTooLarge, d.size, n)
	}

	members := make([]map[string]struct{}, len(d.groups))
	for i, group := range d.groups {
		members[i] = make(map[string]struct{}, len(group))
		for _, v := range group {
			members[i][v] = struct{}{}
		}
	}
	d.adjacency = make([][]int, len(d.groups))
	for i := range d.groups {
		for j := i + 1; j < len(d.groups); j++ {
			if sharesVariable(members[i], d.groups[j]) {
				d.adjacency[i] = append(d.adjacency[i], j)
				d.adjacency[j] = append(d.adjacency[j], i)
			}
		}
	}
	for i := range d.adjacency {
		sort.Ints(d.adjacency[i])
	}
	d.ready = true
	return nil
}

// sharesVariable reports whether any member of group belongs to set.
func sharesVariable(set map[string]struct{}, group []string) bool {
	for _, v := range group {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

// Select seeds from a uniformly random group, then walks the
// group-adjacency graph breadth-first, merging each reached group's
// members into the subset when the whole group still fits under size,
// and stopping early once size is reached exactly. The result is always
// a union of whole groups. Returns ErrNotInitialized before Setup.
func (d *RandomConstraintDecomposer) Select(st State) (State, error) {
	if !d.ready {
		return st, ErrNotInitialized
	}
	sample, err := bestSample(st)
	if err != nil {
		return st, err
	}

	seed := d.rng.Intn(len(d.groups))

	// construction already bounds every group; guard against state
	// corruption rather than crash downstream
	if len(d.groups[seed]) > d.size {
		return st, fmt.Errorf("%w: group %d at selection", ErrConstraintTooLarge, seed)
	}

	chosen := make(map[string]struct{}, d.size)
	for _, v := range d.groups[seed] {
		chosen[v] = struct{}{}
	}

	visited := map[int]struct{}{seed: {}}
	queue := []int{seed}
	for len(queue) > 0 && len(chosen) < d.size {
		g := queue[0]
		queue = queue[1:]
		for _, next := range d.adjacency[g] {
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)

			proposed := 0
			for _, v := range d.groups[next] {
				if _, ok := chosen[v]; !ok {
					proposed++
				}
			}
			if len(chosen)+proposed <= d.size {
				// merge members individually: the subset holds
				// variables, never nested groups
				for _, v := range d.groups[next] {
					chosen[v] = struct{}{}
				}
			}
			if len(chosen) == d.size {
				break
			}
		}
	}

	variables := make([]string, 0, len(chosen))
	for v := range chosen {
		variables = append(variables, v)
	}
	sort.Strings(variables)

	d.observe(Event{Name: EventSelect, Fields: map[string]any{
		"variables": variables,
	}})

	sub, err := bqm.InducedBy(st.Problem, variables, sample)
	if err != nil {
		return st, err
	}
	return st.WithSubproblem(sub), nil
}
