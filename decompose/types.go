// Package decompose defines the State container, the Decomposer
// contract, configuration options, observability hooks, and sentinel
// errors shared by all decomposition strategies.
package decompose

import (
	"errors"
	"fmt"
	"math"

	"github.com/hhtong/dwave-hybrid/bqm"
)

// Sentinel errors for decomposition operations.
var (
	// ErrEndOfStream signals that a strategy's coverage cycle completed
	// and its internal state was reset. Recoverable: the next Select
	// call starts a fresh cycle.
	ErrEndOfStream = errors.New("decompose: end of stream")

	// ErrMissingProblem indicates a State without a problem.
	ErrMissingProblem = errors.New("decompose: state has no problem")

	// ErrMissingSamples indicates a State without a sample set.
	ErrMissingSamples = errors.New("decompose: state has no samples")

	// ErrBadSize indicates a non-positive subproblem size.
	ErrBadSize = errors.New("decompose: subproblem size must be positive")

	// ErrSubproblemTooLarge indicates a requested size exceeding the
	// problem size, for strategies that do not clamp.
	ErrSubproblemTooLarge = errors.New("decompose: subproblem size exceeds problem size")

	// ErrRollingHistory indicates a rolling-history fraction outside [0, 1].
	ErrRollingHistory = errors.New("decompose: rolling history must be within [0.0, 1.0]")

	// ErrUnknownTraversal indicates an unsupported traversal mode.
	ErrUnknownTraversal = errors.New("decompose: traversal mode not supported")

	// ErrNoConstraints indicates a malformed constraint list: empty, or
	// containing an empty group.
	ErrNoConstraints = errors.New("decompose: constraints must be a nonempty list of nonempty variable groups")

	// ErrConstraintTooLarge indicates a constraint group larger than the
	// subproblem size.
	ErrConstraintTooLarge = errors.New("decompose: constraint group exceeds subproblem size")

	// ErrNotInitialized indicates Select was called before a required Setup.
	ErrNotInitialized = errors.New("decompose: setup has not been run")
)

// Embedding maps problem variables to chains of subproblem-local node
// indices, as produced by hardware tiling.
type Embedding map[string][]int

// State is the immutable snapshot threaded through the outer workflow
// loop: the full problem, its current sample set, and the subproblem
// (and embedding) produced by the previous decomposition step.
//
// State is a value record: the With* methods return shallow copies with
// one field overridden, never mutating the receiver, so a State may be
// shared read-only across concurrent branches.
type State struct {
	Problem    *bqm.BQM
	Samples    *bqm.SampleSet
	Subproblem *bqm.BQM
	Embedding  Embedding
}

// WithProblem returns a copy of the state with the problem replaced.
func (s State) WithProblem(p *bqm.BQM) State {
	s.Problem = p
	return s
}

// WithSamples returns a copy of the state with the sample set replaced.
func (s State) WithSamples(ss *bqm.SampleSet) State {
	s.Samples = ss
	return s
}

// WithSubproblem returns a copy of the state with the subproblem replaced.
func (s State) WithSubproblem(sub *bqm.BQM) State {
	s.Subproblem = sub
	return s
}

// WithEmbedding returns a copy of the state with the embedding replaced.
func (s State) WithEmbedding(emb Embedding) State {
	s.Embedding = emb
	return s
}

// Decomposer is the contract every selection strategy implements.
//
// Setup runs at most once per instance, before any Select, and prepares
// state that is expensive to compute (tile partitions, constraint
// adjacency). Strategies with nothing to prepare accept any state and
// return nil. Select consumes a State and returns a new one carrying
// the chosen subproblem. Instances are not safe for concurrent calls.
type Decomposer interface {
	Setup(State) error
	Select(State) (State, error)
}

// The built-in strategies form the closed variant set of Decomposer.
var (
	_ Decomposer = (*IdentityDecomposer)(nil)
	_ Decomposer = (*EnergyImpactDecomposer)(nil)
	_ Decomposer = (*RandomSubproblemDecomposer)(nil)
	_ Decomposer = (*TilingChimeraDecomposer)(nil)
	_ Decomposer = (*RandomConstraintDecomposer)(nil)
)

// Event is one structured occurrence reported to an Observer.
type Event struct {
	// Name identifies the occurrence; see the Event* constants.
	Name string

	// Fields carries event-specific values (sizes, variables, tile
	// coordinates). Callbacks must not retain or mutate the map.
	Fields map[string]any
}

// Event names reported by the built-in strategies.
const (
	// EventClamp: requested size exceeded the problem size and was
	// reduced to it. Fields: "requested", "problem".
	EventClamp = "clamp"

	// EventRewind: the rolling visited set was reset. Fields: "unrolled".
	EventRewind = "rewind"

	// EventSelect: a variable subset was chosen. Fields: "variables".
	EventSelect = "select"

	// EventTile: a tile was consumed. Fields: "row", "col".
	EventTile = "tile"
)

// Observer receives structured events from a decomposer. Observers run
// synchronously inside Select and must not call back into the same
// instance.
type Observer func(Event)

// nopObserver is the default Observer.
func nopObserver(Event) {}

// Traversal selects the algorithm EnergyImpactDecomposer uses to turn
// a gain ranking into a variable subset.
type Traversal string

const (
	// TraversalEnergy takes the next variables in descending-gain order,
	// ignoring graph adjacency.
	TraversalEnergy Traversal = "energy"

	// TraversalBFS grows breadth-first expansions of the interaction
	// graph seeded from the gain ranking.
	TraversalBFS Traversal = "bfs"

	// TraversalPFS grows priority-first expansions, absorbing the
	// highest-gain frontier variable first.
	TraversalPFS Traversal = "pfs"
)

// Options holds the tunable parameters shared by the strategy
// constructors. Each constructor reads only the fields relevant to it
// and ignores the rest.
type Options struct {
	// MinGain excludes variables whose flip gain is below it from the
	// energy-impact ranking. Defaults to -Inf (no threshold).
	MinGain float64

	// Rolling tracks variables already exposed across successive calls,
	// spreading coverage over the whole problem. Energy-impact only.
	Rolling bool

	// RollingHistory is the fraction of the problem size, in [0, 1],
	// that participates in rolling selection before a rewind.
	RollingHistory float64

	// SilentRewind resolves a rolling rewind internally; when false, the
	// rewinding call reports ErrEndOfStream instead.
	SilentRewind bool

	// Traversal picks the energy-impact traversal algorithm.
	Traversal Traversal

	// Loop makes tiling cycle through its tiles indefinitely; when
	// false, an exhausted sequence reports ErrEndOfStream.
	Loop bool

	// Seed drives the randomized strategies. Seed 0 selects a fixed
	// default stream, keeping defaults reproducible.
	Seed int64

	// Observer receives structured events; defaults to a no-op.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// Option configures a strategy constructor via functional arguments.
// An invalid Option is recorded internally and surfaced as the matching
// configuration sentinel by the constructor.
type Option func(*Options)

// DefaultOptions returns the package defaults:
//   - no minimum gain (-Inf)
//   - rolling on, history fraction 0.1, silent rewind
//   - energy traversal
//   - tile looping on
//   - seed 0 (fixed default RNG stream)
//   - no-op observer.
func DefaultOptions() Options {
	return Options{
		MinGain:        math.Inf(-1),
		Rolling:        true,
		RollingHistory: 0.1,
		SilentRewind:   true,
		Traversal:      TraversalEnergy,
		Loop:           true,
		Seed:           0,
		Observer:       nopObserver,
	}
}

// WithMinGain excludes variables gaining less than g from selection.
func WithMinGain(g float64) Option {
	return func(o *Options) { o.MinGain = g }
}

// WithRolling enables or disables rolling coverage.
func WithRolling(rolling bool) Option {
	return func(o *Options) { o.Rolling = rolling }
}

// WithRollingHistory sets the fraction of the problem participating in
// rolling selection. Values outside [0, 1] violate ErrRollingHistory.
func WithRollingHistory(h float64) Option {
	return func(o *Options) {
		if h < 0.0 || h > 1.0 {
			o.err = fmt.Errorf("%w: %v", ErrRollingHistory, h)
			return
		}
		o.RollingHistory = h
	}
}

// WithSilentRewind controls whether a rolling rewind is resolved
// silently (true) or reported as ErrEndOfStream (false).
func WithSilentRewind(silent bool) Option {
	return func(o *Options) { o.SilentRewind = silent }
}

// WithTraversal selects the energy-impact traversal algorithm.
// Unknown modes violate ErrUnknownTraversal.
func WithTraversal(t Traversal) Option {
	return func(o *Options) {
		switch t {
		case TraversalEnergy, TraversalBFS, TraversalPFS:
			o.Traversal = t
		default:
			o.err = fmt.Errorf("%w: %q", ErrUnknownTraversal, t)
		}
	}
}

// WithLoop controls whether tiling cycles through its tiles forever.
func WithLoop(loop bool) Option {
	return func(o *Options) { o.Loop = loop }
}

// WithSeed fixes the RNG stream of randomized strategies.
// Seed 0 keeps the default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithObserver registers a structured event callback.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// buildOptions applies opts over the defaults and surfaces any recorded
// option violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

// bestSample extracts the lowest-energy sample from the state,
// converted to the problem's vartype.
func bestSample(st State) (bqm.Sample, error) {
	if st.Problem == nil {
		return nil, ErrMissingProblem
	}
	if st.Samples == nil {
		return nil, ErrMissingSamples
	}
	first, err := st.Samples.ChangeVartype(st.Problem.Vartype()).First()
	if err != nil {
		return nil, err
	}
	return first.Sample, nil
}
