// Package decompose selects which subset of a quadratic model's
// variables should be jointly re-optimized next, given the best known
// assignment so far. It is the decomposition stage of an iterative
// hybrid optimization loop: it never solves anything itself.
//
// Every strategy implements the two-operation Decomposer contract:
//
//	Setup(state) error          — optional one-time preparation
//	Select(state) (state, err)  — repeatable selection
//
// Select returns a new State carrying the induced subproblem (and, for
// hardware tiling, an embedding); the input State is never mutated.
//
// Variants:
//
//   - EnergyImpactDecomposer — variables ranked by the energy reduction
//     of flipping each one alone, picked by energy order, breadth-first
//     or priority-first traversal of the interaction graph, with rolling
//     coverage across calls.
//   - RandomSubproblemDecomposer — uniform selection without replacement.
//   - TilingChimeraDecomposer — sequential hardware sub-lattice tiles.
//   - RandomConstraintDecomposer — whole constraint groups accumulated
//     breadth-first from a random seed group.
//   - IdentityDecomposer — the full problem, unchanged.
//
// Determinism: gain ranking ties break by the model's sorted variable
// order; priority-first expansion breaks score ties by insertion order;
// randomized variants draw from a seedable RNG (seed 0 selects a fixed
// default stream). Repeated runs with equal inputs and seeds agree.
//
// End of stream: when a strategy's coverage cycle completes (rolling
// rewind with silent rewind disabled, or a non-looping tile sequence
// exhausting), Select returns ErrEndOfStream with the input state.
// Callers match it with errors.Is and treat it as "restart the cycle",
// not as failure; the strategy has already reset itself.
//
// Concurrency: a decomposer instance mutates internal rolling and cache
// state across calls and must be driven by one caller at a time.
// Concurrent branches need one instance each. State values are
// immutable snapshots, safe to share read-only.
package decompose
