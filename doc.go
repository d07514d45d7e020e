// Package hybrid decomposes large quadratic optimization problems over
// binary-valued variables into subproblems small enough for a local
// search or specialized sampler to optimize, as one stage of an
// iterative improvement loop.
//
// 🚀 What is dwave-hybrid?
//
//	A small, deterministic library that brings together:
//		• Binary quadratic models: biases, interactions, energy evaluation,
//		  samples ordered by energy, induced sub-models
//		• Tiling of hardware-structured (Chimera) problems into fixed-shape
//		  sub-lattices with embeddings
//		• Selection strategies: energy-impact (with energy, breadth-first
//		  and priority-first traversal), random, constraint-guided,
//		  hardware tiling, and identity
//
// ✨ Why choose it?
//
//   - Deterministic – every tie-break is documented and stable across runs
//   - Rolling coverage – repeated calls spread selection over the whole
//     variable space instead of re-picking the same high-impact variables
//   - Embeddable – no goroutines, no I/O, no global state; an injectable
//     Observer hook instead of a logger
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	bqm/       — BQM, Vartype, Sample and SampleSet types, InducedBy
//	chimera/   — Chimera lattice tiles and embeddings
//	decompose/ — State, the Decomposer contract, and the five variants
//
// Quick ASCII example (energy-impact selection, size 2):
//
//	    a───b          gains: a=5  b=3  c=1  d=0
//	    │ ╳ │    ──►   subproblem over {a, b}
//	    c───d
//
// A decomposer is invoked through two operations: an optional one-time
// Setup(state) and a repeatable Select(state), which returns a new State
// carrying the chosen subproblem (and, for tiling, an embedding). The
// outer workflow engine threads State through every stage; State values
// are never mutated in place.
//
//	go get github.com/hhtong/dwave-hybrid/decompose
package hybrid
