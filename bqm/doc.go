// Package bqm implements binary quadratic models: optimization problems
// over binary-valued variables with per-variable linear biases, pairwise
// interaction weights, and a constant offset.
//
// A model has a Vartype — Binary ({0,1}) or Spin ({-1,+1}) — that fixes
// the domain of every variable. Energy of an assignment s is
//
//	E(s) = offset + Σ_v h_v·s_v + Σ_{u<v} J_uv·s_u·s_v
//
// The package also provides:
//
//   - Sample and SampleSet — assignments annotated with energy, ordered
//     ascending so First() is the best known assignment, with lossless
//     binary↔spin conversion.
//   - InducedBy — the sub-model over a variable subset, with the effect
//     of fixed excluded neighbors folded into the subset's linear biases.
//   - Fingerprint — a content hash so callers can detect "same problem
//     as last time" by value rather than by pointer identity.
//
// Every iteration order exposed by the package (Variables, Neighbors)
// is sorted, so algorithms built on top get deterministic tie-breaks
// for free.
package bqm
