// Package state implements SimulationState (spec.md §3, §6): the mutable
// container an Apply Engine call or an Executor run actually mutates — an
// MPS, the basis mapping, scalar parameters (L, boundary condition,
// site-type label, local dimension, SVD cutoff, max bond dimension), an RNG
// registry, and the tracked-observable bookkeeping (name → spec, name →
// recorded series).
//
// A SimulationState is created via New, has observables registered via
// Track, is initialized exactly once via Initialize, and is then mutated by
// Apply / ApplyWithProb. It carries a RunID (a github.com/google/uuid v4
// value) purely as an opaque correlation handle for callers running many
// trajectories in parallel; the core never interprets it.
package state
