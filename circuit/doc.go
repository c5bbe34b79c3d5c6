// Package circuit is the symbolic circuit representation and its builder
// (spec.md §4.6): a side-effect-free record of deterministic and stochastic
// operations, produced by a do-block-style builder in the teacher's
// functional-option idiom (one mutable Builder accumulating Operations,
// finalized into an immutable Circuit value). SelectBranch is the single
// stochastic-branch-selection subroutine the Expander and Executor both
// call, so the RNG alignment contract between offline expansion and live
// execution (spec.md §4.5) has exactly one implementation.
package circuit
