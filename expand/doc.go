// Package expand implements the Expander (spec.md §4.7): the pure,
// side-effect-free resolution of a symbolic Circuit into a concrete
// per-step list of ExpandedOps under a seeded RNG, used for diagrams and
// for test harnesses that predict what the Executor will run. It shares
// circuit.SelectBranch with the executor package so both sides of the RNG
// alignment contract (spec.md §4.5) draw from the same rule.
package expand
