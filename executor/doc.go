// Package executor implements the Executor and Recording Controller
// (spec.md §4.8, §4.10): running a symbolic Circuit against a
// SimulationState for N repetitions, honoring a recording predicate, and
// keeping RNG consumption byte-identical with what the expand package
// would predict for the same stream seeds (spec.md §5's central testable
// invariant).
package executor
