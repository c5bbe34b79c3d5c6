// Package observable defines the read-only contract SimulationState uses to
// sample a scalar from its MPS on demand (spec.md §4.9). It carries no
// physics: concrete formulas (domain-wall magnetization, entanglement
// entropy, string order) are the caller's responsibility, exactly as
// spin-sector projector matrices are the caller's responsibility in the
// gate package.
package observable
