// Package mpscircuit simulates one-dimensional monitored quantum circuits
// on Matrix-Product-State representations — deterministic unitary gates,
// projective measurements, Born-rule stochastic outcomes, and programmatic
// sweeps over many trajectories.
//
// 🚀 What is mpscircuit?
//
//	A lazy-circuit / apply-engine core that combines:
//		• RNG registry: independent named streams (ctrl, proj, haar, born, state_init)
//		• Basis mapping: physical-site <-> RAM-index bijections for open/periodic/NNN chains
//		• Geometry layer: SingleSite, AdjacentPair, NNN, Bricklayer, AllSites, staircases, pointers
//		• Gate catalog: Pauli, CZ, HaarRandom, Projection, Measurement, Reset, spin-sector gates
//		• Apply engine: SVD-truncated MPS updates with Born sampling and correct normalization
//		• Symbolic circuits + a do-block builder, their deterministic Expander, and a live Executor
//		• A recording subsystem sampling registered observables against declarative predicates
//
// ✨ Why this shape?
//
//   - Byte-reproducible trajectories — the Expander and Executor draw from
//     RNG streams in lock-step, so offline expansion predicts exactly what
//     a live run will execute
//   - Single-threaded cooperative state — every SimulationState owns its
//     MPS, basis, and RNG registry exclusively; no interior mutability
//     shared across trajectories
//   - Pure Go — no cgo, no hidden deps beyond a UUID generator and the test
//     toolkit
//
// Under the hood, everything is organized under package-per-concern
// subpackages:
//
//	rng/        — named, independently seeded pseudo-random streams
//	basis/      — physical-site <-> RAM-index mapping
//	geometry/   — abstract site patterns, including mutable staircases/pointers
//	tensor/     — dense complex tensors, contraction, QR, SVD, Hermitian eigendecomposition
//	mps/        — the Matrix-Product-State chain and the apply engine
//	gate/       — the gate catalog (unitary, projective, composite, spin-sector)
//	observable/ — the observable interface and recording Context
//	circuit/    — the symbolic circuit, its builder, and branch selection
//	expand/     — the pure, offline circuit expander
//	state/      — SimulationState: initialization, application, recording
//	executor/   — runs a circuit against a SimulationState for N repetitions
//
// Quick sketch:
//
//	s, _ := state.New(4, basis.Open, state.WithRNGSeed(42))
//	_ = state.Initialize(s, state.ProductStateFromBinaryInt(0))
//	b, _ := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(2))
//	_ = b.Apply(gate.HaarRandom{}, geometry.NewStaircaseRight(1, 1))
//	_ = executor.Simulate(s, b.Build(), 10, executor.EveryStep())
package mpscircuit
