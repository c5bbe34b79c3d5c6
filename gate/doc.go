// Package gate implements the Gate Catalog: concrete single- and two-site
// operators satisfying the mps.Gate / mps.CompositeGate contracts. Every
// type here is a small, side-effect-free value; randomness and MPS access
// flow in only through the mps.BuildContext the Apply Engine provides at
// call time, never through package-level state, matching the "no global
// state in the core" design note — the one process-wide registration the
// source spec allows for (spin-operator definitions for S=1) belongs to
// test fixtures, not this package, because the core treats spin-sector
// projector matrices as opaque caller-supplied input (see spec.md §1).
package gate
