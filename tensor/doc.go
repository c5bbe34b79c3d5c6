// Package tensor provides the complex128 dense-array primitives the Apply
// Engine (package mps) is built on: an n-dimensional Dense array with
// flat row-major storage, pairwise-index contraction, and the two
// decompositions the Apply Engine needs — complex Householder QR (used to
// gauge an MPS to a target bond) and a one-sided complex Jacobi SVD with
// built-in cutoff/maxdim truncation (used for the two-site update).
//
// Dense is styled directly after the teacher's matrix.Dense: a flat
// backing slice, O(1) shape queries, and bounds-checked accessors,
// generalized from a 2-D float64 matrix to an n-dimensional complex128
// tensor. QR and SVD are structural adaptations of the teacher's
// matrix/ops Householder-reflection and Jacobi-rotation sweeps,
// generalized to complex arithmetic — see DESIGN.md for the exact
// grounding of each.
package tensor
