// Package mps implements the Matrix-Product-State representation and the
// Apply Engine that mutates it: gauging a chain of rank-3 tensors to a
// target bond, contracting a local operator into it, and reconstructing the
// chain with SVD-based truncation. It is the numerical heart of the
// simulator, built directly on the tensor package's Dense/Contract/QR/SVD
// primitives the way the teacher's graph algorithms are built directly on
// core.Graph.
//
// The Gate and CompositeGate interfaces below are defined here, not in the
// gate package, because this package is their consumer (the Apply Engine)
// and the gate package already needs to import mps for BuildContext/MPS
// access when constructing operators — defining the contract on the
// consumer side keeps the dependency graph a DAG instead of a cycle.
package mps
