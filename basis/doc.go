// Package basis implements the deterministic bijection between physical
// sites (1..L) and RAM indices (the order sites appear along the MPS
// chain): identity for open boundary conditions, the folded mapping for
// periodic boundary conditions, and the outward-from-middle permutation for
// the NNN-friendly folded mapping.
//
// Both directions (PhyToRAM, RAMToPhy) are always mutual inverses and
// permutations of 1..L; Mapping.Validate checks this invariant directly,
// which every constructor in this package already guarantees by
// construction.
package basis
