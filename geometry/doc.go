// Package geometry implements the abstract site patterns that gates are
// applied over: SingleSite, AdjacentPair, NextNearestNeighbor, Bricklayer
// (with named parities), AllSites, and the mutable pointers StaircaseLeft,
// StaircaseRight, and Pointer.
//
// Every Geometry exposes Elements, which returns the physical-site tuples
// it currently resolves to (one tuple for the "simple" geometries, several
// for the "compound" ones — Bricklayer and AllSites). Staircase geometries
// additionally support Advance, which mutates their internal cursor after
// a gate has been applied; Pointer supports the same site computation but
// is moved only by an explicit Move call, never automatically.
//
// ComputeSites is the side-effect-free twin of Elements used by the
// Expander (package expand): for staircases it treats its step argument as
// the number of advances since the geometry's recorded starting position,
// so that symbolic expansion never mutates a Circuit's geometry pointers
// (spec.md §4.2, §9 "mutable geometry pointers").
package geometry
