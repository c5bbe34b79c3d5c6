package geometry

import "github.com/katalvlaran/mpscircuit/basis"

// Kind tags the closed set of geometry variants the engine dispatches on.
type Kind int

const (
	KindSingleSite Kind = iota
	KindAdjacentPair
	KindNextNearestNeighbor
	KindBricklayer
	KindAllSites
	KindStaircaseLeft
	KindStaircaseRight
	KindPointer
)

// String renders the kind name for diagnostics and ExpandedOp labels.
func (k Kind) String() string {
	switch k {
	case KindSingleSite:
		return "SingleSite"
	case KindAdjacentPair:
		return "AdjacentPair"
	case KindNextNearestNeighbor:
		return "NextNearestNeighbor"
	case KindBricklayer:
		return "Bricklayer"
	case KindAllSites:
		return "AllSites"
	case KindStaircaseLeft:
		return "StaircaseLeft"
	case KindStaircaseRight:
		return "StaircaseRight"
	case KindPointer:
		return "Pointer"
	default:
		return "Unknown"
	}
}

// Geometry is the tagged-sum interface every pattern implements.
type Geometry interface {
	// Kind identifies the concrete variant for dispatch.
	Kind() Kind
	// Elements returns the physical-site tuples this geometry currently
	// resolves to under the given chain length and boundary condition: a
	// single tuple for "simple" geometries, several for compound ones
	// (Bricklayer, AllSites).
	Elements(L int, bc basis.BoundaryCondition) ([][]int, error)
}

// Compound is implemented by geometries that expand into more than one
// gate application per Operation (Bricklayer, AllSites).
type Compound interface {
	Geometry
	IsCompound() bool
}

// Staircase is implemented by the mutable-pointer geometries that advance
// automatically once a gate has been applied through them.
type Staircase interface {
	Geometry
	// Advance mutates the geometry's internal cursor forward (StaircaseRight)
	// or backward (StaircaseLeft) by one position, wrapping per bc.
	Advance(L int, bc basis.BoundaryCondition) error
	// Position reports the current cursor value (1-based).
	Position() int
}
