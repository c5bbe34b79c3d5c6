package mps

import (
	"math/rand"

	"github.com/katalvlaran/mpscircuit/simerr"
	"github.com/katalvlaran/mpscircuit/tensor"
)

// MPS is a chain of rank-3 complex tensors (left bond, physical, right
// bond), indexed by RAM position — the order sites actually appear along
// the chain, not the user-facing physical label (see the basis package for
// that mapping). Boundary bonds have dimension 1.
//
// orthoCenter tracks which RAM position the chain is currently gauged to,
// -1 meaning "no known canonical form" (e.g. right after a fresh random
// construction before any Gauge call).
type MPS struct {
	sites       []*tensor.Dense
	physDims    []int
	orthoCenter int
}

// Len returns the chain length (number of RAM positions).
func (m *MPS) Len() int { return len(m.sites) }

// PhysDim returns the local Hilbert-space dimension at RAM position i
// (0-based).
func (m *MPS) PhysDim(i int) int { return m.physDims[i] }

// Site returns the rank-3 tensor currently stored at RAM position i
// (0-based). Callers must not mutate the returned tensor; use Clone first.
func (m *MPS) Site(i int) (*tensor.Dense, error) {
	if i < 0 || i >= len(m.sites) {
		return nil, errSiteOutOfRange("mps.MPS.Site", i, len(m.sites))
	}
	return m.sites[i], nil
}

// BondDim returns the bond dimension between RAM positions i and i+1
// (0-based i, valid for 0 <= i < Len()-1).
func (m *MPS) BondDim(i int) (int, error) {
	if i < 0 || i >= len(m.sites)-1 {
		return 0, errSiteOutOfRange("mps.MPS.BondDim", i, len(m.sites)-1)
	}
	return m.sites[i].Shape()[2], nil
}

// Clone returns a deep, independent copy of the chain.
func (m *MPS) Clone() *MPS {
	out := &MPS{
		sites:       make([]*tensor.Dense, len(m.sites)),
		physDims:    append([]int(nil), m.physDims...),
		orthoCenter: m.orthoCenter,
	}
	for i, s := range m.sites {
		out.sites[i] = s.Clone()
	}
	return out
}

// NewProductState builds a length-len(physDims) chain with every bond
// dimension 1, placing a 1 at basisIndices[i] within the local dimension
// physDims[i] of RAM position i and zero elsewhere — the MPS
// representation of a pure computational-basis product state. The maximum
// link dimension of the result is 1, matching §8's invariant for
// ProductState initialization.
func NewProductState(physDims, basisIndices []int) (*MPS, error) {
	if len(physDims) != len(basisIndices) {
		return nil, simerr.InvalidArgument("mps.NewProductState", "physDims and basisIndices must have equal length, got %d and %d", len(physDims), len(basisIndices))
	}
	sites := make([]*tensor.Dense, len(physDims))
	for i, d := range physDims {
		if d <= 0 {
			return nil, simerr.InvalidArgument("mps.NewProductState", "physical dimension at position %d must be > 0, got %d", i, d)
		}
		if basisIndices[i] < 0 || basisIndices[i] >= d {
			return nil, simerr.InvalidArgument("mps.NewProductState", "basis index %d at position %d out of range for dimension %d", basisIndices[i], i, d)
		}
		t, err := tensor.NewDense(1, d, 1)
		if err != nil {
			return nil, err
		}
		if err := t.Set(1, 0, basisIndices[i], 0); err != nil {
			return nil, err
		}
		sites[i] = t
	}
	return &MPS{sites: sites, physDims: append([]int(nil), physDims...), orthoCenter: -1}, nil
}

// NewRandomMPS builds a length-len(physDims) chain of Haar-flavored random
// tensors capped at bondDim, used for the state_init RNG stream
// (SimulationState's RandomMPS InitSpec). Bond dimensions grow
// geometrically from the boundaries and are capped by both bondDim and the
// number of basis states reachable from either end, matching the standard
// "maximum representable bond dimension" shape used by exact MPS
// constructions before any truncation.
func NewRandomMPS(physDims []int, bondDim int, stream *rand.Rand) (*MPS, error) {
	if bondDim <= 0 {
		return nil, simerr.InvalidArgument("mps.NewRandomMPS", "bondDim must be > 0, got %d", bondDim)
	}
	n := len(physDims)
	bonds := make([]int, n+1)
	bonds[0] = 1
	bonds[n] = 1
	leftAcc, rightAcc := 1, 1
	for i := 1; i < n; i++ {
		leftAcc *= physDims[i-1]
		bonds[i] = min3(bondDim, leftAcc, 1<<30)
	}
	rightCap := make([]int, n+1)
	rightCap[n] = 1
	for i := n - 1; i >= 1; i-- {
		rightAcc *= physDims[i]
		rightCap[i] = min3(bondDim, rightAcc, 1<<30)
	}
	for i := 1; i < n; i++ {
		bonds[i] = min3(bonds[i], rightCap[i], bondDim)
	}

	sites := make([]*tensor.Dense, n)
	for i, d := range physDims {
		left, right := bonds[i], bonds[i+1]
		t, err := tensor.NewDense(left, d, right)
		if err != nil {
			return nil, err
		}
		for a := 0; a < left; a++ {
			for p := 0; p < d; p++ {
				for b := 0; b < right; b++ {
					re := 2*stream.Float64() - 1
					im := 2*stream.Float64() - 1
					_ = t.Set(complex(re, im), a, p, b)
				}
			}
		}
		sites[i] = t
	}
	out := &MPS{sites: sites, physDims: append([]int(nil), physDims...), orthoCenter: -1}
	if err := out.Normalize(); err != nil {
		return nil, err
	}
	return out, nil
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
