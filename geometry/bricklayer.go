package geometry

import "github.com/katalvlaran/mpscircuit/basis"

// Parity selects which layer of a Bricklayer enumerates.
type Parity string

const (
	ParityOdd      Parity = "odd"
	ParityEven     Parity = "even"
	ParityNN       Parity = "nn" // odd ∪ even
	ParityNNNOdd1  Parity = "nnn_odd_1"
	ParityNNNOdd2  Parity = "nnn_odd_2"
	ParityNNNEven1 Parity = "nnn_even_1"
	ParityNNNEven2 Parity = "nnn_even_2"
	ParityNNN      Parity = "nnn" // union of the four NNN sub-parities
)

// Bricklayer enumerates a list of pairs for the named parity.
type Bricklayer struct {
	Parity Parity
}

func (g Bricklayer) Kind() Kind      { return KindBricklayer }
func (g Bricklayer) IsCompound() bool { return true }

func (g Bricklayer) Elements(L int, bc basis.BoundaryCondition) ([][]int, error) {
	return bricklayerPairs(L, bc, g.Parity)
}

// bricklayerPairs is the single place the six base layers (odd, even, and
// the four NNN sub-layers) are generated, built directly on adjacentSites
// and nnnSites so a Bricklayer's wrap behavior can never drift from
// AdjacentPair's / NextNearestNeighbor's.
func bricklayerPairs(L int, bc basis.BoundaryCondition, parity Parity) ([][]int, error) {
	switch parity {
	case ParityOdd:
		return offsetOnePairs(L, bc, true)
	case ParityEven:
		return offsetOnePairs(L, bc, false)
	case ParityNN:
		odd, err := offsetOnePairs(L, bc, true)
		if err != nil {
			return nil, err
		}
		even, err := offsetOnePairs(L, bc, false)
		if err != nil {
			return nil, err
		}
		return append(odd, even...), nil
	case ParityNNNOdd1:
		return nnnLayer(L, bc, 1)
	case ParityNNNOdd2:
		return nnnLayer(L, bc, 3)
	case ParityNNNEven1:
		return nnnLayer(L, bc, 2)
	case ParityNNNEven2:
		return nnnLayer(L, bc, 0)
	case ParityNNN:
		var out [][]int
		for _, residue := range []int{1, 3, 2, 0} {
			pairs, err := nnnLayer(L, bc, residue)
			if err != nil {
				return nil, err
			}
			out = append(out, pairs...)
		}
		return out, nil
	default:
		return nil, unsupportedParity(parity)
	}
}

// offsetOnePairs builds the odd (i=1,3,5,...) or even (i=2,4,6,...)
// nearest-neighbor layer. The even layer additionally carries the wrap
// pair (L,1) under periodic boundary conditions.
func offsetOnePairs(L int, bc basis.BoundaryCondition, odd bool) ([][]int, error) {
	start := 1
	if !odd {
		start = 2
	}
	var out [][]int
	for i := start; i+1 <= L; i += 2 {
		pair, err := adjacentSites(i, L, bc)
		if err != nil {
			return nil, err
		}
		out = append(out, pair)
	}
	if !odd && isWrapping(bc) {
		wrap, err := adjacentSites(L, L, bc)
		if err != nil {
			return nil, err
		}
		out = append(out, wrap)
	}
	return out, nil
}

// nnnLayer builds one of the four non-overlapping next-nearest-neighbor
// sub-layers: every offset-2 pair (i, i+2) with i ≡ residue (mod 4),
// plus the matching wrap pair under periodic boundary conditions when the
// wrap pair's own start index (L-1 or L) falls in the same residue class
// ("wrap rules match their offset", spec.md §4.2).
func nnnLayer(L int, bc basis.BoundaryCondition, residue int) ([][]int, error) {
	var out [][]int
	for i := 1; i <= L-2; i++ {
		if i%4 != residue {
			continue
		}
		pair, err := nnnSites(i, L, bc)
		if err != nil {
			return nil, err
		}
		out = append(out, pair)
	}
	if isWrapping(bc) {
		if (L-1)%4 == residue {
			pair, err := nnnSites(L-1, L, bc)
			if err != nil {
				return nil, err
			}
			out = append(out, pair)
		}
		if L%4 == residue {
			pair, err := nnnSites(L, L, bc)
			if err != nil {
				return nil, err
			}
			out = append(out, pair)
		}
	}
	return out, nil
}
