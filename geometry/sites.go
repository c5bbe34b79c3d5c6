package geometry

import (
	"github.com/katalvlaran/mpscircuit/basis"
	"github.com/katalvlaran/mpscircuit/simerr"
)

// SingleSite targets exactly one physical site.
type SingleSite struct {
	Site int
}

func (g SingleSite) Kind() Kind { return KindSingleSite }

func (g SingleSite) Elements(L int, bc basis.BoundaryCondition) ([][]int, error) {
	if g.Site < 1 || g.Site > L {
		return nil, simerr.InvalidArgument("geometry.SingleSite.Elements", "site %d out of range [1,%d]", g.Site, L)
	}
	return [][]int{{g.Site}}, nil
}

// AdjacentPair targets sites (i, i+1); under periodic BC, i=L wraps to (L,1).
type AdjacentPair struct {
	I int
}

func (g AdjacentPair) Kind() Kind { return KindAdjacentPair }

func (g AdjacentPair) Elements(L int, bc basis.BoundaryCondition) ([][]int, error) {
	pair, err := adjacentSites(g.I, L, bc)
	if err != nil {
		return nil, err
	}
	return [][]int{pair}, nil
}

// NextNearestNeighbor targets sites (i, i+2); under periodic BC, wraps
// (L-1,1) and (L,2).
type NextNearestNeighbor struct {
	I int
}

func (g NextNearestNeighbor) Kind() Kind { return KindNextNearestNeighbor }

func (g NextNearestNeighbor) Elements(L int, bc basis.BoundaryCondition) ([][]int, error) {
	pair, err := nnnSites(g.I, L, bc)
	if err != nil {
		return nil, err
	}
	return [][]int{pair}, nil
}

// adjacentSites is the single source of truth for offset-1 pairs, shared
// by AdjacentPair and the Bricklayer odd/even layers so their wrap
// behavior can never drift apart.
func adjacentSites(i, L int, bc basis.BoundaryCondition) ([]int, error) {
	if i < 1 || i > L {
		return nil, simerr.InvalidArgument("geometry.adjacentSites", "i=%d out of range [1,%d]", i, L)
	}
	if i < L {
		return []int{i, i + 1}, nil
	}
	// i == L: only a valid pair under periodic BC, wrapping to (L,1).
	if bc == basis.Periodic || bc == basis.PeriodicNNN {
		return []int{L, 1}, nil
	}
	return nil, simerr.InvalidArgument("geometry.adjacentSites", "i=%d has no right neighbor under open boundary conditions", i)
}

// nnnSites is the single source of truth for offset-2 pairs, shared by
// NextNearestNeighbor and the Bricklayer NNN sub-layers.
func nnnSites(i, L int, bc basis.BoundaryCondition) ([]int, error) {
	if i < 1 || i > L {
		return nil, simerr.InvalidArgument("geometry.nnnSites", "i=%d out of range [1,%d]", i, L)
	}
	if i <= L-2 {
		return []int{i, i + 2}, nil
	}
	if bc == basis.Periodic || bc == basis.PeriodicNNN {
		if i == L-1 {
			return []int{L - 1, 1}, nil
		}
		if i == L {
			return []int{L, 2}, nil
		}
	}
	return nil, simerr.InvalidArgument("geometry.nnnSites", "i=%d has no next-nearest neighbor under open boundary conditions", i)
}
