package geometry

import "github.com/katalvlaran/mpscircuit/basis"

// AllSites enumerates [[1], [2], ..., [L]].
type AllSites struct{}

func (g AllSites) Kind() Kind       { return KindAllSites }
func (g AllSites) IsCompound() bool { return true }

func (g AllSites) Elements(L int, bc basis.BoundaryCondition) ([][]int, error) {
	out := make([][]int, L)
	for i := 1; i <= L; i++ {
		out[i-1] = []int{i}
	}
	return out, nil
}
