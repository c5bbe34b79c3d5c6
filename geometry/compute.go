package geometry

import "github.com/katalvlaran/mpscircuit/basis"

// IsCompound reports whether g expands into more than one gate application
// per Operation (Bricklayer, AllSites).
func IsCompound(g Geometry) bool {
	c, ok := g.(Compound)
	return ok && c.IsCompound()
}

// IsStaircase reports whether g auto-advances after being applied
// (StaircaseLeft, StaircaseRight). Pointer deliberately does not satisfy
// this: it shares StaircaseRight's site formula but only Move mutates it.
func IsStaircase(g Geometry) bool {
	_, ok := g.(Staircase)
	return ok
}

// positionAtStep computes the 1-based position reached after n unit
// advances (n may be negative for StaircaseLeft) from startPos, without
// mutating anything — the closed form of calling advancePosition n times.
func positionAtStep(startPos, n, L int, bc basis.BoundaryCondition) int {
	bound := cycleBound(L, bc)
	v := ((startPos-1+n)%bound + bound) % bound
	return v + 1
}

// ComputeSites is the pure, side-effect-free twin of Geometry.Elements used
// by the Expander. For staircases, step is the number of advances since
// the geometry's recorded starting position (the Expander never mutates a
// Circuit's geometry pointers); for every other geometry it is equivalent
// to calling Elements directly.
func ComputeSites(g Geometry, step, L int, bc basis.BoundaryCondition) ([][]int, error) {
	switch sg := g.(type) {
	case *StaircaseRight:
		eff := positionAtStep(sg.Position(), step-1, L, bc)
		pair, err := staircaseSites("geometry.ComputeSites", eff, sg.Stride(), L, bc)
		if err != nil {
			return nil, err
		}
		return [][]int{pair}, nil
	case *StaircaseLeft:
		eff := positionAtStep(sg.Position(), -(step - 1), L, bc)
		pair, err := staircaseSites("geometry.ComputeSites", eff, -sg.Stride(), L, bc)
		if err != nil {
			return nil, err
		}
		return [][]int{pair}, nil
	default:
		return g.Elements(L, bc)
	}
}
