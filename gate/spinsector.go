package gate

import (
	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/rng"
	"github.com/katalvlaran/mpscircuit/tensor"
)

// SpinSectorMeasurement samples one of a caller-supplied family of two-site
// spin-sector projectors (which MUST sum to the identity) according to its
// Born-rule branch probability under the current state, drawing exactly one
// value from the born stream — the same "draw once, accumulate cumulative,
// select first outcome with r < cumulative" rule used for stochastic
// Operation selection (§4.5), applied here to spin sectors instead of
// geometry/gate branches. Unlike Measurement/Reset this is not a
// CompositeGate: the sampling happens inside BuildOperator because the
// selected projector IS the operator, with no further per-site mechanics.
type SpinSectorMeasurement struct {
	// Projectors are the rank-2 (d*d, d*d) sector projectors, caller
	// constructed, summing to the identity on the joint two-site space.
	Projectors []*tensor.Dense
}

func (SpinSectorMeasurement) Support() int { return 2 }

func (g SpinSectorMeasurement) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	if len(g.Projectors) == 0 {
		return nil, errProjectorCountMismatch("gate.SpinSectorMeasurement.BuildOperator", 0)
	}
	n := d * d
	for _, p := range g.Projectors {
		shape := p.Shape()
		if len(shape) != 2 || shape[0] != n || shape[1] != n {
			return nil, errMatrixShapeMismatch("gate.SpinSectorMeasurement.BuildOperator", []int{n, n}, shape)
		}
	}

	identity, err := tensor.Identity(n)
	if err != nil {
		return nil, err
	}
	identityOp, err := identity.Reshape(d, d, d, d)
	if err != nil {
		return nil, err
	}
	totalVal, err := ctx.MPS.Expectation(ramIndices, identityOp)
	if err != nil {
		return nil, err
	}
	total := real(totalVal)

	u, err := ctx.RNG.Float64(rng.Born)
	if err != nil {
		return nil, err
	}

	var cumulative float64
	selected := len(g.Projectors) - 1 // fall back to the last sector if
	// floating-point rounding leaves the loop without a strict match —
	// the projectors sum to the identity, so the cumulative total is 1.
	for k, p := range g.Projectors {
		op, err := p.Reshape(d, d, d, d)
		if err != nil {
			return nil, err
		}
		val, err := ctx.MPS.Expectation(ramIndices, op)
		if err != nil {
			return nil, err
		}
		prob := 0.0
		if total > 0 {
			prob = real(val) / total
		}
		cumulative += prob
		if u < cumulative {
			selected = k
			break
		}
	}

	return g.Projectors[selected].Reshape(d, d, d, d)
}

func (SpinSectorMeasurement) RequiresNormalization() bool { return true }
