package gate

import (
	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/tensor"
)

// Projection applies a caller-supplied single-site projector matrix
// verbatim — the core never constructs projector matrices from physical
// formulas (spin quantum numbers, Clebsch-Gordan coefficients, and the
// like are the caller's concern), it only contracts whatever opaque matrix
// it is handed.
type Projection struct {
	// Matrix is the rank-2 (d, d) projector, caller-constructed.
	Matrix *tensor.Dense
}

func (Projection) Support() int { return 1 }

func (g Projection) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	if g.Matrix == nil {
		return nil, errMatrixRequired("gate.Projection.BuildOperator")
	}
	shape := g.Matrix.Shape()
	if len(shape) != 2 || shape[0] != d || shape[1] != d {
		return nil, errMatrixShapeMismatch("gate.Projection.BuildOperator", []int{d, d}, shape)
	}
	return g.Matrix, nil
}

func (Projection) RequiresNormalization() bool { return true }

// SpinSectorProjection applies a caller-supplied two-site projector matrix
// onto a spin sector, reshaped from (d*d, d*d) into the engine's (d, d, d,
// d) operator convention.
type SpinSectorProjection struct {
	// Matrix is the rank-2 (d*d, d*d) projector, caller-constructed.
	Matrix *tensor.Dense
}

func (SpinSectorProjection) Support() int { return 2 }

func (g SpinSectorProjection) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	if g.Matrix == nil {
		return nil, errMatrixRequired("gate.SpinSectorProjection.BuildOperator")
	}
	n := d * d
	shape := g.Matrix.Shape()
	if len(shape) != 2 || shape[0] != n || shape[1] != n {
		return nil, errMatrixShapeMismatch("gate.SpinSectorProjection.BuildOperator", []int{n, n}, shape)
	}
	return g.Matrix.Reshape(d, d, d, d)
}

func (SpinSectorProjection) RequiresNormalization() bool { return true }
