package gate

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/tensor"
)

// PauliX is the generalized shift operator X|j> = |(j+1) mod d>, reducing
// to the usual bit-flip at d=2.
type PauliX struct{}

func (PauliX) Support() int { return 1 }

func (PauliX) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	return shiftOperator(d)
}

func (PauliX) RequiresNormalization() bool { return false }

// PauliZ is the generalized clock operator Z|j> = ω^j|j>, ω = exp(2πi/d),
// reducing to the usual phase-flip at d=2.
type PauliZ struct{}

func (PauliZ) Support() int { return 1 }

func (PauliZ) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	return clockOperator(d)
}

func (PauliZ) RequiresNormalization() bool { return false }

// PauliY is the generalized i·X·Z operator, which at d=2 reproduces the
// usual [[0,-i],[i,0]] Pauli Y exactly.
type PauliY struct{}

func (PauliY) Support() int { return 1 }

func (PauliY) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	x, err := shiftOperator(d)
	if err != nil {
		return nil, err
	}
	z, err := clockOperator(d)
	if err != nil {
		return nil, err
	}
	xz, err := tensor.MatMul(x, z)
	if err != nil {
		return nil, err
	}
	data := xz.RawData()
	for i, v := range data {
		data[i] = complex(0, 1) * v
	}
	return xz, nil
}

func (PauliY) RequiresNormalization() bool { return false }

func shiftOperator(d int) (*tensor.Dense, error) {
	op, err := tensor.NewDense(d, d)
	if err != nil {
		return nil, err
	}
	for j := 0; j < d; j++ {
		if err := op.Set(1, (j+1)%d, j); err != nil {
			return nil, err
		}
	}
	return op, nil
}

func clockOperator(d int) (*tensor.Dense, error) {
	op, err := tensor.NewDense(d, d)
	if err != nil {
		return nil, err
	}
	for j := 0; j < d; j++ {
		angle := 2 * math.Pi * float64(j) / float64(d)
		if err := op.Set(cmplx.Exp(complex(0, angle)), j, j); err != nil {
			return nil, err
		}
	}
	return op, nil
}
