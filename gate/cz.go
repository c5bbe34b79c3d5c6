package gate

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/tensor"
)

// CZ is the generalized controlled-phase gate CZ|i,j> = exp(2πi·i·j/d)|i,j>,
// reducing to the usual diag(1,1,1,-1) controlled-Z at d=2.
type CZ struct{}

func (CZ) Support() int { return 2 }

func (CZ) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	op, err := tensor.NewDense(d, d, d, d)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			angle := 2 * math.Pi * float64(i*j) / float64(d)
			phase := cmplx.Exp(complex(0, angle))
			if err := op.Set(phase, i, j, i, j); err != nil {
				return nil, err
			}
		}
	}
	return op, nil
}

func (CZ) RequiresNormalization() bool { return false }
