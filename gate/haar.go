package gate

import (
	"math"

	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/rng"
	"github.com/katalvlaran/mpscircuit/tensor"
)

// HaarRandom draws a Haar-distributed random unitary on the joint Hilbert
// space of its two sites from the haar stream, via QR decomposition of a
// complex Ginibre (standard-Gaussian) matrix with the diagonal of R phased
// out of Q — the standard construction for sampling Haar-random unitaries.
type HaarRandom struct{}

func (HaarRandom) Support() int { return 2 }

func (HaarRandom) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	stream, err := ctx.RNG.Stream(rng.Haar)
	if err != nil {
		return nil, err
	}
	n := d * d
	ginibre, err := tensor.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			re := stream.NormFloat64()
			im := stream.NormFloat64()
			if err := ginibre.Set(complex(re, im), i, j); err != nil {
				return nil, err
			}
		}
	}
	q, r, err := tensor.QR(ginibre)
	if err != nil {
		return nil, err
	}
	u, err := phaseOutDiagonal(q, r)
	if err != nil {
		return nil, err
	}
	return u.Reshape(d, d, d, d)
}

func (HaarRandom) RequiresNormalization() bool { return false }

// phaseOutDiagonal multiplies each column of q by r_ii/|r_ii|, producing a
// Haar-distributed unitary rather than one biased by QR's sign convention.
func phaseOutDiagonal(q, r *tensor.Dense) (*tensor.Dense, error) {
	n := q.Shape()[0]
	out := q.Clone()
	for k := 0; k < n; k++ {
		rkk, err := r.At(k, k)
		if err != nil {
			return nil, err
		}
		mag := math.Hypot(real(rkk), imag(rkk))
		phase := complex(1, 0)
		if mag > 0 {
			phase = rkk / complex(mag, 0)
		}
		for i := 0; i < n; i++ {
			v, err := out.At(i, k)
			if err != nil {
				return nil, err
			}
			if err := out.Set(v*phase, i, k); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
