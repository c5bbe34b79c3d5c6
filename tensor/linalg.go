package tensor

import (
	"math"
	"math/cmplx"
)

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = m.Set(1, i, i)
	}
	return m, nil
}

// MatMul multiplies two rank-2 tensors: (m×k) * (k×n) = (m×n).
func MatMul(a, b *Dense) (*Dense, error) {
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, errRankMismatch("tensor.MatMul", 2, maxRank(a, b))
	}
	ar, ac := a.Shape()[0], a.Shape()[1]
	br, bc := b.Shape()[0], b.Shape()[1]
	if ac != br {
		return nil, errDimensionMismatch("tensor.MatMul", "incompatible shapes %dx%d and %dx%d", ar, ac, br, bc)
	}
	out, err := NewDense(ar, bc)
	if err != nil {
		return nil, err
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var sum complex128
			for k := 0; k < ac; k++ {
				av, _ := a.At(i, k)
				bv, _ := b.At(k, j)
				sum += av * bv
			}
			_ = out.Set(sum, i, j)
		}
	}
	return out, nil
}

// ConjTranspose returns the conjugate transpose of a rank-2 tensor.
func ConjTranspose(a *Dense) (*Dense, error) {
	if a.Rank() != 2 {
		return nil, errRankMismatch("tensor.ConjTranspose", 2, a.Rank())
	}
	r, c := a.Shape()[0], a.Shape()[1]
	out, err := NewDense(c, r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ := a.At(i, j)
			_ = out.Set(cmplx.Conj(v), j, i)
		}
	}
	return out, nil
}

// Kron returns the Kronecker product of two rank-2 tensors.
func Kron(a, b *Dense) (*Dense, error) {
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, errRankMismatch("tensor.Kron", 2, maxRank(a, b))
	}
	ar, ac := a.Shape()[0], a.Shape()[1]
	br, bc := b.Shape()[0], b.Shape()[1]
	out, err := NewDense(ar*br, ac*bc)
	if err != nil {
		return nil, err
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			av, _ := a.At(i, j)
			if av == 0 {
				continue
			}
			for p := 0; p < br; p++ {
				for q := 0; q < bc; q++ {
					bv, _ := b.At(p, q)
					_ = out.Set(av*bv, i*br+p, j*bc+q)
				}
			}
		}
	}
	return out, nil
}

// FrobeniusNorm returns sqrt(sum |a_ij|^2) for a rank-2 tensor.
func FrobeniusNorm(a *Dense) float64 {
	var sum float64
	for _, v := range a.RawData() {
		sum += real(v*cmplx.Conj(v))
	}
	return math.Sqrt(sum)
}

func maxRank(a, b *Dense) int {
	if a.Rank() > b.Rank() {
		return a.Rank()
	}
	return b.Rank()
}
