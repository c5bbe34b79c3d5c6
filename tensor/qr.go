package tensor

import "math"
import "math/cmplx"

// toRows/fromRows convert a rank-2 Dense to/from a row-major [][]complex128
// working copy, purely to keep the Householder sweep below readable as
// plain indexed array code — the same shape the teacher's matrix/ops/qr.go
// works in, just with a *Dense at the public boundary instead of
// matrix.Matrix.
func toRows(m *Dense) ([][]complex128, error) {
	if m.Rank() != 2 {
		return nil, errRankMismatch("tensor.toRows", 2, m.Rank())
	}
	rows, cols := m.Shape()[0], m.Shape()[1]
	out := make([][]complex128, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]complex128, cols)
		for j := 0; j < cols; j++ {
			out[i][j], _ = m.At(i, j)
		}
	}
	return out, nil
}

func fromRows(rows [][]complex128) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = out.Set(rows[i][j], i, j)
		}
	}
	return out, nil
}

// QR computes the economy QR decomposition m = Q×R of an m×n complex
// matrix with m >= n, via complex Householder reflections: Q is m×n with
// orthonormal columns, R is n×n upper triangular.
//
// Stage 1 (Validate): m must be rank-2 with rows >= cols.
// Stage 2 (Prepare): working copy A of m, accumulator Qfull = I_rows.
// Stage 3 (Execute): for each pivot column, build the Householder vector,
// reflect the remaining columns of A, accumulate the reflection into Qfull.
// Stage 4 (Finalize): slice Qfull to its first n columns, A to its first n
// rows, as the economy Q and R.
//
// Complexity: O(rows*cols^2) time, O(rows*cols) memory.
func QR(m *Dense) (*Dense, *Dense, error) {
	if m.Rank() != 2 {
		return nil, nil, errRankMismatch("tensor.QR", 2, m.Rank())
	}
	rows, cols := m.Shape()[0], m.Shape()[1]
	if rows < cols {
		return nil, nil, errDimensionMismatch("tensor.QR", "QR requires rows >= cols, got %dx%d", rows, cols)
	}

	A, err := toRows(m)
	if err != nil {
		return nil, nil, err
	}
	Qfull := identityRows(rows)

	for k := 0; k < cols; k++ {
		// 3.1: norm of the active part of column k.
		var normSq float64
		for i := k; i < rows; i++ {
			normSq += real(A[i][k] * cmplx.Conj(A[i][k]))
		}
		norm := math.Sqrt(normSq)
		if norm == 0 {
			continue // column already zero below the pivot; nothing to reflect
		}

		// 3.2: complex reflection scalar, phase-aligned with A[k][k].
		pivot := A[k][k]
		var phase complex128 = 1
		if cmplx.Abs(pivot) > 0 {
			phase = pivot / complex(cmplx.Abs(pivot), 0)
		}
		alpha := -phase * complex(norm, 0)

		// 3.3: Householder vector v = x - alpha*e1 (only rows k..rows-1 are
		// nonzero).
		v := make([]complex128, rows)
		for i := k; i < rows; i++ {
			v[i] = A[i][k]
		}
		v[k] -= alpha

		var vNormSq float64
		for i := k; i < rows; i++ {
			vNormSq += real(v[i] * cmplx.Conj(v[i]))
		}
		if vNormSq == 0 {
			continue
		}
		beta := complex(2.0/vNormSq, 0)

		// 3.4: reflect A's remaining columns: A := (I - beta v v^H) A.
		for j := k; j < cols; j++ {
			var dot complex128
			for i := k; i < rows; i++ {
				dot += cmplx.Conj(v[i]) * A[i][j]
			}
			coeff := beta * dot
			for i := k; i < rows; i++ {
				A[i][j] -= coeff * v[i]
			}
		}

		// 3.5: accumulate the same reflection into Qfull from the right:
		// Qfull := Qfull (I - beta v v^H).
		for i := 0; i < rows; i++ {
			var dot complex128
			for l := k; l < rows; l++ {
				dot += Qfull[i][l] * v[l]
			}
			coeff := beta * dot
			for l := k; l < rows; l++ {
				Qfull[i][l] -= coeff * cmplx.Conj(v[l])
			}
		}
	}

	// Stage 4: economy-size Q (first cols columns) and R (first cols rows).
	Q := make([][]complex128, rows)
	for i := 0; i < rows; i++ {
		Q[i] = append([]complex128(nil), Qfull[i][:cols]...)
	}
	R := make([][]complex128, cols)
	for i := 0; i < cols; i++ {
		row := make([]complex128, cols)
		for j := i; j < cols; j++ {
			row[j] = A[i][j]
		}
		R[i] = row
	}

	Qd, err := fromRows(Q)
	if err != nil {
		return nil, nil, err
	}
	Rd, err := fromRows(R)
	if err != nil {
		return nil, nil, err
	}
	return Qd, Rd, nil
}

func identityRows(n int) [][]complex128 {
	out := make([][]complex128, n)
	for i := range out {
		out[i] = make([]complex128, n)
		out[i][i] = 1
	}
	return out
}
