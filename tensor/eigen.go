package tensor

import (
	"math"
	"math/cmplx"
	"sort"
)

const (
	eigenMaxSweeps = 80
	eigenTol       = 1e-13
)

// EigenResult is the eigendecomposition of a Hermitian matrix: a = U *
// diag(Values) * U^H, with Values real and sorted ascending and U unitary.
type EigenResult struct {
	Values []float64
	U      *Dense
}

// EigenHermitian diagonalizes a Hermitian n×n matrix via the cyclic Jacobi
// eigenvalue algorithm, generalized to complex Hermitian input with a
// phase-aligning unit factor on every rotation — the same sweep structure
// used for the one-sided SVD in svd.go, applied as a two-sided similarity
// transform instead of a one-sided column rotation. The gate package's
// tests use it to build projectors onto total-spin sectors of two spin-1
// sites.
//
// Stage 1 (Validate): a must be square.
// Stage 2 (Prepare): working copy A of a, accumulator U = I_n.
// Stage 3 (Execute): cyclic sweeps over (p,q) pairs, each rotation zeroing
// A[p][q]/A[q][p] and updating A, U in place, until every off-diagonal
// entry is numerically zero or the sweep budget is spent.
// Stage 4 (Finalize): eigenvalues are the diagonal of A, sorted ascending
// with U's columns permuted to match.
func EigenHermitian(a *Dense) (*EigenResult, error) {
	if a.Rank() != 2 {
		return nil, errRankMismatch("tensor.EigenHermitian", 2, a.Rank())
	}
	n := a.Shape()[0]
	if a.Shape()[1] != n {
		return nil, errDimensionMismatch("tensor.EigenHermitian", "matrix must be square, got %dx%d", n, a.Shape()[1])
	}

	A, err := toRows(a)
	if err != nil {
		return nil, err
	}
	U := identityRows(n)

	for sweep := 0; sweep < eigenMaxSweeps; sweep++ {
		var offDiag float64
		for p := 0; p < n-1; p++ {
			for q := p + 1; q < n; q++ {
				apq := A[p][q]
				aq := cmplx.Abs(apq)
				offDiag += aq
				if aq <= eigenTol {
					continue
				}
				app, aqq := real(A[p][p]), real(A[q][q])
				cs, sn, u := hermitianAngle(app, aqq, apq)
				applyHermitianRotation(A, n, p, q, cs, sn, u)
				rotateMatrixColumns(U, p, q, cs, sn, u)
			}
		}
		if offDiag < eigenTol {
			break
		}
	}

	type ev struct {
		idx int
		val float64
	}
	evs := make([]ev, n)
	for i := 0; i < n; i++ {
		evs[i] = ev{idx: i, val: real(A[i][i])}
	}
	sort.Slice(evs, func(i, j int) bool { return evs[i].val < evs[j].val })

	values := make([]float64, n)
	Urows := make([][]complex128, n)
	for i := range Urows {
		Urows[i] = make([]complex128, n)
	}
	for k, e := range evs {
		values[k] = e.val
		for i := 0; i < n; i++ {
			Urows[i][k] = U[i][e.idx]
		}
	}

	Ud, err := fromRows(Urows)
	if err != nil {
		return nil, err
	}
	return &EigenResult{Values: values, U: Ud}, nil
}

// hermitianAngle computes the rotation canceling the off-diagonal pair
// (A[p][q], A[q][p]=conj(A[p][q])) of a Hermitian matrix given its two
// diagonal entries app, aqq and the complex off-diagonal apq.
func hermitianAngle(app, aqq float64, apq complex128) (cs, sn float64, u complex128) {
	aq := cmplx.Abs(apq)
	if aq == 0 {
		return 1, 0, 1
	}
	u = cmplx.Conj(apq) / complex(aq, 0)
	theta := (app - aqq) / (2 * aq)
	var t float64
	denom := math.Abs(theta) + math.Sqrt(1+theta*theta)
	if theta >= 0 {
		t = 1 / denom
	} else {
		t = -1 / denom
	}
	cs = 1 / math.Sqrt(1+t*t)
	sn = t * cs
	return cs, sn, u
}

// applyHermitianRotation performs the similarity transform A := G^H A G for
// the unitary Givens rotation G acting on rows/columns p and q, where G
// restricted to that 2x2 block is [[cs, -sn*conj(u)], [sn*u, cs]].
func applyHermitianRotation(A [][]complex128, n, p, q int, cs, sn float64, u complex128) {
	c := complex(cs, 0)
	s := complex(sn, 0)
	uConj := cmplx.Conj(u)

	// Right-multiply by G: update columns p, q of every row.
	for i := 0; i < n; i++ {
		aip, aiq := A[i][p], A[i][q]
		A[i][p] = c*aip + s*u*aiq
		A[i][q] = -s*uConj*aip + c*aiq
	}
	// Left-multiply by G^H: update rows p, q of every column.
	for j := 0; j < n; j++ {
		apj, aqj := A[p][j], A[q][j]
		A[p][j] = c*apj + s*uConj*aqj
		A[q][j] = -s*u*apj + c*aqj
	}
}
