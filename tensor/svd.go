package tensor

import (
	"math"
	"math/cmplx"
	"sort"
)

const (
	svdMaxSweeps = 60
	svdTol       = 1e-13
)

// SVDResult is the truncated singular value decomposition of a matrix:
// a ≈ U * diag(S) * V^H, with S sorted descending and U, V having
// orthonormal columns.
type SVDResult struct {
	U *Dense
	S []float64
	V *Dense
}

// SVDOption configures truncation behavior of SVD, mirroring the
// functional-option style used throughout this codebase for optional,
// composable configuration.
type SVDOption func(*svdConfig)

type svdConfig struct {
	cutoff float64
	maxDim int
}

// WithCutoff discards singular values at or below eps after normalizing by
// the largest singular value kept.
func WithCutoff(eps float64) SVDOption {
	return func(c *svdConfig) { c.cutoff = eps }
}

// WithMaxDim caps the number of singular values retained, keeping the
// largest n. A non-positive n disables the cap.
func WithMaxDim(n int) SVDOption {
	return func(c *svdConfig) { c.maxDim = n }
}

// SVD computes the singular value decomposition of an m×n complex matrix
// (m >= n) via one-sided Hestenes-Jacobi rotations on its columns,
// generalizing the real cyclic Jacobi sweep structure to complex Givens
// rotations with a phase-aligning unit factor per pair.
//
// Stage 1 (Validate): a must be rank-2 with rows >= cols.
// Stage 2 (Prepare): working copy W of a, accumulator V = I_cols.
// Stage 3 (Execute): cyclic sweeps over column pairs, rotating W and V
// until every pair is numerically orthogonal or the sweep budget is spent.
// Stage 4 (Finalize): singular values are the column norms of W, sorted
// descending; U is W with columns normalized; optional cutoff/maxdim
// truncation per the options supplied.
func SVD(a *Dense, opts ...SVDOption) (*SVDResult, error) {
	if a.Rank() != 2 {
		return nil, errRankMismatch("tensor.SVD", 2, a.Rank())
	}
	rows, cols := a.Shape()[0], a.Shape()[1]
	if rows < cols {
		return nil, errDimensionMismatch("tensor.SVD", "SVD requires rows >= cols, got %dx%d", rows, cols)
	}
	cfg := &svdConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	W, err := toRows(a)
	if err != nil {
		return nil, err
	}
	// W is stored column-major here for convenience of the column rotations below.
	Wc := make([][]complex128, cols)
	for j := 0; j < cols; j++ {
		Wc[j] = make([]complex128, rows)
		for i := 0; i < rows; i++ {
			Wc[j][i] = W[i][j]
		}
	}
	V := identityRows(cols)

	converged := false
	for sweep := 0; sweep < svdMaxSweeps; sweep++ {
		var offDiag float64
		for p := 0; p < cols-1; p++ {
			for q := p + 1; q < cols; q++ {
				alpha := colNormSq(Wc[p])
				beta := colNormSq(Wc[q])
				gamma := colDot(Wc[p], Wc[q])
				ag := cmplx.Abs(gamma)
				offDiag += ag
				if alpha == 0 || beta == 0 || ag <= svdTol*math.Sqrt(alpha*beta+1e-300) {
					continue
				}
				cs, sn, u := jacobiAngle(alpha, beta, gamma)
				rotateColumnsInPlace(Wc[p], Wc[q], cs, sn, u)
				rotateMatrixColumns(V, p, q, cs, sn, u)
			}
		}
		if offDiag < svdTol {
			converged = true
			break
		}
	}
	_ = converged // best-effort: a non-convergent sweep budget still returns the current estimate.

	type sv struct {
		idx  int
		norm float64
	}
	svs := make([]sv, cols)
	for j := 0; j < cols; j++ {
		svs[j] = sv{idx: j, norm: math.Sqrt(colNormSq(Wc[j]))}
	}
	sort.Slice(svs, func(i, j int) bool { return svs[i].norm > svs[j].norm })

	keep := cols
	if cfg.maxDim > 0 && cfg.maxDim < keep {
		keep = cfg.maxDim
	}
	if cfg.cutoff > 0 && keep > 0 {
		ref := svs[0].norm
		n := 0
		for ; n < keep; n++ {
			if ref == 0 || svs[n].norm/ref <= cfg.cutoff {
				break
			}
		}
		if n == 0 {
			n = 1 // always keep at least the leading singular value
		}
		keep = n
	}

	S := make([]float64, keep)
	Vrows := make([][]complex128, cols)
	for i := range Vrows {
		Vrows[i] = make([]complex128, keep)
	}
	Urows := make([][]complex128, rows)
	for i := range Urows {
		Urows[i] = make([]complex128, keep)
	}
	for k := 0; k < keep; k++ {
		j := svs[k].idx
		S[k] = svs[k].norm
		for i := 0; i < cols; i++ {
			Vrows[i][k] = V[i][j]
		}
		if S[k] > 0 {
			for i := 0; i < rows; i++ {
				Urows[i][k] = Wc[j][i] / complex(S[k], 0)
			}
		}
	}

	Ud, err := fromRows(Urows)
	if err != nil {
		return nil, err
	}
	Vd, err := fromRows(Vrows)
	if err != nil {
		return nil, err
	}
	return &SVDResult{U: Ud, S: S, V: Vd}, nil
}

func colNormSq(col []complex128) float64 {
	var s float64
	for _, v := range col {
		s += real(v * cmplx.Conj(v))
	}
	return s
}

func colDot(x, y []complex128) complex128 {
	var s complex128
	for i := range x {
		s += cmplx.Conj(x[i]) * y[i]
	}
	return s
}

// jacobiAngle computes the real cosine/sine pair and unit phase factor for
// the complex one-sided Jacobi rotation eliminating the off-diagonal term
// gamma between two columns with squared norms alpha, beta.
func jacobiAngle(alpha, beta float64, gamma complex128) (cs, sn float64, u complex128) {
	ag := cmplx.Abs(gamma)
	if ag == 0 {
		return 1, 0, 1
	}
	u = cmplx.Conj(gamma) / complex(ag, 0)
	zeta := (alpha - beta) / (2 * ag)
	var t float64
	denom := math.Abs(zeta) + math.Sqrt(1+zeta*zeta)
	if zeta >= 0 {
		t = 1 / denom
	} else {
		t = -1 / denom
	}
	cs = 1 / math.Sqrt(1+t*t)
	sn = t * cs
	return cs, sn, u
}

// rotateColumnsInPlace applies the 2x2 unitary rotation
// [[cs, sn*u], [-sn*conj(u), cs]] to the pair (x, y), overwriting both.
func rotateColumnsInPlace(x, y []complex128, cs, sn float64, u complex128) {
	for i := range x {
		xi, yi := x[i], y[i]
		x[i] = complex(cs, 0)*xi + complex(sn, 0)*u*yi
		y[i] = -complex(sn, 0)*cmplx.Conj(u)*xi + complex(cs, 0)*yi
	}
}

// rotateMatrixColumns applies the same rotation as rotateColumnsInPlace to
// columns p and q of a row-major square matrix, used to accumulate the
// column rotations performed on the column-major working copy into the
// row-major accumulator.
func rotateMatrixColumns(m [][]complex128, p, q int, cs, sn float64, u complex128) {
	for i := range m {
		xi, yi := m[i][p], m[i][q]
		m[i][p] = complex(cs, 0)*xi + complex(sn, 0)*u*yi
		m[i][q] = -complex(sn, 0)*cmplx.Conj(u)*xi + complex(cs, 0)*yi
	}
}
