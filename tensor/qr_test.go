package tensor

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func maxAbsDiff(a, b *Dense) float64 {
	var max float64
	ad, bd := a.RawData(), b.RawData()
	for i := range ad {
		if d := cmplx.Abs(ad[i] - bd[i]); d > max {
			max = d
		}
	}
	return max
}

func sampleComplexMatrix(t *testing.T, rows, cols int) *Dense {
	t.Helper()
	m, err := NewDense(rows, cols)
	require.NoError(t, err)
	seed := 1.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(complex(seed, seed*0.5-1), i, j))
			seed += 0.7
		}
	}
	return m
}

func TestQR_ReconstructsOriginalMatrix(t *testing.T) {
	a := sampleComplexMatrix(t, 4, 3)
	q, r, err := QR(a)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, q.Shape())
	assert.Equal(t, []int{3, 3}, r.Shape())

	recon, err := MatMul(q, r)
	require.NoError(t, err)
	assert.InDelta(t, 0, maxAbsDiff(a, recon), 1e-8)
}

func TestQR_ProducesOrthonormalColumns(t *testing.T) {
	a := sampleComplexMatrix(t, 5, 2)
	q, _, err := QR(a)
	require.NoError(t, err)

	qh, err := ConjTranspose(q)
	require.NoError(t, err)
	gram, err := MatMul(qh, q)
	require.NoError(t, err)
	id, err := Identity(2)
	require.NoError(t, err)
	assert.InDelta(t, 0, maxAbsDiff(gram, id), 1e-8)
}

func TestQR_RejectsWideMatrix(t *testing.T) {
	a := sampleComplexMatrix(t, 2, 3)
	_, _, err := QR(a)
	assert.Error(t, err)
}

func TestQR_RejectsNonMatrixRank(t *testing.T) {
	a, err := NewDense(2, 2, 2)
	require.NoError(t, err)
	_, _, err = QR(a)
	assert.Error(t, err)
}
