package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContract_MatrixProductViaContraction(t *testing.T) {
	// a (2x3) contracted with b (3x2) over a's axis 1 and b's axis 0
	// reproduces ordinary matrix multiplication.
	a, err := NewDense(2, 3)
	require.NoError(t, err)
	b, err := NewDense(3, 2)
	require.NoError(t, err)
	v := complex128(1)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, a.Set(v, i, j))
			v++
		}
	}
	v = 1
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.NoError(t, b.Set(v, i, j))
			v++
		}
	}

	want, err := MatMul(a, b)
	require.NoError(t, err)

	got, err := Contract(a, b, [][2]int{{1, 0}})
	require.NoError(t, err)

	assert.Equal(t, want.Shape(), got.Shape())
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			wv, _ := want.At(i, j)
			gv, _ := got.At(i, j)
			assert.Equal(t, wv, gv)
		}
	}
}

func TestContract_FullContractionYieldsScalar(t *testing.T) {
	a, err := NewDense(2, 2)
	require.NoError(t, err)
	b, err := NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, a.Set(1, 0, 0))
	require.NoError(t, a.Set(1, 1, 1))
	require.NoError(t, b.Set(2, 0, 0))
	require.NoError(t, b.Set(3, 1, 1))

	out, err := Contract(a, b, [][2]int{{0, 0}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, out.Shape())
	v, err := out.At(0)
	require.NoError(t, err)
	assert.Equal(t, complex128(5), v)
}

func TestContract_RejectsMismatchedAxisSizes(t *testing.T) {
	a, err := NewDense(2, 3)
	require.NoError(t, err)
	b, err := NewDense(4, 2)
	require.NoError(t, err)
	_, err = Contract(a, b, [][2]int{{1, 0}})
	assert.Error(t, err)
}

func TestContract_RejectsOutOfRangeAxis(t *testing.T) {
	a, err := NewDense(2, 2)
	require.NoError(t, err)
	b, err := NewDense(2, 2)
	require.NoError(t, err)
	_, err = Contract(a, b, [][2]int{{5, 0}})
	assert.Error(t, err)
}

func TestIterateIndices_OrderAndCount(t *testing.T) {
	var seen [][]int
	iterateIndices([]int{2, 3}, func(idx []int) {
		seen = append(seen, append([]int(nil), idx...))
	})
	require.Len(t, seen, 6)
	assert.Equal(t, []int{0, 0}, seen[0])
	assert.Equal(t, []int{1, 2}, seen[len(seen)-1])
}
