package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_RejectsNonPositiveDims(t *testing.T) {
	_, err := NewDense(2, 0, 3)
	require.Error(t, err)
}

func TestDense_AtSetRoundTrip(t *testing.T) {
	d, err := NewDense(2, 3, 4)
	require.NoError(t, err)

	require.NoError(t, d.Set(complex(1, 2), 0, 1, 2))
	v, err := d.At(0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 2), v)

	// Untouched entries remain zero.
	v, err = d.At(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), v)
}

func TestDense_AtRejectsOutOfRange(t *testing.T) {
	d, err := NewDense(2, 2)
	require.NoError(t, err)
	_, err = d.At(2, 0)
	assert.Error(t, err)
	_, err = d.At(0, -1)
	assert.Error(t, err)
}

func TestDense_AtRejectsRankMismatch(t *testing.T) {
	d, err := NewDense(2, 2)
	require.NoError(t, err)
	_, err = d.At(0, 0, 0)
	assert.Error(t, err)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	d, err := NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Set(1, 0, 0))

	c := d.Clone()
	require.NoError(t, c.Set(99, 0, 0))

	v, _ := d.At(0, 0)
	assert.Equal(t, complex128(1), v)
}

func TestDense_ReshapePreservesRowMajorOrder(t *testing.T) {
	d, err := NewDense(2, 3)
	require.NoError(t, err)
	val := complex128(1)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, d.Set(val, i, j))
			val++
		}
	}
	r, err := d.Reshape(3, 2)
	require.NoError(t, err)
	v, err := r.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), v)
	v, err = r.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, complex128(6), v)
}

func TestDense_ReshapeRejectsSizeMismatch(t *testing.T) {
	d, err := NewDense(2, 3)
	require.NoError(t, err)
	_, err = d.Reshape(4, 2)
	assert.Error(t, err)
}

func TestLinalg_MatMulIdentity(t *testing.T) {
	id, err := Identity(3)
	require.NoError(t, err)
	a, err := NewDense(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, a.Set(complex(float64(i*3+j), 0), i, j))
		}
	}
	out, err := MatMul(a, id)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want, _ := a.At(i, j)
			got, _ := out.At(i, j)
			assert.Equal(t, want, got)
		}
	}
}

func TestLinalg_ConjTranspose(t *testing.T) {
	a, err := NewDense(2, 1)
	require.NoError(t, err)
	require.NoError(t, a.Set(complex(1, 2), 0, 0))
	require.NoError(t, a.Set(complex(3, -4), 1, 0))

	at, err := ConjTranspose(a)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, at.Shape())
	v, _ := at.At(0, 0)
	assert.Equal(t, complex(1, -2), v)
	v, _ = at.At(0, 1)
	assert.Equal(t, complex(3, 4), v)
}

func TestLinalg_FrobeniusNormOfIdentity(t *testing.T) {
	id, err := Identity(4)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, FrobeniusNorm(id), 1e-9)
}

func TestLinalg_KronShape(t *testing.T) {
	a, err := NewDense(2, 2)
	require.NoError(t, err)
	b, err := NewDense(3, 3)
	require.NoError(t, err)
	out, err := Kron(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 6}, out.Shape())
}
