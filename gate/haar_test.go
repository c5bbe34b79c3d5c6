package gate_test

import (
	"testing"

	"github.com/katalvlaran/mpscircuit/gate"
	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/rng"
	"github.com/katalvlaran/mpscircuit/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaarRandom_ProducesUnitaryOperator(t *testing.T) {
	reg := rng.NewRegistryFromSeed(42)
	ctx := mps.BuildContext{RNG: reg}

	op, err := gate.HaarRandom{}.BuildOperator(nil, 2, ctx)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2, 2}, op.Shape())

	mat, err := op.Reshape(4, 4)
	require.NoError(t, err)
	uh, err := tensor.ConjTranspose(mat)
	require.NoError(t, err)
	prod, err := tensor.MatMul(mat, uh)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, _ := prod.At(i, j)
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, real(v), 1e-6)
			assert.InDelta(t, 0, imag(v), 1e-6)
		}
	}
	assert.False(t, gate.HaarRandom{}.RequiresNormalization())
}

func TestHaarRandom_SameSeedProducesSameOperator(t *testing.T) {
	reg1 := rng.NewRegistryFromSeed(7)
	reg2 := rng.NewRegistryFromSeed(7)

	op1, err := gate.HaarRandom{}.BuildOperator(nil, 2, mps.BuildContext{RNG: reg1})
	require.NoError(t, err)
	op2, err := gate.HaarRandom{}.BuildOperator(nil, 2, mps.BuildContext{RNG: reg2})
	require.NoError(t, err)

	for i := 0; i < op1.Size(); i++ {
		assert.InDelta(t, real(op1.RawData()[i]), real(op2.RawData()[i]), 1e-12)
		assert.InDelta(t, imag(op1.RawData()[i]), imag(op2.RawData()[i]), 1e-12)
	}
}
