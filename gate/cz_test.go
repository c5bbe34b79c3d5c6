package gate_test

import (
	"testing"

	"github.com/katalvlaran/mpscircuit/gate"
	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCZ_MatchesQubitControlledZ(t *testing.T) {
	op, err := gate.CZ{}.BuildOperator(nil, 2, mps.BuildContext{})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := op.At(i, j, i, j)
			require.NoError(t, err)
			want := 1.0
			if i == 1 && j == 1 {
				want = -1.0
			}
			assert.InDelta(t, want, real(v), 1e-9)
			assert.InDelta(t, 0, imag(v), 1e-9)
		}
	}
	assert.False(t, gate.CZ{}.RequiresNormalization())
}

func TestCZ_OffDiagonalEntriesAreZero(t *testing.T) {
	op, err := gate.CZ{}.BuildOperator(nil, 2, mps.BuildContext{})
	require.NoError(t, err)
	v, err := op.At(0, 1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(0, 0), v)
}
