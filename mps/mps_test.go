package mps_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mpscircuit/basis"
	"github.com/katalvlaran/mpscircuit/geometry"
	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/rng"
	"github.com/katalvlaran/mpscircuit/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pauliXGate is a minimal mps.Gate test double for a single-site bit-flip,
// used to exercise the Apply Engine without depending on the gate package.
type pauliXGate struct{}

func (pauliXGate) Support() int { return 1 }
func (pauliXGate) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	op, err := tensor.NewDense(d, d)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d; i++ {
		_ = op.Set(1, i, d-1-i)
	}
	return op, nil
}
func (pauliXGate) RequiresNormalization() bool { return false }

type identityGate struct{ support int }

func (g identityGate) Support() int { return g.support }
func (g identityGate) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	if g.support == 1 {
		return tensor.Identity(d)
	}
	op, err := tensor.NewDense(d, d, d, d)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			if err := op.Set(1, i, j, i, j); err != nil {
				return nil, err
			}
		}
	}
	return op, nil
}
func (g identityGate) RequiresNormalization() bool { return false }

func TestNewProductState_MaxBondDimensionIsOne(t *testing.T) {
	state, err := mps.NewProductState([]int{2, 2, 2, 2}, []int{0, 1, 0, 1})
	require.NoError(t, err)
	for i := 0; i < state.Len()-1; i++ {
		bd, err := state.BondDim(i)
		require.NoError(t, err)
		assert.Equal(t, 1, bd)
	}
}

func TestNewProductState_RejectsMismatchedLengths(t *testing.T) {
	_, err := mps.NewProductState([]int{2, 2}, []int{0})
	assert.Error(t, err)
}

func TestNewProductState_RejectsOutOfRangeBasisIndex(t *testing.T) {
	_, err := mps.NewProductState([]int{2}, []int{5})
	assert.Error(t, err)
}

func TestGauge_PreservesNorm(t *testing.T) {
	state, err := mps.NewRandomMPS([]int{2, 2, 2}, 4, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	normBefore, err := state.Norm()
	require.NoError(t, err)

	require.NoError(t, state.Gauge(1))
	normAfter, err := state.Norm()
	require.NoError(t, err)
	assert.InDelta(t, normBefore, normAfter, 1e-6)
}

func TestApply_IdentityOnProductStateLeavesProbabilityAmplitudeAt1(t *testing.T) {
	state, err := mps.NewProductState([]int{2, 2}, []int{0, 0})
	require.NoError(t, err)
	bm, err := basis.New(2, basis.Open)
	require.NoError(t, err)

	err = mps.Apply(state, bm, basis.Open, 2, 1e-10, 16, nil, 2, identityGate{support: 2}, geometry.AdjacentPair{I: 1})
	require.NoError(t, err)

	norm, err := state.Norm()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, norm, 1e-6)
}

func TestApply_PauliXFlipsProductStateBit(t *testing.T) {
	state, err := mps.NewProductState([]int{2, 2}, []int{0, 0})
	require.NoError(t, err)
	bm, err := basis.New(2, basis.Open)
	require.NoError(t, err)

	err = mps.Apply(state, bm, basis.Open, 2, 1e-10, 16, nil, 2, pauliXGate{}, geometry.SingleSite{Site: 1})
	require.NoError(t, err)

	zeroProj, err := tensor.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, zeroProj.Set(1, 0, 0))
	val, err := state.Expectation([]int{0}, zeroProj)
	require.NoError(t, err)
	assert.InDelta(t, 0, real(val), 1e-6)
}

func TestApply_AdvancesStaircaseAfterApplication(t *testing.T) {
	state, err := mps.NewProductState([]int{2, 2, 2}, []int{0, 0, 0})
	require.NoError(t, err)
	bm, err := basis.New(3, basis.Open)
	require.NoError(t, err)

	sc := geometry.NewStaircaseRight(1, 1)
	err = mps.Apply(state, bm, basis.Open, 3, 1e-10, 16, nil, 2, identityGate{support: 2}, sc)
	require.NoError(t, err)
	assert.Equal(t, 2, sc.Position())
}

func TestBornMeasurement_OutcomeMatchesDeterministicState(t *testing.T) {
	state, err := mps.NewProductState([]int{2}, []int{0})
	require.NoError(t, err)
	reg := rng.NewRegistryFromSeed(1)

	p0, err := tensor.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, p0.Set(1, 0, 0))
	p1, err := tensor.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, p1.Set(1, 1, 1))

	outcome, err := mps.BornMeasurement(state, 0, [2]*tensor.Dense{p0, p1}, reg, 1e-10, 16)
	require.NoError(t, err)
	assert.Equal(t, 0, outcome)
}

func TestMPS_CloneIsIndependent(t *testing.T) {
	state, err := mps.NewProductState([]int{2, 2}, []int{0, 1})
	require.NoError(t, err)
	clone := state.Clone()
	require.NoError(t, clone.Gauge(0))

	// Mutating the clone's gauge must not affect the original's bond dims.
	bd, err := state.BondDim(0)
	require.NoError(t, err)
	assert.Equal(t, 1, bd)
}
