package executor_test

import (
	"testing"

	"github.com/katalvlaran/mpscircuit/basis"
	"github.com/katalvlaran/mpscircuit/circuit"
	"github.com/katalvlaran/mpscircuit/executor"
	"github.com/katalvlaran/mpscircuit/gate"
	"github.com/katalvlaran/mpscircuit/geometry"
	"github.com/katalvlaran/mpscircuit/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingScenarioCircuit builds the fixed two-operation circuit used
// throughout the quantitative recording scenarios: HaarRandom on
// StaircaseRight(1) then Reset on SingleSite(2), L=4, open BC, n_steps=2.
// Each repetition therefore executes exactly 4 gate applications.
func recordingScenarioCircuit(t *testing.T) *circuit.Circuit {
	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(2))
	require.NoError(t, err)
	require.NoError(t, b.Apply(gate.HaarRandom{}, geometry.NewStaircaseRight(1, 1)))
	require.NoError(t, b.Apply(gate.Reset{}, geometry.SingleSite{Site: 2}))
	return b.Build()
}

func recordingScenarioState(t *testing.T) *state.SimulationState {
	s, err := state.New(4, basis.Open, state.WithRNGSeed(42))
	require.NoError(t, err)
	require.NoError(t, state.Initialize(s, state.ProductStateFromBinaryInt(0)))
	require.NoError(t, s.Track("dw", normObservable()))
	return s
}

func TestSimulate_RecordingScenario1_EveryStepLengthTwo(t *testing.T) {
	s := recordingScenarioState(t)
	c := recordingScenarioCircuit(t)

	require.NoError(t, executor.Simulate(s, c, 2, executor.EveryStep()))

	series, err := s.Series("dw")
	require.NoError(t, err)
	assert.Len(t, series, 2)
}

func TestSimulate_RecordingScenario2_EveryGateLengthEight(t *testing.T) {
	s := recordingScenarioState(t)
	c := recordingScenarioCircuit(t)

	require.NoError(t, executor.Simulate(s, c, 2, executor.EveryGate()))

	series, err := s.Series("dw")
	require.NoError(t, err)
	assert.Len(t, series, 8)
}

func TestSimulate_RecordingScenario3_FinalOnlyLengthOne(t *testing.T) {
	s := recordingScenarioState(t)
	c := recordingScenarioCircuit(t)

	require.NoError(t, executor.Simulate(s, c, 2, executor.FinalOnly(2)))

	series, err := s.Series("dw")
	require.NoError(t, err)
	assert.Len(t, series, 1)
}

func TestSimulate_RecordingScenario4_EveryNGatesFourLengthThree(t *testing.T) {
	s := recordingScenarioState(t)
	c := recordingScenarioCircuit(t)

	require.NoError(t, executor.Simulate(s, c, 3, executor.EveryNGates(4)))

	series, err := s.Series("dw")
	require.NoError(t, err)
	assert.Len(t, series, 3)
}

func TestSimulate_RecordingScenario5_EveryNStepsTwoLengthTwo(t *testing.T) {
	s := recordingScenarioState(t)
	c := recordingScenarioCircuit(t)

	require.NoError(t, executor.Simulate(s, c, 4, executor.EveryNSteps(2)))

	series, err := s.Series("dw")
	require.NoError(t, err)
	assert.Len(t, series, 2)
}

func TestSimulate_RecordingScenario6_UserFuncGateIdxOneLengthOne(t *testing.T) {
	s := recordingScenarioState(t)
	c := recordingScenarioCircuit(t)

	pred := executor.UserFunc(func(ctx executor.RecordingContext) bool {
		return ctx.GateIdx == 1
	})
	require.NoError(t, executor.Simulate(s, c, 2, pred))

	series, err := s.Series("dw")
	require.NoError(t, err)
	assert.Len(t, series, 1)
}

// Product states are built with every bond dimension 1 (mps.NewProductState
// places a single 1 entry per site with boundary bonds of size 1), so the
// chain carries exactly one Schmidt coefficient across every cut and the
// entanglement entropy across any cut is 0 (spec.md §8).
func TestInitialize_ProductStateFromBinaryIntHasUnitBondDimension(t *testing.T) {
	s, err := state.New(5, basis.Open)
	require.NoError(t, err)
	require.NoError(t, state.Initialize(s, state.ProductStateFromBinaryInt(21)))

	for i := 0; i < s.MPS().Len()-1; i++ {
		bd, err := s.MPS().BondDim(i)
		require.NoError(t, err)
		assert.Equal(t, 1, bd)
	}
}

func TestInitialize_ProductStateFromBitstringHasUnitBondDimension(t *testing.T) {
	s, err := state.New(6, basis.Open)
	require.NoError(t, err)
	require.NoError(t, state.Initialize(s, state.ProductStateFromBitstring("101100")))

	for i := 0; i < s.MPS().Len()-1; i++ {
		bd, err := s.MPS().BondDim(i)
		require.NoError(t, err)
		assert.Equal(t, 1, bd)
	}
}

func TestInitialize_ProductStateNormIsOne(t *testing.T) {
	s, err := state.New(4, basis.Open)
	require.NoError(t, err)
	require.NoError(t, state.Initialize(s, state.ProductStateFromBinaryInt(5)))

	norm, err := s.MPS().Norm()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, norm, 1e-9)
}
