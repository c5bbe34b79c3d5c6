package executor_test

import (
	"testing"

	"github.com/katalvlaran/mpscircuit/basis"
	"github.com/katalvlaran/mpscircuit/circuit"
	"github.com/katalvlaran/mpscircuit/executor"
	"github.com/katalvlaran/mpscircuit/gate"
	"github.com/katalvlaran/mpscircuit/geometry"
	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/observable"
	"github.com/katalvlaran/mpscircuit/rng"
	"github.com/katalvlaran/mpscircuit/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQubitState(t *testing.T, l int, opts ...state.Option) *state.SimulationState {
	s, err := state.New(l, basis.Open, opts...)
	require.NoError(t, err)
	require.NoError(t, state.Initialize(s, state.ProductStateFromBinaryInt(0)))
	return s
}

func normObservable() observable.Observable {
	return observable.Func(func(m *mps.MPS) (float64, error) { return m.Norm() })
}

func TestSimulate_RejectsNilState(t *testing.T) {
	b, err := circuit.NewBuilder(4, basis.Open)
	require.NoError(t, err)
	err = executor.Simulate(nil, b.Build(), 1, nil)
	assert.Error(t, err)
}

func TestSimulate_RejectsTooFewCircuits(t *testing.T) {
	s := newQubitState(t, 4)
	b, err := circuit.NewBuilder(4, basis.Open)
	require.NoError(t, err)
	err = executor.Simulate(s, b.Build(), 0, nil)
	assert.Error(t, err)
}

func TestSimulate_EveryStepRecordsOncePerRepetition(t *testing.T) {
	s := newQubitState(t, 4)
	require.NoError(t, s.Track("norm", normObservable()))

	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(2))
	require.NoError(t, err)
	require.NoError(t, b.Apply(gate.PauliX{}, geometry.SingleSite{Site: 1}))
	c := b.Build()

	require.NoError(t, executor.Simulate(s, c, 3, executor.EveryStep()))

	series, err := s.Series("norm")
	require.NoError(t, err)
	assert.Len(t, series, 3)
}

func TestSimulate_EveryGateRecordsPerElementInCompoundGeometry(t *testing.T) {
	s := newQubitState(t, 4)
	require.NoError(t, s.Track("norm", normObservable()))

	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(1))
	require.NoError(t, err)
	require.NoError(t, b.Apply(gate.PauliX{}, geometry.AllSites{}))
	c := b.Build()

	require.NoError(t, executor.Simulate(s, c, 1, executor.EveryGate()))

	series, err := s.Series("norm")
	require.NoError(t, err)
	assert.Len(t, series, 4) // one record per AllSites element
}

func TestSimulate_FinalOnlyRecordsOnlyOnLastRepetition(t *testing.T) {
	s := newQubitState(t, 4)
	require.NoError(t, s.Track("norm", normObservable()))

	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(1))
	require.NoError(t, err)
	require.NoError(t, b.Apply(gate.PauliX{}, geometry.SingleSite{Site: 1}))
	c := b.Build()

	require.NoError(t, executor.Simulate(s, c, 3, executor.FinalOnly(3)))

	series, err := s.Series("norm")
	require.NoError(t, err)
	assert.Len(t, series, 1)
}

func TestSimulate_EveryNGatesFiresOnMultiples(t *testing.T) {
	s := newQubitState(t, 4)
	require.NoError(t, s.Track("norm", normObservable()))

	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(1))
	require.NoError(t, err)
	require.NoError(t, b.Apply(gate.PauliX{}, geometry.SingleSite{Site: 1}))
	require.NoError(t, b.Apply(gate.PauliX{}, geometry.SingleSite{Site: 2}))
	c := b.Build()

	require.NoError(t, executor.Simulate(s, c, 1, executor.EveryNGates(2)))

	series, err := s.Series("norm")
	require.NoError(t, err)
	assert.Len(t, series, 1) // gate_idx reaches 2 once, at the end of the single repetition
}

func TestSimulate_StochasticOperationDrawsExactlyOncePerStep(t *testing.T) {
	s := newQubitState(t, 4, state.WithStreamSeed(rng.Ctrl, 7))
	require.NoError(t, s.Track("norm", normObservable()))

	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(1))
	require.NoError(t, err)
	require.NoError(t, b.ApplyWithProb(rng.Ctrl, []circuit.Outcome{
		{Probability: 1, Gate: gate.PauliX{}, Geometry: geometry.SingleSite{Site: 1}},
	}))
	c := b.Build()

	require.NoError(t, executor.Simulate(s, c, 1, executor.EveryStep()))

	series, err := s.Series("norm")
	require.NoError(t, err)
	assert.Len(t, series, 1)
}

func TestSimulate_StochasticDoNothingBranchRecordsNothingExtra(t *testing.T) {
	s := newQubitState(t, 4, state.WithStreamSeed(rng.Ctrl, 7))
	require.NoError(t, s.Track("norm", normObservable()))

	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(1))
	require.NoError(t, err)
	require.NoError(t, b.ApplyWithProb(rng.Ctrl, []circuit.Outcome{
		{Probability: 0, Gate: gate.PauliX{}, Geometry: geometry.SingleSite{Site: 1}},
	}))
	c := b.Build()

	require.NoError(t, executor.Simulate(s, c, 1, executor.EveryGate()))

	series, err := s.Series("norm")
	require.NoError(t, err)
	assert.Len(t, series, 0)
}

func TestSimulate_StepBoundaryFiresWhenLastOperationSelectsNothing(t *testing.T) {
	s := newQubitState(t, 4, state.WithStreamSeed(rng.Ctrl, 7))
	require.NoError(t, s.Track("norm", normObservable()))

	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(1))
	require.NoError(t, err)
	// The only operation in the only step of the only repetition selects
	// "do nothing" (probability 0), so no gate ever carries
	// IsStepBoundary=true. :every_step must still fire once at the
	// repetition boundary per the conservative recording rule.
	require.NoError(t, b.ApplyWithProb(rng.Ctrl, []circuit.Outcome{
		{Probability: 0, Gate: gate.PauliX{}, Geometry: geometry.SingleSite{Site: 1}},
	}))
	c := b.Build()

	require.NoError(t, executor.Simulate(s, c, 1, executor.EveryStep()))

	series, err := s.Series("norm")
	require.NoError(t, err)
	assert.Len(t, series, 1)
}

func TestSimulate_FinalOnlyFiresWhenLastOperationSelectsNothing(t *testing.T) {
	s := newQubitState(t, 4, state.WithStreamSeed(rng.Ctrl, 7))
	require.NoError(t, s.Track("norm", normObservable()))

	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(1))
	require.NoError(t, err)
	require.NoError(t, b.ApplyWithProb(rng.Ctrl, []circuit.Outcome{
		{Probability: 0, Gate: gate.PauliX{}, Geometry: geometry.SingleSite{Site: 1}},
	}))
	c := b.Build()

	require.NoError(t, executor.Simulate(s, c, 2, executor.FinalOnly(2)))

	series, err := s.Series("norm")
	require.NoError(t, err)
	assert.Len(t, series, 1)
}

func TestSimulate_UserFuncPredicate(t *testing.T) {
	s := newQubitState(t, 4)
	require.NoError(t, s.Track("norm", normObservable()))

	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(1))
	require.NoError(t, err)
	require.NoError(t, b.Apply(gate.PauliX{}, geometry.SingleSite{Site: 1}))
	c := b.Build()

	fired := false
	pred := executor.UserFunc(func(ctx executor.RecordingContext) bool {
		if ctx.GateType != "" {
			fired = true
		}
		return ctx.IsStepBoundary
	})
	require.NoError(t, executor.Simulate(s, c, 1, pred))
	assert.True(t, fired)

	series, err := s.Series("norm")
	require.NoError(t, err)
	assert.Len(t, series, 1)
}
