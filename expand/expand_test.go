package expand_test

import (
	"testing"

	"github.com/katalvlaran/mpscircuit/basis"
	"github.com/katalvlaran/mpscircuit/circuit"
	"github.com/katalvlaran/mpscircuit/expand"
	"github.com/katalvlaran/mpscircuit/gate"
	"github.com/katalvlaran/mpscircuit/geometry"
	"github.com/katalvlaran/mpscircuit/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandCircuit_DeterministicStaircaseAdvances(t *testing.T) {
	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(3))
	require.NoError(t, err)
	require.NoError(t, b.Apply(gate.PauliX{}, geometry.NewStaircaseRight(1, 1)))
	c := b.Build()

	steps, err := expand.ExpandCircuit(c, 1)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	require.Len(t, steps[0], 1)
	assert.Equal(t, []int{1, 2}, steps[0][0].Sites)
	require.Len(t, steps[1], 1)
	assert.Equal(t, []int{2, 3}, steps[1][0].Sites)
	require.Len(t, steps[2], 1)
	assert.Equal(t, []int{3, 4}, steps[2][0].Sites)
}

func TestExpandCircuit_NeverMutatesOriginalGeometry(t *testing.T) {
	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(3))
	require.NoError(t, err)
	sc := geometry.NewStaircaseRight(1, 1)
	require.NoError(t, b.Apply(gate.PauliX{}, sc))
	c := b.Build()

	_, err = expand.ExpandCircuit(c, 1)
	require.NoError(t, err)

	original := c.Ops[0].Geometry.(*geometry.StaircaseRight)
	assert.Equal(t, 1, original.Position())
}

func TestExpandCircuit_StochasticOperationSelectsOutcomeDeterministicallyPerSeed(t *testing.T) {
	b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(1))
	require.NoError(t, err)
	require.NoError(t, b.ApplyWithProb(rng.Ctrl, []circuit.Outcome{
		{Probability: 1.0, Gate: gate.PauliX{}, Geometry: geometry.SingleSite{Site: 2}},
	}))
	c := b.Build()

	steps, err := expand.ExpandCircuit(c, 42)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	require.Len(t, steps[0], 1)
	assert.Equal(t, []int{2}, steps[0][0].Sites)
	assert.IsType(t, gate.PauliX{}, steps[0][0].Gate)
}

func TestExpandCircuit_SameSeedReproducesSameExpansion(t *testing.T) {
	build := func() *circuit.Circuit {
		b, err := circuit.NewBuilder(4, basis.Open, circuit.WithSteps(5))
		require.NoError(t, err)
		require.NoError(t, b.ApplyWithProb(rng.Ctrl, []circuit.Outcome{
			{Probability: 0.5, Gate: gate.PauliX{}, Geometry: geometry.SingleSite{Site: 1}},
		}))
		return b.Build()
	}

	a, err := expand.ExpandCircuit(build(), 7)
	require.NoError(t, err)
	c, err := expand.ExpandCircuit(build(), 7)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestExpandCircuit_RejectsNilCircuit(t *testing.T) {
	_, err := expand.ExpandCircuit(nil, 0)
	assert.Error(t, err)
}
