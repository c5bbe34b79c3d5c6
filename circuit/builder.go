package circuit

import (
	"github.com/katalvlaran/mpscircuit/basis"
	"github.com/katalvlaran/mpscircuit/geometry"
	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/rng"
)

// probabilitySumEps is the tolerance spec.md §3/§4.6 allows outcome
// probabilities to exceed 1 by, before the builder rejects them.
const probabilitySumEps = 1e-9

// circuitConfig aggregates the builder's knobs; resolved once by
// newCircuitConfig and never mutated afterward.
type circuitConfig struct {
	nSteps int
	params map[string]interface{}
}

// CircuitOption customizes a Builder's configuration before construction,
// following the functional-option idiom: constructors validate and panic
// on a meaningless input, never the algorithms they configure.
type CircuitOption func(*circuitConfig)

// WithSteps sets the circuit's repetition unit count (n_steps). Panics if
// n < 1.
func WithSteps(n int) CircuitOption {
	if n < 1 {
		panic("circuit: WithSteps(n<1)")
	}
	return func(c *circuitConfig) {
		c.nSteps = n
	}
}

// WithParam attaches one key/value pair to the circuit's opaque parameter
// map, carried for caller convenience and never interpreted by the engine.
func WithParam(key string, value interface{}) CircuitOption {
	if key == "" {
		panic("circuit: WithParam(\"\")")
	}
	return func(c *circuitConfig) {
		c.params[key] = value
	}
}

func newCircuitConfig(opts ...CircuitOption) circuitConfig {
	cfg := circuitConfig{nSteps: 1, params: make(map[string]interface{})}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Builder accumulates Operations; Build finalizes them into an immutable
// Circuit. Not safe for concurrent use by multiple goroutines.
type Builder struct {
	l      int
	bc     basis.BoundaryCondition
	nSteps int
	params map[string]interface{}
	ops    []Operation
}

// NewBuilder creates a Builder for a length-L circuit under bc, applying
// opts in order (later options override earlier ones for the same knob).
func NewBuilder(l int, bc basis.BoundaryCondition, opts ...CircuitOption) (*Builder, error) {
	if l < 2 {
		return nil, errLengthTooSmall("circuit.NewBuilder", l)
	}
	cfg := newCircuitConfig(opts...)
	return &Builder{l: l, bc: bc, nSteps: cfg.nSteps, params: cfg.params}, nil
}

// Apply records a deterministic operation: always applies g over geom.
func (b *Builder) Apply(g mps.Gate, geom geometry.Geometry) error {
	if g == nil {
		return errNilGate("circuit.Builder.Apply")
	}
	if geom == nil {
		return errNilGeometry("circuit.Builder.Apply")
	}
	b.ops = append(b.ops, Operation{Kind: KindDeterministic, Gate: g, Geometry: geom})
	return nil
}

// ApplyWithProb records a stochastic operation: draw once from stream at
// execution time to select at most one outcome. Validates at record time
// (spec.md §4.6): stream must be the one accepted name (`ctrl`), outcomes
// must be non-empty, probabilities must be non-negative and sum to at most
// 1+eps.
func (b *Builder) ApplyWithProb(stream rng.StreamName, outcomes []Outcome) error {
	if stream != rng.Ctrl {
		return errUnsupportedRNGStream("circuit.Builder.ApplyWithProb", string(stream))
	}
	if len(outcomes) == 0 {
		return errEmptyOutcomes("circuit.Builder.ApplyWithProb")
	}
	var sum float64
	for _, o := range outcomes {
		if o.Gate == nil {
			return errNilGate("circuit.Builder.ApplyWithProb")
		}
		if o.Geometry == nil {
			return errNilGeometry("circuit.Builder.ApplyWithProb")
		}
		if o.Probability < 0 {
			return errNegativeProbability("circuit.Builder.ApplyWithProb", o.Probability)
		}
		sum += o.Probability
	}
	if sum > 1+probabilitySumEps {
		return errProbabilitySumTooLarge("circuit.Builder.ApplyWithProb", sum)
	}
	b.ops = append(b.ops, Operation{Kind: KindStochastic, RNGStream: stream, Outcomes: append([]Outcome(nil), outcomes...)})
	return nil
}

// Build finalizes the accumulated Operations into an immutable Circuit.
func (b *Builder) Build() *Circuit {
	ops := append([]Operation(nil), b.ops...)
	params := make(map[string]interface{}, len(b.params))
	for k, v := range b.params {
		params[k] = v
	}
	return &Circuit{L: b.l, BC: b.bc, NSteps: b.nSteps, Ops: ops, Params: params}
}

// SelectBranch implements the stochastic branch selection rule spec.md
// §4.5 mandates for both the Expander and the Executor: iterate outcomes
// accumulating cumulative probability, return the first outcome with r <
// cumulative (strict), or ok=false if none matched ("do nothing").
func SelectBranch(r float64, outcomes []Outcome) (Outcome, bool) {
	var cumulative float64
	for _, o := range outcomes {
		cumulative += o.Probability
		if r < cumulative {
			return o, true
		}
	}
	return Outcome{}, false
}
