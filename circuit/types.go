package circuit

import (
	"github.com/katalvlaran/mpscircuit/basis"
	"github.com/katalvlaran/mpscircuit/geometry"
	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/rng"
)

// Kind tags the two Operation variants (spec.md §3).
type Kind int

const (
	// KindDeterministic operations always apply their gate+geometry.
	KindDeterministic Kind = iota
	// KindStochastic operations draw once from a named RNG stream to
	// select at most one of several (probability, gate, geometry) outcomes.
	KindStochastic
)

// Outcome is one branch of a stochastic Operation: apply Gate over Geometry
// with probability Probability. Residual probability mass (1 - sum of all
// outcomes' probabilities) is the implicit "do nothing" branch.
type Outcome struct {
	Probability float64
	Gate        mps.Gate
	Geometry    geometry.Geometry
}

func (o Outcome) clone() Outcome {
	return Outcome{Probability: o.Probability, Gate: o.Gate, Geometry: cloneGeometry(o.Geometry)}
}

// Operation is the tagged sum spec.md §3 describes: a deterministic
// (Gate, Geometry) pair, or a stochastic (RNGStream, Outcomes) pair.
type Operation struct {
	Kind      Kind
	Gate      mps.Gate          // set iff Kind == KindDeterministic
	Geometry  geometry.Geometry // set iff Kind == KindDeterministic
	RNGStream rng.StreamName    // set iff Kind == KindStochastic
	Outcomes  []Outcome         // set iff Kind == KindStochastic
}

func (op Operation) clone() Operation {
	out := op
	if op.Kind == KindDeterministic {
		out.Geometry = cloneGeometry(op.Geometry)
		return out
	}
	out.Outcomes = make([]Outcome, len(op.Outcomes))
	for i, o := range op.Outcomes {
		out.Outcomes[i] = o.clone()
	}
	return out
}

// Circuit is an immutable value once returned by Build: length L, boundary
// condition, step count, an ordered list of Operations, and an opaque
// user parameter map the engine never interprets (spec.md §3).
type Circuit struct {
	L        int
	BC       basis.BoundaryCondition
	NSteps   int
	Ops      []Operation
	Params   map[string]interface{}
}

// Clone performs a defensive deep copy, including every mutable geometry
// pointer (StaircaseLeft/StaircaseRight/Pointer) reachable from Ops, so a
// caller can run the same logical circuit across concurrent trajectories by
// cloning once per trajectory instead of sharing geometry state (spec.md
// §5, §9: "construct a fresh Circuit per trajectory").
func (c *Circuit) Clone() *Circuit {
	ops := make([]Operation, len(c.Ops))
	for i, op := range c.Ops {
		ops[i] = op.clone()
	}
	params := make(map[string]interface{}, len(c.Params))
	for k, v := range c.Params {
		params[k] = v
	}
	return &Circuit{L: c.L, BC: c.BC, NSteps: c.NSteps, Ops: ops, Params: params}
}

// cloneGeometry deep-copies the mutable-pointer geometry kinds and returns
// every other (stateless value) geometry unchanged — a plain struct value
// behind an interface is already an independent copy.
func cloneGeometry(g geometry.Geometry) geometry.Geometry {
	switch sg := g.(type) {
	case *geometry.StaircaseRight:
		return sg.Clone()
	case *geometry.StaircaseLeft:
		return sg.Clone()
	case *geometry.Pointer:
		return sg.Clone()
	default:
		return g
	}
}
