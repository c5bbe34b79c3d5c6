package expand

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mpscircuit/circuit"
	"github.com/katalvlaran/mpscircuit/geometry"
	"github.com/katalvlaran/mpscircuit/mps"
)

// ExpandedOp is one concrete per-timestep gate application: which step it
// belongs to, the gate, the physical sites it acts on, and a short
// human-readable label for diagrams (spec.md §4.7).
type ExpandedOp struct {
	StepIndex int
	Gate      mps.Gate
	Sites     []int
	Label     string
}

// knownKinds is the closed set of geometry variants this version
// understands; anything else fails validation rather than being silently
// skipped.
var knownKinds = map[geometry.Kind]bool{
	geometry.KindSingleSite:          true,
	geometry.KindAdjacentPair:        true,
	geometry.KindNextNearestNeighbor: true,
	geometry.KindBricklayer:          true,
	geometry.KindAllSites:            true,
	geometry.KindStaircaseLeft:       true,
	geometry.KindStaircaseRight:      true,
	geometry.KindPointer:             true,
}

func validateGeometryKind(g geometry.Geometry) error {
	if !knownKinds[g.Kind()] {
		return errUnsupportedGeometryKind("expand.ExpandCircuit", int(g.Kind()))
	}
	return nil
}

// ExpandCircuit resolves c into a concrete per-step list of ExpandedOps
// (spec.md §4.7). It is pure: it never mutates c or any geometry reachable
// from it, and it never touches an MPS. Stochastic operations draw from a
// dedicated RNG seeded with seed, using the same SelectBranch rule the
// Executor applies at run time, so an Expander run and an Executor run
// given the same seed predict the same sequence of gate applications.
func ExpandCircuit(c *circuit.Circuit, seed int64) ([][]ExpandedOp, error) {
	if c == nil {
		return nil, errNilCircuit("expand.ExpandCircuit")
	}
	for _, op := range c.Ops {
		if op.Kind == circuit.KindDeterministic {
			if err := validateGeometryKind(op.Geometry); err != nil {
				return nil, err
			}
			continue
		}
		for _, o := range op.Outcomes {
			if err := validateGeometryKind(o.Geometry); err != nil {
				return nil, err
			}
		}
	}

	source := rand.New(rand.NewSource(seed))
	result := make([][]ExpandedOp, c.NSteps)
	for step := 1; step <= c.NSteps; step++ {
		var stepOps []ExpandedOp
		for _, op := range c.Ops {
			if op.Kind == circuit.KindDeterministic {
				elements, err := geometry.ComputeSites(op.Geometry, step, c.L, c.BC)
				if err != nil {
					return nil, err
				}
				for _, sites := range elements {
					stepOps = append(stepOps, ExpandedOp{StepIndex: step, Gate: op.Gate, Sites: sites, Label: label(op.Gate, sites)})
				}
				continue
			}

			outcome, ok := circuit.SelectBranch(source.Float64(), op.Outcomes)
			if !ok {
				continue
			}
			elements, err := geometry.ComputeSites(outcome.Geometry, step, c.L, c.BC)
			if err != nil {
				return nil, err
			}
			for _, sites := range elements {
				stepOps = append(stepOps, ExpandedOp{StepIndex: step, Gate: outcome.Gate, Sites: sites, Label: label(outcome.Gate, sites)})
			}
		}
		result[step-1] = stepOps
	}
	return result, nil
}

func label(g mps.Gate, sites []int) string {
	return fmt.Sprintf("%T@%v", g, sites)
}
