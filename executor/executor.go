package executor

import (
	"fmt"

	"github.com/katalvlaran/mpscircuit/basis"
	"github.com/katalvlaran/mpscircuit/circuit"
	"github.com/katalvlaran/mpscircuit/geometry"
	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/observable"
	"github.com/katalvlaran/mpscircuit/state"
)

// Simulate runs c against s for nCircuits repetitions (spec.md §4.8). For
// each repetition, each step, each operation in order: it resolves the
// gate and geometry to apply (drawing once from the operation's RNG stream
// for a stochastic operation, per the alignment contract of §4.5), executes
// one gate application per element (a single element for simple
// geometries, one per element for compound geometries), and evaluates
// predicate after every gate execution. If predicate is nil, EveryStep() is
// used.
func Simulate(s *state.SimulationState, c *circuit.Circuit, nCircuits int, predicate Predicate) error {
	const op = "executor.Simulate"
	if s == nil {
		return errNilState(op)
	}
	if c == nil {
		return errNilCircuit(op)
	}
	if nCircuits < 1 {
		return errTooFewCircuits(op, nCircuits)
	}
	if predicate == nil {
		predicate = EveryStep()
	}

	gateIdx := 0
	for rep := 1; rep <= nCircuits; rep++ {
		shouldRecord := false
		for stepNum := 1; stepNum <= c.NSteps; stepNum++ {
			isLastStep := stepNum == c.NSteps
			lastOpFired := false
			for i, operation := range c.Ops {
				isLastOp := i == len(c.Ops)-1
				var err error
				var fired bool
				gateIdx, fired, err = runOperation(s, operation, rep, isLastStep, isLastOp, predicate, gateIdx, &shouldRecord)
				if err != nil {
					return err
				}
				if isLastOp {
					lastOpFired = fired
				}
			}
			// spec.md §9 Open Question (ii): a stochastic operation that is
			// also the last operation of the last step may select "do
			// nothing", in which case no gate application ever carries
			// IsStepBoundary=true. :every_step/:final_only/every_n_steps key
			// off that flag regardless, so evaluate it here unconditionally;
			// recordNow is deliberately ignored since no gate actually ran.
			if isLastStep && !lastOpFired {
				setFlag, _ := predicate.Evaluate(RecordingContext{StepIdx: rep, GateIdx: gateIdx, IsStepBoundary: true})
				if setFlag {
					shouldRecord = true
				}
			}
		}
		if shouldRecord {
			if err := s.Record(observable.Context{}); err != nil {
				return err
			}
		}
	}
	return nil
}

// runOperation executes operation's gate application(s) against s,
// bumping gateIdx once per element and evaluating predicate after each.
// fired reports whether at least one gate actually executed.
func runOperation(s *state.SimulationState, operation circuit.Operation, rep int, isLastStep, isLastOp bool, predicate Predicate, gateIdx int, shouldRecord *bool) (int, bool, error) {
	g, geom, ok, err := resolveGateAndGeometry(s, operation)
	if err != nil {
		return gateIdx, false, err
	}
	if !ok {
		return gateIdx, false, nil
	}

	if !geometry.IsCompound(geom) {
		if err := s.Apply(g, geom); err != nil {
			return gateIdx, false, err
		}
		gateIdx++
		ctx := RecordingContext{
			StepIdx:        rep,
			GateIdx:        gateIdx,
			GateType:       gateTypeName(g),
			IsStepBoundary: isLastStep && isLastOp,
		}
		if err := applyRecordingStep(s, predicate, ctx, shouldRecord); err != nil {
			return gateIdx, true, err
		}
		return gateIdx, true, nil
	}

	elements, err := geom.Elements(s.L, s.BC)
	if err != nil {
		return gateIdx, false, err
	}
	for idx, sites := range elements {
		if err := s.Apply(g, singleElementGeometry(sites)); err != nil {
			return gateIdx, idx > 0, err
		}
		gateIdx++
		ctx := RecordingContext{
			StepIdx:        rep,
			GateIdx:        gateIdx,
			GateType:       gateTypeName(g),
			IsStepBoundary: isLastStep && isLastOp && idx == len(elements)-1,
		}
		if err := applyRecordingStep(s, predicate, ctx, shouldRecord); err != nil {
			return gateIdx, true, err
		}
	}
	return gateIdx, len(elements) > 0, nil
}

// resolveGateAndGeometry returns the gate/geometry an operation resolves
// to: directly for a deterministic Operation, or via one RNG draw and the
// shared circuit.SelectBranch rule for a stochastic one (spec.md §4.5). ok
// is false only for the stochastic "do nothing" branch.
func resolveGateAndGeometry(s *state.SimulationState, operation circuit.Operation) (mps.Gate, geometry.Geometry, bool, error) {
	if operation.Kind == circuit.KindDeterministic {
		return operation.Gate, operation.Geometry, true, nil
	}
	r, err := s.RNG.Float64(operation.RNGStream)
	if err != nil {
		return nil, nil, false, err
	}
	outcome, ok := circuit.SelectBranch(r, operation.Outcomes)
	if !ok {
		return nil, nil, false, nil
	}
	return outcome.Gate, outcome.Geometry, true, nil
}

// applyRecordingStep evaluates predicate against ctx, setting
// *shouldRecord on a deferred trigger and recording immediately on an
// :every_gate-style trigger.
func applyRecordingStep(s *state.SimulationState, predicate Predicate, ctx RecordingContext, shouldRecord *bool) error {
	setFlag, recordNow := predicate.Evaluate(ctx)
	if setFlag {
		*shouldRecord = true
	}
	if recordNow {
		return s.Record(observable.Context{})
	}
	return nil
}

func gateTypeName(g mps.Gate) string {
	return fmt.Sprintf("%T", g)
}

// fixedSites is the "single-site wrapper" spec.md §4.8 calls for: a trivial
// Geometry adapter around one already-resolved compound-geometry element,
// so each element can be dispatched through the ordinary Apply path (which
// Measurement/Reset's composite dispatch and every BuildOperator
// implementation expect) instead of through a raw site slice.
type fixedSites struct {
	sites []int
}

func (f fixedSites) Kind() geometry.Kind {
	if len(f.sites) == 1 {
		return geometry.KindSingleSite
	}
	return geometry.KindAdjacentPair
}

func (f fixedSites) Elements(l int, bc basis.BoundaryCondition) ([][]int, error) {
	return [][]int{f.sites}, nil
}

func singleElementGeometry(sites []int) geometry.Geometry {
	return fixedSites{sites: sites}
}
