package executor

// RecordingContext is the information a Predicate evaluates against after
// every gate application (spec.md §3, §4.10): StepIdx is the 1-based
// circuit repetition index, GateIdx is the cumulative count of gate
// executions across all repetitions and steps, GateType identifies the
// gate that just ran, and IsStepBoundary is true exactly on the last gate
// of the last operation of the last inner step of a repetition.
type RecordingContext struct {
	StepIdx        int
	GateIdx        int
	GateType       string
	IsStepBoundary bool
}

// Predicate decides whether the Executor should record now or defer to the
// end of the repetition. Evaluate returns (setFlag, recordNow): setFlag
// means "record once the repetition finishes"; recordNow means "record
// immediately", needed by :every_gate inside a compound-geometry loop.
type Predicate interface {
	Evaluate(ctx RecordingContext) (setFlag bool, recordNow bool)
}

type predicateFunc func(ctx RecordingContext) (bool, bool)

func (f predicateFunc) Evaluate(ctx RecordingContext) (bool, bool) { return f(ctx) }

// EveryStep fires once per repetition, at the step boundary.
func EveryStep() Predicate {
	return predicateFunc(func(ctx RecordingContext) (bool, bool) {
		return ctx.IsStepBoundary, false
	})
}

// EveryGate fires after every gate application, recording immediately
// (spec.md §4.10: ":every_gate produces record_now=true").
func EveryGate() Predicate {
	return predicateFunc(func(ctx RecordingContext) (bool, bool) {
		return false, true
	})
}

// FinalOnly fires at the step boundary of the last of nCircuits
// repetitions.
func FinalOnly(nCircuits int) Predicate {
	return predicateFunc(func(ctx RecordingContext) (bool, bool) {
		return ctx.IsStepBoundary && ctx.StepIdx == nCircuits, false
	})
}

// EveryNGates fires when gate_idx mod n == 0. Panics if n < 1.
func EveryNGates(n int) Predicate {
	if n < 1 {
		panic("executor: EveryNGates(n<1)")
	}
	return predicateFunc(func(ctx RecordingContext) (bool, bool) {
		return ctx.GateIdx%n == 0, false
	})
}

// EveryNSteps fires at the step boundary when step_idx mod n == 0. Panics
// if n < 1.
func EveryNSteps(n int) Predicate {
	if n < 1 {
		panic("executor: EveryNSteps(n<1)")
	}
	return predicateFunc(func(ctx RecordingContext) (bool, bool) {
		return ctx.IsStepBoundary && ctx.StepIdx%n == 0, false
	})
}

// UserFunc adapts an arbitrary predicate function: it sets the
// end-of-repetition flag whenever fn returns true for the current context.
// Panics if fn is nil.
func UserFunc(fn func(ctx RecordingContext) bool) Predicate {
	if fn == nil {
		panic("executor: UserFunc(nil)")
	}
	return predicateFunc(func(ctx RecordingContext) (bool, bool) {
		return fn(ctx), false
	})
}
