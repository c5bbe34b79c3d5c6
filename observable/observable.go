package observable

import "github.com/katalvlaran/mpscircuit/mps"

// Context carries the single extra piece of information the "domain wall"
// observable family needs: an index i1, which may arrive at registration
// time (baked into the Observable itself by a Func closure that captures
// it) or at record time (via this Context, which WithIndex requires). HasI1 distinguishes a genuinely supplied
// 0 from "no index given".
type Context struct {
	I1    int
	HasI1 bool
}

// Observable is the only contract the core imposes on an observable spec:
// it produces a scalar from the current MPS, read-only. Everything else —
// what the scalar means, how many sites it touches — is the caller's
// concern.
type Observable interface {
	Evaluate(m *mps.MPS, ctx Context) (float64, error)
}

// Func adapts a plain function, ignoring any Context, into an Observable.
type Func func(m *mps.MPS) (float64, error)

func (f Func) Evaluate(m *mps.MPS, ctx Context) (float64, error) {
	return f(m)
}

// WithIndex adapts a function that needs the domain-wall-style extra index
// into an Observable. Evaluate fails with InvalidArgument if no index was
// supplied in ctx at record time.
type WithIndex func(m *mps.MPS, i1 int) (float64, error)

func (f WithIndex) Evaluate(m *mps.MPS, ctx Context) (float64, error) {
	if !ctx.HasI1 {
		return 0, errMissingIndex("observable.WithIndex.Evaluate")
	}
	return f(m, ctx.I1)
}
