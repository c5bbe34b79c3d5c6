package state

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/mpscircuit/basis"
	"github.com/katalvlaran/mpscircuit/circuit"
	"github.com/katalvlaran/mpscircuit/geometry"
	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/observable"
	"github.com/katalvlaran/mpscircuit/rng"
)

// SimulationState is the data model spec.md §3 describes: scalar
// parameters, the basis mapping, an MPS (nil until Initialize), the RNG
// registry, and tracked-observable bookkeeping. Not safe for concurrent use
// by multiple goroutines; distinct trajectories need distinct
// SimulationStates (spec.md §5).
type SimulationState struct {
	RunID uuid.UUID

	L        int
	BC       basis.BoundaryCondition
	SiteType SiteType
	D        int
	Cutoff   float64
	MaxDim   int

	Basis *basis.Mapping
	RNG   *rng.Registry

	mps *mps.MPS

	specs  map[string]observable.Observable
	series map[string][]float64
}

// New builds a SimulationState for a length-L chain under bc, applying opts
// in order. Defaults (spec.md §6): site_type="Qubit", local_dim=2 (or 3 for
// "S=1"), cutoff=1e-10, maxdim=100, rng=none (no stream seeded).
func New(l int, bc basis.BoundaryCondition, opts ...Option) (*SimulationState, error) {
	cfg := newStateConfig(opts...)
	d, err := resolveSiteDim("state.New", cfg)
	if err != nil {
		return nil, err
	}
	basisMap, err := basis.New(l, bc)
	if err != nil {
		return nil, err
	}
	seeds := cfg.seeds
	if seeds == nil {
		seeds = map[rng.StreamName]int64{}
	}
	registry, err := rng.NewRegistry(seeds)
	if err != nil {
		return nil, err
	}

	return &SimulationState{
		RunID:    uuid.New(),
		L:        l,
		BC:       bc,
		SiteType: cfg.siteType,
		D:        d,
		Cutoff:   cfg.cutoff,
		MaxDim:   cfg.maxDim,
		Basis:    basisMap,
		RNG:      registry,
		specs:    make(map[string]observable.Observable),
		series:   make(map[string][]float64),
	}, nil
}

// MPS returns the underlying chain, or nil if Initialize has not run yet.
// Callers must not mutate the returned value directly; use Apply.
func (s *SimulationState) MPS() *mps.MPS { return s.mps }

// Initialized reports whether Initialize has been called.
func (s *SimulationState) Initialized() bool { return s.mps != nil }

// Apply runs the Apply Engine's top-level entry point against this state's
// MPS (spec.md §4.4): deterministic gate application over geom.
func (s *SimulationState) Apply(g mps.Gate, geom geometry.Geometry) error {
	const op = "state.SimulationState.Apply"
	if s.mps == nil {
		return errNotInitialized(op)
	}
	if g == nil {
		return errNilGate(op)
	}
	if geom == nil {
		return errNilGeometry(op)
	}
	return mps.Apply(s.mps, s.Basis, s.BC, s.L, s.Cutoff, s.MaxDim, s.RNG, s.D, g, geom)
}

// ApplyWithProb draws once from the named stream to select at most one of
// outcomes (spec.md §4.5, §6 apply_with_prob), applying the selected
// outcome's gate/geometry via Apply. Returns whether an outcome was
// selected and applied (false means the implicit "do nothing" branch won).
func (s *SimulationState) ApplyWithProb(stream rng.StreamName, outcomes []circuit.Outcome) (bool, error) {
	const op = "state.SimulationState.ApplyWithProb"
	if s.mps == nil {
		return false, errNotInitialized(op)
	}
	if !s.RNG.Has(stream) {
		return false, errStreamNotSeeded(op, string(stream))
	}
	if len(outcomes) == 0 {
		return false, errEmptyOutcomes(op)
	}
	var sum float64
	for _, o := range outcomes {
		if o.Gate == nil {
			return false, errNilGate(op)
		}
		if o.Geometry == nil {
			return false, errNilGeometry(op)
		}
		if o.Probability < 0 {
			return false, errNegativeProbability(op, o.Probability)
		}
		sum += o.Probability
	}
	if sum > 1+1e-9 {
		return false, errProbabilitySumTooLarge(op, sum)
	}

	r, err := s.RNG.Float64(stream)
	if err != nil {
		return false, err
	}
	outcome, ok := circuit.SelectBranch(r, outcomes)
	if !ok {
		return false, nil
	}
	if err := s.Apply(outcome.Gate, outcome.Geometry); err != nil {
		return false, err
	}
	return true, nil
}
