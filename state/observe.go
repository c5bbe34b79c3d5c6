package state

import (
	"sort"

	"github.com/katalvlaran/mpscircuit/observable"
)

// Track registers spec under name (spec.md §6 track). Names must be
// non-empty and unique across the lifetime of the SimulationState.
func (s *SimulationState) Track(name string, spec observable.Observable) error {
	const op = "state.SimulationState.Track"
	if name == "" {
		return errEmptyObservableName(op)
	}
	if spec == nil {
		return errNilObservable(op)
	}
	if _, exists := s.specs[name]; exists {
		return errDuplicateObservable(op, name)
	}
	s.specs[name] = spec
	s.series[name] = nil
	return nil
}

// Record evaluates every tracked observable against the current MPS and
// appends the resulting scalar to its series (spec.md §6 record). ctx is
// forwarded unchanged to every Observable.Evaluate call; observables that
// don't need it (plain observable.Func values) ignore it.
func (s *SimulationState) Record(ctx observable.Context) error {
	const op = "state.SimulationState.Record"
	if s.mps == nil {
		return errNotInitialized(op)
	}
	for _, name := range s.ListObservables() {
		v, err := s.specs[name].Evaluate(s.mps, ctx)
		if err != nil {
			return err
		}
		s.series[name] = append(s.series[name], v)
	}
	return nil
}

// ListObservables returns the registered observable names in sorted order
// (spec.md §6 list_observables).
func (s *SimulationState) ListObservables() []string {
	names := make([]string, 0, len(s.specs))
	for name := range s.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Series returns a copy of the recorded scalar sequence for name.
func (s *SimulationState) Series(name string) ([]float64, error) {
	v, ok := s.series[name]
	if !ok {
		return nil, errUnknownObservable("state.SimulationState.Series", name)
	}
	return append([]float64(nil), v...), nil
}
