package mps

import (
	"github.com/katalvlaran/mpscircuit/rng"
	"github.com/katalvlaran/mpscircuit/tensor"
)

// ApplySingleSiteOperator applies an arbitrary unitary operator at a single
// RAM position without any normalization afterward, exposed for composite
// gates (Reset's conditional Pauli-X) that need to reuse the Apply
// Engine's single-site update path directly.
func ApplySingleSiteOperator(m *MPS, ramSite int, op *tensor.Dense, cutoff float64, maxDim int) error {
	return applyOpInternal(m, op, []int{ramSite}, cutoff, maxDim)
}

// BornMeasurement is the per-site Born measurement primitive (spec §4.4):
// compute p0 = ⟨ψ|P_0|ψ⟩ at ramSite, draw u from the born stream, select
// outcome 0 if u < p0 else 1, apply the corresponding projector, and
// renormalize. projectors[0], projectors[1] must sum to the identity on
// that site's local dimension. Returns the selected outcome (0 or 1).
func BornMeasurement(m *MPS, ramSite int, projectors [2]*tensor.Dense, streams *rng.Registry, cutoff float64, maxDim int) (int, error) {
	if err := m.Gauge(ramSite); err != nil {
		return 0, err
	}
	total := blockNormSquared(m.sites[ramSite])
	if total < 1e-14 {
		return 0, errBornTotalProbabilityTooSmall("mps.BornMeasurement", total)
	}

	p0Val, err := m.Expectation([]int{ramSite}, projectors[0])
	if err != nil {
		return 0, err
	}
	prob0 := real(p0Val) / total

	u, err := streams.Float64(rng.Born)
	if err != nil {
		return 0, err
	}
	outcome := 1
	if u < prob0 {
		outcome = 0
	}

	if err := ApplySingleSiteOperator(m, ramSite, projectors[outcome], cutoff, maxDim); err != nil {
		return 0, err
	}
	if err := m.Normalize(); err != nil {
		return 0, err
	}
	return outcome, nil
}
