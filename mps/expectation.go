package mps

import (
	"math/cmplx"

	"github.com/katalvlaran/mpscircuit/tensor"
)

// Expectation computes ⟨ψ|Op|ψ⟩ for an operator acting on a contiguous
// run of RAM positions, without mutating the receiver — it gauges a clone
// instead. Used by the per-site Born measurement primitive and by
// two-site random gates (SpinSectorMeasurement) that need read-only access
// to the current state to compute branch probabilities (spec §4.3).
func (m *MPS) Expectation(ramIndices []int, op *tensor.Dense) (complex128, error) {
	support := len(ramIndices)
	clone := m.Clone()
	if err := clone.Gauge(ramIndices[0]); err != nil {
		return 0, err
	}
	block, err := buildBlock(clone, ramIndices)
	if err != nil {
		return 0, err
	}
	opBlock, err := applyOperatorToBlock(block, op, support)
	if err != nil {
		return 0, err
	}
	return contractConjOverlap(opBlock, block)
}

// contractConjOverlap computes sum_idx conj(b[idx]) * a[idx] for two
// tensors of identical shape — the scalar overlap ⟨block|opBlock⟩.
func contractConjOverlap(a, b *tensor.Dense) (complex128, error) {
	if a.Size() != b.Size() {
		return 0, errSupportMismatch("mps.contractConjOverlap", b.Size(), a.Size())
	}
	var sum complex128
	ad, bd := a.RawData(), b.RawData()
	for i := range ad {
		sum += cmplx.Conj(bd[i]) * ad[i]
	}
	return sum, nil
}
