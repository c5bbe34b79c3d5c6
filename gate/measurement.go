package gate

import (
	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/tensor"
)

// Measurement is a composite gate: it is translated by the Apply Engine
// into one Born-sampled single-site projection, drawing exactly once from
// the born stream (spec §4.3/§4.4). Basis is optional; nil means the
// computational (Z) basis, projecting onto basis index 0 versus index d-1
// — the "zero" and "last" basis-index convention that covers every site
// type's |0>/|1> mapping (Qubit, S=1, Qudit) without a per-site-type
// lookup table. A non-nil Basis is a caller-supplied unitary change of
// basis; the projectors are conjugated into that basis before measuring.
type Measurement struct {
	// Basis, if non-nil, is a rank-2 (d, d) unitary. The projector pair used
	// is U·P0·U^H and U·P1·U^H rather than the computational-basis pair.
	Basis *tensor.Dense
}

func (Measurement) Support() int { return 1 }

func (Measurement) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	return nil, errNotUsedDirectly("gate.Measurement.BuildOperator")
}

func (Measurement) RequiresNormalization() bool { return false }

func (g Measurement) ApplyComposite(m *mps.MPS, ramIndices []int, ctx mps.BuildContext) error {
	d := m.PhysDim(ramIndices[0])
	projectors, err := zeroAndLastProjectors(d, g.Basis)
	if err != nil {
		return err
	}
	_, err = mps.BornMeasurement(m, ramIndices[0], projectors, ctx.RNG, ctx.Cutoff, ctx.MaxDim)
	return err
}

// Reset is a composite gate: a Born-sampled single-site projection exactly
// as Measurement, followed by a conditional Pauli-X (applied iff the
// sampled outcome is 1) so the site ends deterministically in the |0>
// computational state (spec §4.3/§4.4).
type Reset struct{}

func (Reset) Support() int { return 1 }

func (Reset) BuildOperator(ramIndices []int, d int, ctx mps.BuildContext) (*tensor.Dense, error) {
	return nil, errNotUsedDirectly("gate.Reset.BuildOperator")
}

func (Reset) RequiresNormalization() bool { return false }

func (Reset) ApplyComposite(m *mps.MPS, ramIndices []int, ctx mps.BuildContext) error {
	d := m.PhysDim(ramIndices[0])
	projectors, err := zeroAndLastProjectors(d, nil)
	if err != nil {
		return err
	}
	outcome, err := mps.BornMeasurement(m, ramIndices[0], projectors, ctx.RNG, ctx.Cutoff, ctx.MaxDim)
	if err != nil {
		return err
	}
	if outcome != 1 {
		return nil
	}
	x, err := shiftOperator(d)
	if err != nil {
		return err
	}
	return mps.ApplySingleSiteOperator(m, ramIndices[0], x, ctx.Cutoff, ctx.MaxDim)
}

// zeroAndLastProjectors builds the computational-basis (index 0, index d-1)
// projector pair, or its conjugate under basis if non-nil.
func zeroAndLastProjectors(d int, basis *tensor.Dense) ([2]*tensor.Dense, error) {
	p0, err := elementaryProjector(d, 0)
	if err != nil {
		return [2]*tensor.Dense{}, err
	}
	p1, err := elementaryProjector(d, d-1)
	if err != nil {
		return [2]*tensor.Dense{}, err
	}
	if basis == nil {
		return [2]*tensor.Dense{p0, p1}, nil
	}
	shape := basis.Shape()
	if len(shape) != 2 || shape[0] != d || shape[1] != d {
		return [2]*tensor.Dense{}, errMatrixShapeMismatch("gate.zeroAndLastProjectors", []int{d, d}, shape)
	}
	rp0, err := conjugateByUnitary(basis, p0)
	if err != nil {
		return [2]*tensor.Dense{}, err
	}
	rp1, err := conjugateByUnitary(basis, p1)
	if err != nil {
		return [2]*tensor.Dense{}, err
	}
	return [2]*tensor.Dense{rp0, rp1}, nil
}

func elementaryProjector(d, index int) (*tensor.Dense, error) {
	p, err := tensor.NewDense(d, d)
	if err != nil {
		return nil, err
	}
	if err := p.Set(1, index, index); err != nil {
		return nil, err
	}
	return p, nil
}

// conjugateByUnitary returns U·P·U^H.
func conjugateByUnitary(u, p *tensor.Dense) (*tensor.Dense, error) {
	uh, err := tensor.ConjTranspose(u)
	if err != nil {
		return nil, err
	}
	up, err := tensor.MatMul(u, p)
	if err != nil {
		return nil, err
	}
	return tensor.MatMul(up, uh)
}
