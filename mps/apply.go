package mps

import (
	"sort"

	"github.com/katalvlaran/mpscircuit/basis"
	"github.com/katalvlaran/mpscircuit/geometry"
	"github.com/katalvlaran/mpscircuit/rng"
	"github.com/katalvlaran/mpscircuit/simerr"
	"github.com/katalvlaran/mpscircuit/tensor"
)

// BuildContext is everything a Gate implementation may consult while
// constructing its operator: the RNG registry (for HaarRandom's `haar`
// stream and SpinSectorMeasurement's `born` stream) and read-only access to
// the current MPS (for two-site random gates that need Born-rule branch
// probabilities). Gates MUST treat MPS as read-only; Expectation already
// operates on an internal clone to make that safe.
type BuildContext struct {
	RNG *rng.Registry
	MPS *MPS
	// Cutoff and MaxDim mirror the engine's own truncation parameters, for
	// CompositeGate implementations that must issue their own internal
	// single-site updates (e.g. Reset's conditional Pauli-X).
	Cutoff float64
	MaxDim int
}

// Gate is the contract the Apply Engine requires of any gate
// implementation (spec §4.3). BuildOperator receives the RAM indices the
// operator will act on (already translated from physical sites by the
// caller) and must return a tensor shaped (d_out_0[, d_out_1], d_in_0[,
// d_in_1]) — output ("unprimed") axes first, input ("primed") axes second,
// matching apply_op_internal's "strip the primed indices" step.
type Gate interface {
	// Support returns 1 or 2: how many sites this gate acts on.
	Support() int
	// BuildOperator constructs the operator tensor for the given RAM
	// indices and local dimension d.
	BuildOperator(ramIndices []int, d int, ctx BuildContext) (*tensor.Dense, error)
	// RequiresNormalization reports whether the engine must renormalize
	// the MPS after this gate is applied (true for Projection,
	// SpinSectorProjection, SpinSectorMeasurement; false for unitaries).
	RequiresNormalization() bool
}

// CompositeGate is implemented by gates the Apply Engine cannot express as
// a single BuildOperator call — Measurement and Reset, which are each
// translated into a per-site Born-sampled projection (plus, for Reset, a
// conditional Pauli-X) rather than one fixed operator.
type CompositeGate interface {
	Gate
	// ApplyComposite performs the gate's full effect directly against the
	// MPS at the given (already RAM-translated) site, using ctx for RNG
	// draws.
	ApplyComposite(m *MPS, ramIndices []int, ctx BuildContext) error
}

// Apply is the Apply Engine's top-level entry point (spec §4.4): it
// dispatches on the geometry's kind, translating physical sites to RAM
// indices and invoking the gate once per element for compound geometries.
func Apply(m *MPS, basisMap *basis.Mapping, bc basis.BoundaryCondition, l int, cutoff float64, maxDim int, streams *rng.Registry, d int, g Gate, geom geometry.Geometry) error {
	ctx := BuildContext{RNG: streams, MPS: m, Cutoff: cutoff, MaxDim: maxDim}

	if geometry.IsCompound(geom) {
		compound, ok := geom.(geometry.Compound)
		if !ok {
			return simerr.Internal("mps.Apply", "geometry reports IsCompound but does not implement geometry.Compound")
		}
		elements, err := compound.Elements(l, bc)
		if err != nil {
			return err
		}
		for _, sites := range elements {
			if err := applySingleElement(m, basisMap, d, g, sites, cutoff, maxDim, ctx); err != nil {
				return err
			}
		}
		return nil
	}

	elements, err := geom.Elements(l, bc)
	if err != nil {
		return err
	}
	if len(elements) != 1 {
		return simerr.Internal("mps.Apply", "non-compound geometry produced %d element groups, want 1", len(elements))
	}
	if err := applySingleElement(m, basisMap, d, g, elements[0], cutoff, maxDim, ctx); err != nil {
		return err
	}

	if staircase, ok := geom.(geometry.Staircase); ok {
		if err := staircase.Advance(l, bc); err != nil {
			return err
		}
	}
	return nil
}

// applySingleElement is `_apply_single` (spec §4.4): validate support,
// translate physical sites to RAM indices, build and apply the operator
// (or dispatch to a CompositeGate), then normalize if required.
func applySingleElement(m *MPS, basisMap *basis.Mapping, d int, g Gate, physicalSites []int, cutoff float64, maxDim int, ctx BuildContext) error {
	if len(physicalSites) != g.Support() {
		return errSupportMismatch("mps.applySingleElement", g.Support(), len(physicalSites))
	}
	ramIndices := make([]int, len(physicalSites))
	for i, phy := range physicalSites {
		ram, err := basisMap.PhyToRAM(phy)
		if err != nil {
			return err
		}
		ramIndices[i] = ram - 1 // 0-based internally
	}
	sort.Ints(ramIndices)

	if composite, ok := g.(CompositeGate); ok {
		if err := composite.ApplyComposite(m, ramIndices, ctx); err != nil {
			return err
		}
	} else {
		op, err := g.BuildOperator(ramIndices, d, ctx)
		if err != nil {
			return err
		}
		if err := applyOpInternal(m, op, ramIndices, cutoff, maxDim); err != nil {
			return err
		}
	}

	if g.RequiresNormalization() {
		return m.Normalize()
	}
	return nil
}

// applyOpInternal is apply_op_internal (spec §4.4): gauge the chain to the
// leftmost touched RAM position, contract the operator into the
// corresponding block, and either write the block straight back
// (single-site) or SVD-truncate-reconstruct it (two-site).
func applyOpInternal(m *MPS, op *tensor.Dense, ramIndices []int, cutoff float64, maxDim int) error {
	support := len(ramIndices)
	if op.Rank() != 2*support {
		return errOperatorIndexNotFound("mps.applyOpInternal", op.Rank())
	}
	if err := m.Gauge(ramIndices[0]); err != nil {
		return err
	}
	block, err := buildBlock(m, ramIndices)
	if err != nil {
		return err
	}
	opBlock, err := applyOperatorToBlock(block, op, support)
	if err != nil {
		return err
	}

	switch support {
	case 1:
		m.sites[ramIndices[0]] = opBlock
		return nil
	case 2:
		return m.svdReconstructTwoSite(ramIndices[0], ramIndices[1], opBlock, cutoff, maxDim)
	default:
		return errSupportMismatch("mps.applyOpInternal", 2, support)
	}
}

// svdReconstructTwoSite is apply_op_internal step 5: reshape the updated
// two-site block (left, p1, p2, right) into a matrix, SVD-truncate it with
// the given cutoff/maxdim, and write the two resulting tensors back at
// ramLeft and ramRight.
func (m *MPS) svdReconstructTwoSite(ramLeft, ramRight int, block *tensor.Dense, cutoff float64, maxDim int) error {
	shape := block.Shape() // left, p1, p2, right
	left, p1, p2, right := shape[0], shape[1], shape[2], shape[3]

	mat, err := block.Reshape(left*p1, p2*right)
	if err != nil {
		return err
	}
	var res *tensor.SVDResult
	if left*p1 >= p2*right {
		res, err = tensor.SVD(mat, tensor.WithCutoff(cutoff), tensor.WithMaxDim(maxDim))
	} else {
		// tensor.SVD needs rows >= cols: factor mat^H = U' S V'^H, so mat = V' S U'^H.
		var matH *tensor.Dense
		if matH, err = tensor.ConjTranspose(mat); err != nil {
			return err
		}
		if res, err = tensor.SVD(matH, tensor.WithCutoff(cutoff), tensor.WithMaxDim(maxDim)); err == nil {
			res = &tensor.SVDResult{U: res.V, S: res.S, V: res.U}
		}
	}
	if err != nil {
		return err
	}
	bond := len(res.S)

	leftSite, err := res.U.Reshape(left, p1, bond)
	if err != nil {
		return err
	}

	sigma, err := diag(res.S)
	if err != nil {
		return err
	}
	vh, err := tensor.ConjTranspose(res.V)
	if err != nil {
		return err
	}
	sv, err := tensor.MatMul(sigma, vh)
	if err != nil {
		return err
	}
	rightSite, err := sv.Reshape(bond, p2, right)
	if err != nil {
		return err
	}

	m.sites[ramLeft] = leftSite
	m.sites[ramRight] = rightSite
	m.orthoCenter = ramRight
	return nil
}

func diag(values []float64) (*tensor.Dense, error) {
	n := len(values)
	if n == 0 {
		n = 1
	}
	d, err := tensor.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if err := d.Set(complex(v, 0), i, i); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Normalize rescales the chain so its total norm is 1, via the orthogonal
// center's Frobenius norm (valid immediately after Gauge or after a
// two-site update, both of which leave a well-defined center).
func (m *MPS) Normalize() error {
	norm, err := m.Norm()
	if err != nil {
		return err
	}
	if norm == 0 {
		return simerr.NumericalFailure("mps.MPS.Normalize", "chain norm is zero, cannot renormalize")
	}
	center := m.orthoCenter
	if center < 0 {
		if err := m.Gauge(0); err != nil {
			return err
		}
		center = 0
	}
	site := m.sites[center]
	scaled := site.Clone()
	data := scaled.RawData()
	for i, v := range data {
		data[i] = v / complex(norm, 0)
	}
	m.sites[center] = scaled
	return nil
}

// Norm returns the current Frobenius norm of the orthogonality center
// (gauging to RAM position 0 first if the chain has no known center).
func (m *MPS) Norm() (float64, error) {
	center := m.orthoCenter
	if center < 0 {
		if err := m.Gauge(0); err != nil {
			return 0, err
		}
		center = m.orthoCenter
	}
	return tensor.FrobeniusNorm(m.sites[center]), nil
}
