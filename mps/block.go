package mps

import (
	"math/cmplx"

	"github.com/katalvlaran/mpscircuit/tensor"
)

// buildBlock multiplies the contiguous run of site tensors
// mps[ramIndices[0]]..mps[ramIndices[len-1]] into one working tensor, per
// apply_op_internal step 3. For support 1 it is a copy of the single site;
// for support 2 it contracts the shared bond between the two sites. The
// result's axes are (leftBond, phys_0, [phys_1,] rightBond).
func buildBlock(m *MPS, ramIndices []int) (*tensor.Dense, error) {
	switch len(ramIndices) {
	case 1:
		site, err := m.Site(ramIndices[0])
		if err != nil {
			return nil, err
		}
		return site.Clone(), nil
	case 2:
		a, err := m.Site(ramIndices[0])
		if err != nil {
			return nil, err
		}
		b, err := m.Site(ramIndices[1])
		if err != nil {
			return nil, err
		}
		// a's right bond (axis 2) meets b's left bond (axis 0).
		return tensor.Contract(a, b, [][2]int{{2, 0}})
	default:
		return nil, errSupportMismatch("mps.buildBlock", 2, len(ramIndices))
	}
}

// applyOperatorToBlock contracts an operator tensor into a block built by
// buildBlock, stripping the operator's "primed" (input) indices and
// leaving the operator's "unprimed" (output) indices in their place.
// The operator's shape is (d_out_0[, d_out_1], d_in_0[, d_in_1]) — output
// axes first, input axes second, matching the convention documented on the
// Gate interface's BuildOperator method.
func applyOperatorToBlock(block, op *tensor.Dense, support int) (*tensor.Dense, error) {
	pairs := make([][2]int, support)
	for k := 0; k < support; k++ {
		// op's input axes start at index `support`; block's phys axes start at index 1.
		pairs[k] = [2]int{support + k, k + 1}
	}
	contracted, err := tensor.Contract(op, block, pairs)
	if err != nil {
		return nil, err
	}
	// contracted axes: (d_out_0[, d_out_1], left, right) — reorder to
	// (left, d_out_0[, d_out_1], right) to match the block layout.
	rank := len(contracted.Shape())
	left, right := rank-2, rank-1
	perm := make([]int, 0, rank)
	perm = append(perm, left)
	for k := 0; k < support; k++ {
		perm = append(perm, k)
	}
	perm = append(perm, right)
	return permuteAxes(contracted, perm)
}

// permuteAxes returns a copy of t with axes reordered according to perm
// (perm[i] names the source axis that becomes axis i of the result).
func permuteAxes(t *tensor.Dense, perm []int) (*tensor.Dense, error) {
	shape := t.Shape()
	outShape := make([]int, len(perm))
	for i, p := range perm {
		outShape[i] = shape[p]
	}
	out, err := tensor.NewDense(outShape...)
	if err != nil {
		return nil, err
	}
	srcIdx := make([]int, len(shape))
	dstIdx := make([]int, len(perm))
	var walk func(axis int) error
	walk = func(axis int) error {
		if axis == len(outShape) {
			v, err := t.At(srcIdx...)
			if err != nil {
				return err
			}
			return out.Set(v, dstIdx...)
		}
		for i := 0; i < outShape[axis]; i++ {
			dstIdx[axis] = i
			srcIdx[perm[axis]] = i
			if err := walk(axis + 1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0); err != nil {
		return nil, err
	}
	return out, nil
}

// blockNormSquared returns the Frobenius norm squared of a block, i.e.
// sum |x|^2 over all entries — used for the single-site Born denominator
// and for post-measurement renormalization checks.
func blockNormSquared(t *tensor.Dense) float64 {
	var sum float64
	for _, v := range t.RawData() {
		sum += real(v * cmplx.Conj(v))
	}
	return sum
}
