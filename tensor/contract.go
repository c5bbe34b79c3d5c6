package tensor

// Contract multiplies two tensors and sums over the axis pairs given in
// pairs (each pair is {axisInA, axisInB}), in the spirit of the reference
// MPS code's tensor.Contract(dst, a, b, [][2]int{...}) calls. The result's
// axes are the uncontracted ("free") axes of a, in their original order,
// followed by the free axes of b, in their original order — the same
// convention physics tensor-network code uses when contracting one link at
// a time (see e.g. the reference mps.go's lExpression, which documents the
// output axis order of each contraction it performs).
func Contract(a, b *Dense, pairs [][2]int) (*Dense, error) {
	aShape, bShape := a.Shape(), b.Shape()

	contractedA := make(map[int]bool, len(pairs))
	contractedB := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		axisA, axisB := p[0], p[1]
		if axisA < 0 || axisA >= len(aShape) || axisB < 0 || axisB >= len(bShape) {
			return nil, errDimensionMismatch("tensor.Contract", "axis pair %v out of range for shapes %v, %v", p, aShape, bShape)
		}
		if aShape[axisA] != bShape[axisB] {
			return nil, errDimensionMismatch("tensor.Contract", "contracted axes differ in size: a[%d]=%d vs b[%d]=%d", axisA, aShape[axisA], axisB, bShape[axisB])
		}
		contractedA[axisA] = true
		contractedB[axisB] = true
	}

	var freeA, freeB []int
	for i := range aShape {
		if !contractedA[i] {
			freeA = append(freeA, i)
		}
	}
	for i := range bShape {
		if !contractedB[i] {
			freeB = append(freeB, i)
		}
	}

	outShape := make([]int, 0, len(freeA)+len(freeB))
	for _, ax := range freeA {
		outShape = append(outShape, aShape[ax])
	}
	for _, ax := range freeB {
		outShape = append(outShape, bShape[ax])
	}
	scalar := len(outShape) == 0
	if scalar {
		outShape = []int{1}
	}
	out, err := NewDense(outShape...)
	if err != nil {
		return nil, err
	}

	contractedShape := make([]int, len(pairs))
	for i, p := range pairs {
		contractedShape[i] = aShape[p[0]]
	}
	freeAShape := selectShape(aShape, freeA)
	freeBShape := selectShape(bShape, freeB)

	aIdx := make([]int, len(aShape))
	bIdx := make([]int, len(bShape))

	var rangeErr error
	iterateIndices(freeAShape, func(fa []int) {
		for k, ax := range freeA {
			aIdx[ax] = fa[k]
		}
		iterateIndices(freeBShape, func(fb []int) {
			for k, ax := range freeB {
				bIdx[ax] = fb[k]
			}
			var sum complex128
			iterateIndices(contractedShape, func(c []int) {
				for k, p := range pairs {
					aIdx[p[0]] = c[k]
					bIdx[p[1]] = c[k]
				}
				av, err := a.At(aIdx...)
				if err != nil {
					rangeErr = err
					return
				}
				bv, err := b.At(bIdx...)
				if err != nil {
					rangeErr = err
					return
				}
				sum += av * bv
			})
			outIdx := make([]int, 0, len(fa)+len(fb))
			if scalar {
				outIdx = []int{0}
			} else {
				outIdx = append(outIdx, fa...)
				outIdx = append(outIdx, fb...)
			}
			if err := out.Set(sum, outIdx...); err != nil {
				rangeErr = err
			}
		})
	})
	if rangeErr != nil {
		return nil, rangeErr
	}
	return out, nil
}

func selectShape(shape []int, axes []int) []int {
	out := make([]int, len(axes))
	for i, ax := range axes {
		out[i] = shape[ax]
	}
	return out
}

// iterateIndices walks every multi-index of an array with the given shape
// in row-major (odometer) order, calling fn once per index. A shape of
// length 0 calls fn once with a nil index, representing "no free axes".
func iterateIndices(shape []int, fn func(idx []int)) {
	if len(shape) == 0 {
		fn(nil)
		return
	}
	idx := make([]int, len(shape))
	for {
		fn(idx)
		pos := len(shape) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < shape[pos] {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}
}
