package tensor

// Dense is a flat, row-major, n-dimensional array of complex128 values.
// Shape() reports the extent of each axis; strides are computed once at
// construction so At/Set are O(rank) instead of O(size).
type Dense struct {
	shape   []int
	strides []int
	data    []complex128
}

// NewDense allocates a zero-filled tensor with the given shape.
// Stage 1 (Validate): every dimension must be > 0.
// Stage 2 (Prepare): compute row-major strides and allocate backing data.
func NewDense(shape ...int) (*Dense, error) {
	for _, s := range shape {
		if s <= 0 {
			return nil, errBadShape("tensor.NewDense", shape)
		}
	}
	shapeCopy := append([]int(nil), shape...)
	strides := stridesFor(shapeCopy)
	size := 1
	for _, s := range shapeCopy {
		size *= s
	}
	return &Dense{shape: shapeCopy, strides: strides, data: make([]complex128, size)}, nil
}

func stridesFor(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// Shape returns the tensor's extent along every axis.
func (d *Dense) Shape() []int { return append([]int(nil), d.shape...) }

// Rank returns the number of axes.
func (d *Dense) Rank() int { return len(d.shape) }

// Size returns the total number of elements.
func (d *Dense) Size() int { return len(d.data) }

func (d *Dense) flatIndex(op string, idx []int) (int, error) {
	if len(idx) != len(d.shape) {
		return 0, errRankMismatch(op, len(d.shape), len(idx))
	}
	flat := 0
	for axis, i := range idx {
		if i < 0 || i >= d.shape[axis] {
			return 0, errOutOfRange(op, idx, d.shape)
		}
		flat += i * d.strides[axis]
	}
	return flat, nil
}

// At retrieves the element at the given multi-index (0-based per axis).
func (d *Dense) At(idx ...int) (complex128, error) {
	flat, err := d.flatIndex("tensor.Dense.At", idx)
	if err != nil {
		return 0, err
	}
	return d.data[flat], nil
}

// Set assigns v at the given multi-index.
func (d *Dense) Set(v complex128, idx ...int) error {
	flat, err := d.flatIndex("tensor.Dense.Set", idx)
	if err != nil {
		return err
	}
	d.data[flat] = v
	return nil
}

// Clone returns a deep, independent copy.
func (d *Dense) Clone() *Dense {
	out := &Dense{
		shape:   append([]int(nil), d.shape...),
		strides: append([]int(nil), d.strides...),
		data:    append([]complex128(nil), d.data...),
	}
	return out
}

// Reshape returns a new Dense with the same elements (row-major order
// preserved) under a different shape. The product of the new shape must
// equal Size().
func (d *Dense) Reshape(shape ...int) (*Dense, error) {
	size := 1
	for _, s := range shape {
		if s <= 0 {
			return nil, errBadShape("tensor.Dense.Reshape", shape)
		}
		size *= s
	}
	if size != len(d.data) {
		return nil, errDimensionMismatch("tensor.Dense.Reshape", "cannot reshape tensor of size %d into shape %v (size %d)", len(d.data), shape, size)
	}
	shapeCopy := append([]int(nil), shape...)
	return &Dense{shape: shapeCopy, strides: stridesFor(shapeCopy), data: append([]complex128(nil), d.data...)}, nil
}

// RawData exposes the flat backing slice directly, for the linear-algebra
// routines in this package that operate on rank-2 tensors as plain
// row-major matrices. Callers outside this package should prefer At/Set.
func (d *Dense) RawData() []complex128 { return d.data }
