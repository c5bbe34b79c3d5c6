package tensor

import "github.com/katalvlaran/mpscircuit/simerr"

func errBadShape(op string, shape []int) error {
	return simerr.InvalidArgument(op, "invalid shape %v: every dimension must be > 0", shape)
}

func errOutOfRange(op string, idx, shape []int) error {
	return simerr.InvalidArgument(op, "index %v out of range for shape %v", idx, shape)
}

func errRankMismatch(op string, want, got int) error {
	return simerr.InvalidArgument(op, "expected rank %d, got %d", want, got)
}

func errDimensionMismatch(op, format string, args ...interface{}) error {
	return simerr.InvalidArgument(op, format, args...)
}

func errSVDNotConverged(op string, sweeps int) error {
	return simerr.Internal(op, "one-sided Jacobi SVD failed to converge within %d sweeps", sweeps)
}

func errEigenNotConverged(op string, sweeps int) error {
	return simerr.Internal(op, "Jacobi eigendecomposition failed to converge within %d sweeps", sweeps)
}
