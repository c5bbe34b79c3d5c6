package gate

import "github.com/katalvlaran/mpscircuit/simerr"

func errMatrixRequired(op string) error {
	return simerr.InvalidArgument(op, "an opaque projector/unitary matrix must be supplied, got nil")
}

func errMatrixShapeMismatch(op string, want []int, got []int) error {
	return simerr.InvalidArgument(op, "matrix must have shape %v, got %v", want, got)
}

func errProjectorCountMismatch(op string, got int) error {
	return simerr.InvalidArgument(op, "at least one projector is required, got %d", got)
}

func errNotUsedDirectly(op string) error {
	return simerr.Internal(op, "composite gate's BuildOperator is never called by the Apply Engine; ApplyComposite is")
}
