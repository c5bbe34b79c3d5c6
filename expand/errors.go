package expand

import "github.com/katalvlaran/mpscircuit/simerr"

func errUnsupportedGeometryKind(op string, kind int) error {
	return simerr.InvalidArgument(op, "geometry kind %d is not one of the closed set this version understands", kind)
}

func errNilCircuit(op string) error {
	return simerr.InvalidArgument(op, "circuit must not be nil")
}
