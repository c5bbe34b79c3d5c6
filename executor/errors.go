package executor

import "github.com/katalvlaran/mpscircuit/simerr"

func errTooFewCircuits(op string, n int) error {
	return simerr.InvalidArgument(op, "n_circuits must be >= 1, got %d", n)
}

func errNilState(op string) error {
	return simerr.InvalidArgument(op, "state must not be nil")
}

func errNilCircuit(op string) error {
	return simerr.InvalidArgument(op, "circuit must not be nil")
}
