package circuit

import "github.com/katalvlaran/mpscircuit/simerr"

func errLengthTooSmall(op string, l int) error {
	return simerr.InvalidArgument(op, "L must be >= 2, got %d", l)
}

func errUnsupportedRNGStream(op string, name string) error {
	return simerr.InvalidArgument(op, "stream %q is not an accepted name for stochastic operations; only %q is supported in this version", name, "ctrl")
}

func errEmptyOutcomes(op string) error {
	return simerr.InvalidArgument(op, "a stochastic operation requires at least one outcome")
}

func errProbabilitySumTooLarge(op string, sum float64) error {
	return simerr.InvalidArgument(op, "outcome probabilities sum to %.6f, which exceeds 1+eps", sum)
}

func errNegativeProbability(op string, p float64) error {
	return simerr.InvalidArgument(op, "outcome probability %.6f is negative", p)
}

func errNilGate(op string) error {
	return simerr.InvalidArgument(op, "gate must not be nil")
}

func errNilGeometry(op string) error {
	return simerr.InvalidArgument(op, "geometry must not be nil")
}
