package mps

import "github.com/katalvlaran/mpscircuit/simerr"

func errSupportMismatch(op string, want, got int) error {
	return simerr.InvalidArgument(op, "gate requires %d sites, got %d", want, got)
}

func errSiteOutOfRange(op string, site, length int) error {
	return simerr.InvalidArgument(op, "site %d out of range for chain of length %d", site, length)
}

func errOperatorIndexNotFound(op string, axis int) error {
	return simerr.Internal(op, "operator axis %d does not correspond to any site in its own index list", axis)
}

func errBornTotalProbabilityTooSmall(op string, total float64) error {
	return simerr.NumericalFailure(op, "total Born probability %.3e across permitted sectors is below the numerical floor", total)
}
