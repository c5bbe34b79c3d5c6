package state

import "github.com/katalvlaran/mpscircuit/simerr"

func errUnsupportedSiteType(op string, siteType SiteType) error {
	return simerr.Unsupported(op, "site type %q is not one of Qubit, S=1, Qudit", siteType)
}

func errSiteTypeDimMismatch(op string, siteType SiteType, want, got int) error {
	return simerr.InvalidArgument(op, "site type %q requires local_dim=%d, got %d", siteType, want, got)
}

func errQuditRequiresLocalDim(op string) error {
	return simerr.InvalidArgument(op, "site type \"Qudit\" requires an explicit local_dim >= 2")
}

func errMalformedProductState(op, reason string) error {
	return simerr.InvalidArgument(op, "malformed ProductState: %s", reason)
}

func errNotInitialized(op string) error {
	return simerr.InvalidArgument(op, "SimulationState has not been initialized")
}

func errAlreadyInitialized(op string) error {
	return simerr.InvalidArgument(op, "SimulationState has already been initialized")
}

func errEmptyObservableName(op string) error {
	return simerr.InvalidArgument(op, "observable name must not be empty")
}

func errNilObservable(op string) error {
	return simerr.InvalidArgument(op, "observable spec must not be nil")
}

func errDuplicateObservable(op, name string) error {
	return simerr.InvalidArgument(op, "observable %q is already tracked; names must be unique", name)
}

func errUnknownObservable(op, name string) error {
	return simerr.InvalidArgument(op, "observable %q was never tracked", name)
}

func errRandomMPSRequiresStream(op string) error {
	return simerr.InvalidArgument(op, "RandomMPS initialization requires a registered %q RNG stream", "state_init")
}

func errStreamNotSeeded(op, name string) error {
	return simerr.InvalidArgument(op, "RNG stream %q was never seeded into this SimulationState's registry", name)
}

func errEmptyOutcomes(op string) error {
	return simerr.InvalidArgument(op, "a stochastic operation requires at least one outcome")
}

func errNegativeProbability(op string, p float64) error {
	return simerr.InvalidArgument(op, "outcome probability %.6f is negative", p)
}

func errProbabilitySumTooLarge(op string, sum float64) error {
	return simerr.InvalidArgument(op, "outcome probabilities sum to %.6f, which exceeds 1+eps", sum)
}

func errNilGate(op string) error {
	return simerr.InvalidArgument(op, "gate must not be nil")
}

func errNilGeometry(op string) error {
	return simerr.InvalidArgument(op, "geometry must not be nil")
}
