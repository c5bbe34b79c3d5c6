package state

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mpscircuit/mps"
	"github.com/katalvlaran/mpscircuit/rng"
)

// InitSpec is the tagged sum Initialize accepts: ProductState or RandomMPS
// (spec.md §6).
type InitSpec interface {
	applyTo(s *SimulationState) error
}

type productStateKind int

const (
	kindBinaryInt productStateKind = iota
	kindBinaryDecimal
	kindBitstring
)

// ProductState initializes every site to a single computational-basis-style
// state, derived from exactly one of three representations (spec.md §6,
// §8). Use one of the constructors below; the kind is fixed at
// construction, so "exactly one of" is enforced by the type rather than by
// a runtime field-count check.
type ProductState struct {
	kind          productStateKind
	binaryInt     int
	binaryDecimal string
	bitstring     string
}

// ProductStateFromBinaryInt builds a ProductState from a non-negative
// integer whose binary expansion (MSB at site 1, LSB at site L) supplies
// the per-site bit pattern.
func ProductStateFromBinaryInt(k int) ProductState {
	return ProductState{kind: kindBinaryInt, binaryInt: k}
}

// ProductStateFromBinaryDecimal builds a ProductState from a string of the
// form "0.xxx" where xxx is a 0/1-only fractional part; the fractional
// digits form the bit pattern, left-aligned and padded with "0"s to L.
func ProductStateFromBinaryDecimal(s string) ProductState {
	return ProductState{kind: kindBinaryDecimal, binaryDecimal: s}
}

// ProductStateFromBitstring builds a ProductState directly from a 0/1
// string; shorter strings are right-padded with "0", longer strings are
// truncated to L.
func ProductStateFromBitstring(s string) ProductState {
	return ProductState{kind: kindBitstring, bitstring: s}
}

func (p ProductState) applyTo(s *SimulationState) error {
	const op = "state.SimulationState.Initialize"
	bits, err := p.resolveBits(op, s.L)
	if err != nil {
		return err
	}

	physDims := make([]int, s.L)
	basisIndices := make([]int, s.L)
	for ram := 1; ram <= s.L; ram++ {
		phy, err := s.Basis.RAMToPhy(ram)
		if err != nil {
			return err
		}
		idx, err := basisIndexForBit(op, s.SiteType, bits[phy-1])
		if err != nil {
			return err
		}
		physDims[ram-1] = s.D
		basisIndices[ram-1] = idx
	}

	built, err := mps.NewProductState(physDims, basisIndices)
	if err != nil {
		return err
	}
	s.mps = built
	return nil
}

func (p ProductState) resolveBits(op string, l int) (string, error) {
	switch p.kind {
	case kindBinaryInt:
		if p.binaryInt < 0 || p.binaryInt >= (1<<uint(l)) {
			return "", errMalformedProductState(op, fmt.Sprintf("binary_int=%d does not fit in %d bits", p.binaryInt, l))
		}
		return fmt.Sprintf("%0*b", l, p.binaryInt), nil
	case kindBinaryDecimal:
		if !strings.HasPrefix(p.binaryDecimal, "0.") {
			return "", errMalformedProductState(op, fmt.Sprintf("binary_decimal %q must look like \"0.xxx\"", p.binaryDecimal))
		}
		frac := p.binaryDecimal[2:]
		if err := validateBits(op, "binary_decimal", frac); err != nil {
			return "", err
		}
		return padOrTruncate(frac, l), nil
	case kindBitstring:
		if err := validateBits(op, "bitstring", p.bitstring); err != nil {
			return "", err
		}
		return padOrTruncate(p.bitstring, l), nil
	default:
		return "", errMalformedProductState(op, "unknown ProductState representation")
	}
}

func validateBits(op, field, s string) error {
	for _, c := range s {
		if c != '0' && c != '1' {
			return errMalformedProductState(op, fmt.Sprintf("%s %q contains a character other than 0/1", field, s))
		}
	}
	return nil
}

func padOrTruncate(s string, l int) string {
	if len(s) >= l {
		return s[:l]
	}
	return s + strings.Repeat("0", l-len(s))
}

// basisIndexForBit implements spec.md §6's site-type mapping table: Qubit
// "0"→|0⟩, "1"→|1⟩; S=1 "0"→|Up⟩(m=+1), "1"→|Dn⟩(m=−1) (ordered m=-1,0,+1
// so |Up⟩ is the top index, |Dn⟩ the bottom); Qudit "0"→state 1, "1"→state 2.
func basisIndexForBit(op string, siteType SiteType, bit byte) (int, error) {
	switch siteType {
	case Qubit:
		if bit == '0' {
			return 0, nil
		}
		return 1, nil
	case SOne:
		if bit == '0' {
			return 2, nil // |Up⟩, m=+1
		}
		return 0, nil // |Dn⟩, m=-1
	case Qudit:
		if bit == '0' {
			return 0, nil // state 1
		}
		return 1, nil // state 2
	default:
		return 0, errUnsupportedSiteType(op, siteType)
	}
}

// RandomMPS initializes the chain to a Haar-flavored random MPS capped at
// BondDim, drawing from the state_init stream (spec.md §6, §8).
type RandomMPS struct {
	BondDim int
}

func (r RandomMPS) applyTo(s *SimulationState) error {
	const op = "state.SimulationState.Initialize"
	if !s.RNG.Has(rng.StateInit) {
		return errRandomMPSRequiresStream(op)
	}
	stream, err := s.RNG.Stream(rng.StateInit)
	if err != nil {
		return err
	}
	physDims := make([]int, s.L)
	for i := range physDims {
		physDims[i] = s.D
	}
	built, err := mps.NewRandomMPS(physDims, r.BondDim, stream)
	if err != nil {
		return err
	}
	s.mps = built
	return nil
}

// Initialize sets state's MPS from spec exactly once (spec.md §6
// initialize!). Returns an error if the state was already initialized.
func Initialize(s *SimulationState, spec InitSpec) error {
	if s.mps != nil {
		return errAlreadyInitialized("state.Initialize")
	}
	return spec.applyTo(s)
}
