// Package simerr defines the single shared error-kind enum used across every
// package in this module (rng, basis, geometry, tensor, mps, gate,
// observable, state, circuit, expand, executor).
//
// Design contract (mirrors the teacher's sentinel-plus-%w-wrapping
// discipline, unified behind one enum instead of one sentinel family per
// package):
//   - Callers branch on failure classification with errors.Is against the
//     four kind sentinels (ErrInvalidArgument, ErrUnsupported,
//     ErrNumericalFailure, ErrInternal), never on message text.
//   - Constructors (InvalidArgument, Unsupported, NumericalFailure,
//     Internal) build an *Error; Wrap attaches an optional cause, and
//     Unwrap returns both the kind sentinel and the cause so errors.Is/As
//     finds either.
//   - Algorithms never panic on user-triggered error conditions; panics are
//     reserved for programmer errors (nil receivers, malformed internal
//     invariants) exactly as in the teacher's option constructors.
package simerr

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// KindInvalidArgument marks bad caller input: unknown boundary
	// condition, odd L with periodic BC, malformed ProductState, support
	// mismatch, probabilities summing above 1+eps, n_circuits < 1, unknown
	// recording preset, out-of-range staircase/pointer position, and so on.
	KindInvalidArgument Kind = iota
	// KindUnsupported marks a site type or a compound/composite
	// combination the engine does not implement.
	KindUnsupported
	// KindNumericalFailure marks a Born measurement whose total
	// probability across all permitted sectors falls below 1e-14.
	KindNumericalFailure
	// KindInternal marks a bug in gate construction (an operator index not
	// found among the state's site indices), never a user error.
	KindInternal
)

// String renders the kind for log/error text.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindUnsupported:
		return "Unsupported"
	case KindNumericalFailure:
		return "NumericalFailure"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Sentinel errors. errors.Is(err, simerr.ErrInvalidArgument) is the
// intended way for a caller to classify any error this module returns.
var (
	ErrInvalidArgument   = errors.New("simerr: invalid argument")
	ErrUnsupported       = errors.New("simerr: unsupported")
	ErrNumericalFailure  = errors.New("simerr: numerical failure")
	ErrInternal          = errors.New("simerr: internal error")
)

func sentinelFor(k Kind) error {
	switch k {
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindUnsupported:
		return ErrUnsupported
	case KindNumericalFailure:
		return ErrNumericalFailure
	default:
		return ErrInternal
	}
}

// Error is the concrete error type returned by every package in this
// module. It carries a Kind, the reporting component, a human-readable
// message (Error prefixes it with the component), and an optional wrapped
// cause.
type Error struct {
	kind    Kind
	op      string // reporting component/method, e.g. "geometry.SitesFor"
	message string
	cause   error
}

// Kind reports the classification of this error.
func (e *Error) Kind() Kind { return e.kind }

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.op, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.op, e.message)
}

// Unwrap exposes both the kind sentinel and the wrapped cause to
// errors.Is/errors.As via a two-error chain: the sentinel is checked first
// by errors.Is walking e, then e.cause if present.
func (e *Error) Unwrap() []error {
	sentinel := sentinelFor(e.kind)
	if e.cause != nil {
		return []error{sentinel, e.cause}
	}
	return []error{sentinel}
}

func newError(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{kind: kind, op: op, message: fmt.Sprintf(format, args...)}
}

// InvalidArgument builds a KindInvalidArgument error attributed to op.
func InvalidArgument(op, format string, args ...interface{}) *Error {
	return newError(KindInvalidArgument, op, format, args...)
}

// Unsupported builds a KindUnsupported error attributed to op.
func Unsupported(op, format string, args ...interface{}) *Error {
	return newError(KindUnsupported, op, format, args...)
}

// NumericalFailure builds a KindNumericalFailure error attributed to op.
func NumericalFailure(op, format string, args ...interface{}) *Error {
	return newError(KindNumericalFailure, op, format, args...)
}

// Internal builds a KindInternal error attributed to op.
func Internal(op, format string, args ...interface{}) *Error {
	return newError(KindInternal, op, format, args...)
}

// Wrap attaches cause to an existing *Error, preserving its kind and op.
func (e *Error) Wrap(cause error) *Error {
	e.cause = cause
	return e
}
