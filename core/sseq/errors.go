package sseq

import (
	"errors"
	"fmt"

	"bcseq/core/array"
)

var (
	// ErrEmptySequence is returned by predicates that need at least one base.
	ErrEmptySequence = errors.New("empty sequence")
	// ErrUnsupportedSymbol is matched by every *UnsupportedSymbolError.
	ErrUnsupportedSymbol = errors.New("unsupported symbol for 2-bit encoding")
)

// UnsupportedSymbolError reports a base that has no 2-bit code.
type UnsupportedSymbolError struct {
	Byte byte
	Pos  int
}

func (e *UnsupportedSymbolError) Error() string {
	return fmt.Sprintf("cannot 2-bit encode %q at position %d", e.Byte, e.Pos)
}

func (e *UnsupportedSymbolError) Unwrap() error { return ErrUnsupportedSymbol }

// ErrorKind classifies errors returned by this package and core/array.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInvalidAlphabet
	KindCapacityExceeded
	KindEmptySequence
	KindUnsupportedSymbol
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidAlphabet:
		return "invalid-alphabet"
	case KindCapacityExceeded:
		return "capacity-exceeded"
	case KindEmptySequence:
		return "empty-sequence"
	case KindUnsupportedSymbol:
		return "unsupported-symbol"
	default:
		return "other"
	}
}

// KindOf maps err to its ErrorKind. A nil error is KindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, array.ErrInvalidAlphabet):
		return KindInvalidAlphabet
	case errors.Is(err, array.ErrCapacityExceeded):
		return KindCapacityExceeded
	case errors.Is(err, ErrEmptySequence):
		return KindEmptySequence
	case errors.Is(err, ErrUnsupportedSymbol):
		return KindUnsupportedSymbol
	default:
		return KindOther
	}
}
