package array

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlphabet is matched by every *InvalidAlphabetError.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
	// ErrCapacityExceeded is matched by every *CapacityExceededError.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrMalformedBinary is returned when a binary form cannot be decoded.
	ErrMalformedBinary = errors.New("malformed binary sequence")
)

// InvalidAlphabetError reports the first byte rejected by an alphabet.
type InvalidAlphabetError struct {
	Byte     byte
	Pos      int // 0-based position in the resulting sequence
	Expected string
}

func (e *InvalidAlphabetError) Error() string {
	return fmt.Sprintf("invalid byte %q at position %d; expected %s", e.Byte, e.Pos, e.Expected)
}

func (e *InvalidAlphabetError) Unwrap() error { return ErrInvalidAlphabet }

// CapacityExceededError reports an attempt to hold more than Capacity symbols.
// Len is the length that was requested; for iterator input it is the length
// at which the limit was hit.
type CapacityExceededError struct {
	Capacity int
	Len      int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("length %d exceeds capacity %d", e.Len, e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }
