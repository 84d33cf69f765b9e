// core/array/array.go
package array

import (
	"bytes"
	"fmt"
	"iter"
)

// MaxCapacity bounds every Alphabet's capacity; it sizes the backing array.
const MaxCapacity = 32

// Alphabet supplies the contents policy of an Array: which bytes may be
// stored and how many. Implementations are zero-size types.
type Alphabet interface {
	// Capacity is the maximum number of symbols. Values above MaxCapacity
	// are clamped.
	Capacity() int
	// Valid reports whether b may be stored.
	Valid(b byte) bool
	// Expected describes the accepted contents for error messages.
	Expected() string
}

// Array is a fixed-capacity byte sequence whose every byte is accepted by A.
//
// It is a plain value: assignment copies it, == compares contents and
// length, and it can be used as a map key. Bytes past Len are always zero.
type Array[A Alphabet] struct {
	n   uint8
	buf [MaxCapacity]byte
}

func capacity[A Alphabet]() int {
	var a A
	if c := a.Capacity(); c < MaxCapacity {
		return c
	}
	return MaxCapacity
}

// validate checks b as if it were stored starting at offset.
func validate[A Alphabet](b []byte, offset int) error {
	var a A
	for i, c := range b {
		if !a.Valid(c) {
			return &InvalidAlphabetError{Byte: c, Pos: offset + i, Expected: a.Expected()}
		}
	}
	return nil
}

// New returns an empty Array.
func New[A Alphabet]() Array[A] { return Array[A]{} }

// FromBytes copies b into a new Array after validating length and contents.
// Length is checked first.
func FromBytes[A Alphabet](b []byte) (Array[A], error) {
	var a Array[A]
	if err := a.Push(b); err != nil {
		return Array[A]{}, err
	}
	return a, nil
}

// FromString is FromBytes for a string.
func FromString[A Alphabet](s string) (Array[A], error) {
	return FromBytes[A]([]byte(s))
}

// FromIter builds an Array from a byte iterator, validating each byte as it
// arrives. Iteration stops at the first failure.
func FromIter[A Alphabet](seq iter.Seq[byte]) (Array[A], error) {
	var (
		a     Array[A]
		alpha A
		err   error
	)
	limit := capacity[A]()
	n := 0
	for c := range seq {
		if n >= limit {
			err = &CapacityExceededError{Capacity: limit, Len: n + 1}
			break
		}
		if !alpha.Valid(c) {
			err = &InvalidAlphabetError{Byte: c, Pos: n, Expected: alpha.Expected()}
			break
		}
		a.buf[n] = c
		n++
	}
	if err != nil {
		return Array[A]{}, err
	}
	a.n = uint8(n)
	return a, nil
}

// Push appends b. Either all of b is appended or a is left unchanged.
func (a *Array[A]) Push(b []byte) error {
	n := int(a.n)
	if limit := capacity[A](); n+len(b) > limit {
		return &CapacityExceededError{Capacity: limit, Len: n + len(b)}
	}
	if err := validate[A](b, n); err != nil {
		return err
	}
	copy(a.buf[n:], b)
	a.n = uint8(n + len(b))
	return nil
}

// Len returns the number of stored symbols.
func (a Array[A]) Len() int { return int(a.n) }

// Cap returns the capacity fixed by A.
func (a Array[A]) Cap() int { return capacity[A]() }

func (a Array[A]) IsEmpty() bool { return a.n == 0 }

// At returns the symbol at i. It panics if i is out of range.
func (a Array[A]) At(i int) byte {
	if i < 0 || i >= int(a.n) {
		panic(fmt.Sprintf("array: index %d out of range [0,%d)", i, a.n))
	}
	return a.buf[i]
}

// Set replaces the symbol at i with a validated byte. It panics if i is out
// of range.
func (a *Array[A]) Set(i int, c byte) error {
	if i < 0 || i >= int(a.n) {
		panic(fmt.Sprintf("array: index %d out of range [0,%d)", i, a.n))
	}
	var alpha A
	if !alpha.Valid(c) {
		return &InvalidAlphabetError{Byte: c, Pos: i, Expected: alpha.Expected()}
	}
	a.buf[i] = c
	return nil
}

// Bytes returns the stored symbols. The slice does not alias a.
func (a Array[A]) Bytes() []byte { return a.AppendTo(nil) }

// AppendTo appends the stored symbols to dst.
func (a Array[A]) AppendTo(dst []byte) []byte { return append(dst, a.buf[:a.n]...) }

// MutableBytes exposes the stored symbols for in-place replacement.
// Writes must keep every byte inside the alphabet.
func (a *Array[A]) MutableBytes() []byte { return a.buf[:a.n:a.n] }

// Compare orders arrays lexicographically by their bytes; a strict prefix
// orders first.
func (a Array[A]) Compare(b Array[A]) int { return bytes.Compare(a.buf[:a.n], b.buf[:b.n]) }

func (a Array[A]) String() string { return string(a.buf[:a.n]) }

/* ---------------------------- encodings ---------------------------- */

// MarshalText returns the symbols verbatim.
func (a Array[A]) MarshalText() ([]byte, error) { return a.AppendTo(nil), nil }

// UnmarshalText validates text exactly like FromBytes.
func (a *Array[A]) UnmarshalText(text []byte) error {
	v, err := FromBytes[A](text)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// AppendBinary appends the binary form: one length byte, then the symbols.
func (a Array[A]) AppendBinary(dst []byte) ([]byte, error) {
	dst = append(dst, a.n)
	return append(dst, a.buf[:a.n]...), nil
}

func (a Array[A]) MarshalBinary() ([]byte, error) {
	return a.AppendBinary(make([]byte, 0, 1+int(a.n)))
}

// UnmarshalBinary decodes the form written by MarshalBinary. The length
// prefix must match the payload and the payload must validate.
func (a *Array[A]) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: missing length prefix", ErrMalformedBinary)
	}
	if n := int(data[0]); n != len(data)-1 {
		return fmt.Errorf("%w: length prefix %d, payload %d bytes", ErrMalformedBinary, n, len(data)-1)
	}
	v, err := FromBytes[A](data[1:])
	if err != nil {
		return err
	}
	*a = v
	return nil
}
