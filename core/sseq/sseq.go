// core/sseq/sseq.go
package sseq

import (
	"iter"
	"slices"

	"bcseq/core/array"
)

// MaxLen is the capacity of an SSeq.
const MaxLen = 23

// Max2BitLen is the longest sequence Encode2Bit can pack into a uint32.
const Max2BitLen = 16

/* ------------------------- ACGTN lookup table -------------------------- */

var acgtn [256]bool

// complement of each storable base; N pairs with N
var complement [256]byte

func init() {
	for _, c := range []byte("ACGTN") {
		acgtn[c] = true
	}
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['N'] = 'N'
}

// Contents is the alphabet of an SSeq: uppercase A, C, G, T and N, up to
// MaxLen bases.
type Contents struct{}

func (Contents) Capacity() int     { return MaxLen }
func (Contents) Valid(b byte) bool { return acgtn[b] }
func (Contents) Expected() string  { return "an [ACGTN]* string" }

// SSeq is a short DNA sequence (barcode or UMI) of at most MaxLen bases,
// guaranteed to contain only ACGTN. It is a comparable value type.
type SSeq struct {
	array.Array[Contents]
}

// New returns an empty SSeq.
func New() SSeq { return SSeq{} }

// FromBytes validates b and copies it into an SSeq.
func FromBytes(b []byte) (SSeq, error) {
	a, err := array.FromBytes[Contents](b)
	return SSeq{a}, err
}

func FromString(s string) (SSeq, error) {
	a, err := array.FromString[Contents](s)
	return SSeq{a}, err
}

// FromIter builds an SSeq from a byte iterator.
func FromIter(seq iter.Seq[byte]) (SSeq, error) {
	a, err := array.FromIter[Contents](seq)
	return SSeq{a}, err
}

// MustParse is FromString that panics on error; for literals and tests.
func MustParse(s string) SSeq {
	v, err := FromString(s)
	if err != nil {
		panic("sseq: " + err.Error())
	}
	return v
}

// Compare orders sequences by their bytes; a strict prefix orders first.
func (s SSeq) Compare(t SSeq) int { return s.Array.Compare(t.Array) }

func (s SSeq) Less(t SSeq) bool { return s.Compare(t) < 0 }

// Sort sorts seqs in byte-lexicographic order.
func Sort(seqs []SSeq) { slices.SortFunc(seqs, SSeq.Compare) }

/* ---------------------------- predicates ------------------------------- */

// HasN reports whether any base is N. Lowercase n is also checked even
// though construction never admits it.
func (s SSeq) HasN() bool {
	for i := range s.Len() {
		if c := s.At(i); c == 'N' || c == 'n' {
			return true
		}
	}
	return false
}

// IsHomopolymer reports whether every base equals the first one.
// An empty sequence returns ErrEmptySequence.
func (s SSeq) IsHomopolymer() (bool, error) {
	if s.IsEmpty() {
		return false, ErrEmptySequence
	}
	first := s.At(0)
	for i := 1; i < s.Len(); i++ {
		if s.At(i) != first {
			return false, nil
		}
	}
	return true, nil
}

// HasHomopolymerSuffix reports whether the last n bases are all c.
func (s SSeq) HasHomopolymerSuffix(c byte, n int) bool {
	l := s.Len()
	if l < n {
		return false
	}
	for i := l - n; i < l; i++ {
		if s.At(i) != c {
			return false
		}
	}
	return true
}

// HasPolyTSuffix reports whether the last n bases are T.
func (s SSeq) HasPolyTSuffix(n int) bool { return s.HasHomopolymerSuffix('T', n) }

/* ----------------------------- encodings ------------------------------- */

func baseCode(b byte) uint32 {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	}
	return 4
}

// Encode2Bit packs the sequence two bits per base (A=0 C=1 G=2 T=3), first
// base most significant, last base in bits 0-1. Sequences longer than
// Max2BitLen or containing N cannot be encoded.
func (s SSeq) Encode2Bit() (uint32, error) {
	if s.Len() > Max2BitLen {
		return 0, &array.CapacityExceededError{Capacity: Max2BitLen, Len: s.Len()}
	}
	var v uint32
	for i := range s.Len() {
		c := baseCode(s.At(i))
		if c > 3 {
			return 0, &UnsupportedSymbolError{Byte: s.At(i), Pos: i}
		}
		v = v<<2 | c
	}
	return v, nil
}

// RevComp returns the reverse complement.
func (s SSeq) RevComp() SSeq {
	out := s
	dst := out.MutableBytes()
	n := len(dst)
	for i := range n {
		dst[i] = complement[s.At(n-1-i)]
	}
	return out
}
