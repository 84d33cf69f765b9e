// core/sseq/hamming.go
package sseq

import (
	"fmt"
	"iter"
	"strings"
)

// HammingPolicy decides what happens to N positions during enumeration.
type HammingPolicy uint8

const (
	// SkipN leaves N positions untouched.
	SkipN HammingPolicy = iota
	// MutateN substitutes N positions like any other base.
	MutateN
)

func (p HammingPolicy) String() string {
	switch p {
	case SkipN:
		return "skip"
	case MutateN:
		return "mutate"
	}
	return fmt.Sprintf("HammingPolicy(%d)", uint8(p))
}

// ParsePolicy accepts "skip" or "mutate" (case-insensitive).
func ParsePolicy(s string) (HammingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip":
		return SkipN, nil
	case "mutate":
		return MutateN, nil
	}
	return SkipN, fmt.Errorf("invalid hamming policy %q; allowed: skip | mutate", s)
}

// substitutions tried at every position, in order. N is never a replacement.
var substitutions = [4]byte{'A', 'C', 'G', 'T'}

// HammingIter yields every sequence one substitution away from a source.
// Positions are visited left to right and substitutions in A, C, G, T
// order, skipping the base already present. It is single-pass and not safe
// for concurrent use.
type HammingIter struct {
	source SSeq
	skipN  bool
	pos    int // position being mutated
	cand   int // next index into substitutions
}

// OneHammingIter returns an enumerator over the Hamming-distance-1
// neighbors of s.
func (s SSeq) OneHammingIter(p HammingPolicy) *HammingIter {
	return &HammingIter{source: s, skipN: p == SkipN}
}

// Next returns the next neighbor, or false once exhausted.
func (it *HammingIter) Next() (SSeq, bool) {
	for it.pos < it.source.Len() {
		base := it.source.At(it.pos)
		if (it.skipN && base == 'N') || it.cand >= len(substitutions) {
			it.pos++
			it.cand = 0
			continue
		}
		c := substitutions[it.cand]
		it.cand++
		if c == base {
			continue
		}
		next := it.source
		next.MutableBytes()[it.pos] = c
		return next, true
	}
	return SSeq{}, false
}

// OneHamming is the range-over-func form of OneHammingIter. Every range
// statement starts a fresh enumeration.
func (s SSeq) OneHamming(p HammingPolicy) iter.Seq[SSeq] {
	return func(yield func(SSeq) bool) {
		it := s.OneHammingIter(p)
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// NeighborCount is the number of sequences OneHamming(p) yields:
// 3 per non-N base, plus 4 per N base under MutateN.
func (s SSeq) NeighborCount(p HammingPolicy) int {
	nN := 0
	for i := range s.Len() {
		if s.At(i) == 'N' {
			nN++
		}
	}
	total := 3 * (s.Len() - nN)
	if p == MutateN {
		total += 4 * nN
	}
	return total
}
