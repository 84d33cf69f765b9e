// core/barcode/set.go
package barcode

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"bcseq/core/sseq"
)

// Set is an in-memory Whitelist. Barcodes that fit a 2-bit code (no N, at
// most sseq.Max2BitLen bases) live in one roaring bitmap per length; the rest
// fall back to a map. Codes of different lengths never collide.
// A Set is not safe for concurrent mutation; concurrent Contains is fine.
type Set struct {
	codes [sseq.Max2BitLen + 1]*roaring.Bitmap
	other map[sseq.SSeq]struct{}
}

var _ Whitelist = (*Set)(nil)

func NewSet() *Set {
	return &Set{other: make(map[sseq.SSeq]struct{})}
}

// FromStrings parses every entry and returns the resulting Set. The first
// invalid entry aborts with its index.
func FromStrings(list []string) (*Set, error) {
	s := NewSet()
	for i, raw := range list {
		seq, err := sseq.FromString(raw)
		if err != nil {
			return nil, fmt.Errorf("whitelist entry %d (%q): %w", i, raw, err)
		}
		s.Add(seq)
	}
	s.Optimize()
	return s, nil
}

// Add inserts seq.
func (s *Set) Add(seq sseq.SSeq) {
	if code, err := seq.Encode2Bit(); err == nil {
		bm := s.codes[seq.Len()]
		if bm == nil {
			bm = roaring.New()
			s.codes[seq.Len()] = bm
		}
		bm.Add(code)
		return
	}
	s.other[seq] = struct{}{}
}

// Contains reports whether seq was added.
func (s *Set) Contains(seq sseq.SSeq) bool {
	if code, err := seq.Encode2Bit(); err == nil {
		bm := s.codes[seq.Len()]
		return bm != nil && bm.Contains(code)
	}
	_, ok := s.other[seq]
	return ok
}

// Len returns the number of distinct barcodes.
func (s *Set) Len() int {
	n := len(s.other)
	for _, bm := range s.codes {
		if bm != nil {
			n += int(bm.GetCardinality())
		}
	}
	return n
}

// Optimize run-length compresses the bitmaps; call after bulk loading.
func (s *Set) Optimize() {
	for _, bm := range s.codes {
		if bm != nil {
			bm.RunOptimize()
		}
	}
}
