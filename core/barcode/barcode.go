// Package barcode holds the consumer-side view of cell barcodes: a barcode
// value tagged with its GEM group, the whitelist lookup interface, an
// in-memory whitelist, and Hamming-1 candidate matching against it.
//
// Deciding which candidate (if any) an observed barcode is corrected to is
// left to the caller.
package barcode

import (
	"cmp"
	"fmt"

	"bcseq/core/sseq"
)

// Whitelist reports membership of known-valid barcode sequences.
type Whitelist interface {
	Contains(s sseq.SSeq) bool
}

// Barcode is an observed barcode sequence from one GEM group, with whether
// it was found on the whitelist.
type Barcode struct {
	GemGroup uint16
	Seq      sseq.SSeq
	Valid    bool
}

func New(gemGroup uint16, seq sseq.SSeq, valid bool) Barcode {
	return Barcode{GemGroup: gemGroup, Seq: seq, Valid: valid}
}

// Lookup builds a Barcode whose Valid flag is whitelist membership.
func Lookup(gemGroup uint16, seq sseq.SSeq, wl Whitelist) Barcode {
	return New(gemGroup, seq, wl != nil && wl.Contains(seq))
}

// String renders the SEQ-GEMGROUP form, e.g. "ACGTACGT-1".
func (b Barcode) String() string { return fmt.Sprintf("%s-%d", b.Seq, b.GemGroup) }

// Compare orders by GEM group, then sequence; invalid before valid.
func (b Barcode) Compare(o Barcode) int {
	if c := cmp.Compare(b.GemGroup, o.GemGroup); c != 0 {
		return c
	}
	if c := b.Seq.Compare(o.Seq); c != 0 {
		return c
	}
	switch {
	case b.Valid == o.Valid:
		return 0
	case !b.Valid:
		return -1
	}
	return 1
}
