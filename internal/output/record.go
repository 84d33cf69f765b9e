// internal/output/record.go
package output

import (
	"slices"

	"bcseq/core/barcode"
	"bcseq/core/sseq"
)

// Record is everything reported about one barcode.
type Record struct {
	Barcode     barcode.Barcode
	HasN        bool
	Homopolymer bool
	PolyT       bool
	Code        uint32
	Encodable   bool
	RevComp     sseq.SSeq
	Policy      sseq.HammingPolicy

	NeighborCount int
	Neighbors     []sseq.SSeq // only when listing was requested

	Whitelisted bool
	Candidates  []sseq.SSeq
}

// Columns selects the optional parts of a rendering.
type Columns struct {
	Header    bool
	Neighbors bool // list every neighbor
	Whitelist bool // whitelist membership and candidates
}

// SortRecords orders records by GEM group and sequence.
func SortRecords(list []Record) {
	slices.SortStableFunc(list, func(a, b Record) int { return a.Barcode.Compare(b.Barcode) })
}

func seqStrings(list []sseq.SSeq) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.String()
	}
	return out
}
