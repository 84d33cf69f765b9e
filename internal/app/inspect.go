// internal/app/inspect.go
package app

import (
	"slices"

	"bcseq/core/barcode"
	"bcseq/core/sseq"
	"bcseq/internal/output"
)

// inspector builds output records for one run's configuration.
type inspector struct {
	gemGroup  uint16
	policy    sseq.HammingPolicy
	polyT     int
	neighbors bool
	matcher   *barcode.Matcher // nil without a whitelist
}

func (in inspector) inspect(seq sseq.SSeq) output.Record {
	r := output.Record{
		HasN:          seq.HasN(),
		PolyT:         in.polyT > 0 && seq.HasPolyTSuffix(in.polyT),
		RevComp:       seq.RevComp(),
		Policy:        in.policy,
		NeighborCount: seq.NeighborCount(in.policy),
	}
	// empty barcodes are not homopolymers
	r.Homopolymer, _ = seq.IsHomopolymer()
	if code, err := seq.Encode2Bit(); err == nil {
		r.Code, r.Encodable = code, true
	}
	if in.neighbors {
		r.Neighbors = slices.Collect(seq.OneHamming(in.policy))
	}
	if in.matcher != nil {
		m := in.matcher.Match(seq)
		r.Whitelisted = m.Exact
		r.Candidates = m.Candidates
	}
	r.Barcode = barcode.New(in.gemGroup, seq, r.Whitelisted)
	return r
}
