// internal/output/json.go
package output

import (
	"io"

	"bcseq/internal/jsonutil"
	"bcseq/pkg/api"
)

// ToAPIBarcode converts a Record to the stable wire schema (v1).
func ToAPIBarcode(r Record, cols Columns) api.BarcodeV1 {
	v := api.BarcodeV1{
		Barcode:       r.Barcode.Seq.String(),
		GemGroup:      int(r.Barcode.GemGroup),
		Length:        r.Barcode.Seq.Len(),
		HasN:          r.HasN,
		Homopolymer:   r.Homopolymer,
		PolyT:         r.PolyT,
		RevComp:       r.RevComp.String(),
		Policy:        r.Policy.String(),
		NeighborCount: r.NeighborCount,
	}
	if r.Encodable {
		code := r.Code
		v.Code2Bit = &code
	}
	if cols.Neighbors {
		v.Neighbors = seqStrings(r.Neighbors)
	}
	if cols.Whitelist {
		wl := r.Whitelisted
		v.Whitelisted = &wl
		v.Candidates = seqStrings(r.Candidates)
	}
	return v
}

func toAPIBarcodes(list []Record, cols Columns) []api.BarcodeV1 {
	out := make([]api.BarcodeV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIBarcode(r, cols))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, list []Record, cols Columns) error {
	return jsonutil.EncodePretty(w, toAPIBarcodes(list, cols))
}
