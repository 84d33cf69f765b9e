// pkg/api/barcode_v1.go
package api

// BarcodeV1 is the stable JSON/JSONL schema for one inspected barcode.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type BarcodeV1 struct {
	Barcode       string   `json:"barcode"`
	GemGroup      int      `json:"gem_group"`
	Length        int      `json:"length"`
	HasN          bool     `json:"has_n"`
	Homopolymer   bool     `json:"homopolymer"`
	PolyT         bool     `json:"polyt_suffix"`
	Code2Bit      *uint32  `json:"code_2bit,omitempty"` // absent when not encodable
	RevComp       string   `json:"revcomp"`
	Policy        string   `json:"policy"` // "skip" | "mutate"
	NeighborCount int      `json:"neighbor_count"`
	Neighbors     []string `json:"neighbors,omitempty"`
	Whitelisted   *bool    `json:"whitelisted,omitempty"` // absent without a whitelist
	Candidates    []string `json:"candidates,omitempty"`
}
