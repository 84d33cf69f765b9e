// internal/output/text.go
package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// TSV column names; optional ones are appended as selected by Columns.
const (
	baseHeader      = "barcode\tgem_group\tlength\thas_n\thomopolymer\tpolyt_suffix\tcode_2bit\trevcomp\tneighbors"
	neighborsHeader = "neighbor_seqs"
	whitelistHeader = "whitelisted\tcandidates"
)

// Header returns the TSV header line (without newline) for cols.
func Header(cols Columns) string {
	h := baseHeader
	if cols.Neighbors {
		h += "\t" + neighborsHeader
	}
	if cols.Whitelist {
		h += "\t" + whitelistHeader
	}
	return h
}

// FormatRow renders one TSV row (without newline). Empty lists and
// unencodable codes print as "-".
func FormatRow(r Record, cols Columns) string {
	var b strings.Builder
	b.WriteString(r.Barcode.Seq.String())
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(int(r.Barcode.GemGroup)))
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(r.Barcode.Seq.Len()))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatBool(r.HasN))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatBool(r.Homopolymer))
	b.WriteByte('\t')
	b.WriteString(strconv.FormatBool(r.PolyT))
	b.WriteByte('\t')
	if r.Encodable {
		b.WriteString(strconv.FormatUint(uint64(r.Code), 10))
	} else {
		b.WriteByte('-')
	}
	b.WriteByte('\t')
	b.WriteString(r.RevComp.String())
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(r.NeighborCount))
	if cols.Neighbors {
		b.WriteByte('\t')
		b.WriteString(joinOrDash(seqStrings(r.Neighbors)))
	}
	if cols.Whitelist {
		b.WriteByte('\t')
		b.WriteString(strconv.FormatBool(r.Whitelisted))
		b.WriteByte('\t')
		b.WriteString(joinOrDash(seqStrings(r.Candidates)))
	}
	return b.String()
}

func joinOrDash(list []string) string {
	if len(list) == 0 {
		return "-"
	}
	return strings.Join(list, ",")
}

// WriteText prints an optional header and one TSV line per record.
func WriteText(w io.Writer, list []Record, cols Columns) error {
	bw := bufio.NewWriter(w)
	if cols.Header {
		if _, err := bw.WriteString(Header(cols) + "\n"); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := bw.WriteString(FormatRow(r, cols) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
