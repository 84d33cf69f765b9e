// internal/writers/jsonl.go
package writers

import (
	"io"

	gojson "github.com/goccy/go-json"

	"bcseq/internal/jsonlutil"
	"bcseq/internal/output"
)

// StartJSONLWriter streams each Record as one JSON line (v1).
func StartJSONLWriter(out io.Writer, cols output.Columns, bufSize int) (chan<- output.Record, <-chan error) {
	return jsonlutil.Start[output.Record](out, bufSize,
		func(enc *gojson.Encoder, r output.Record) error {
			return enc.Encode(output.ToAPIBarcode(r, cols))
		},
		IsBrokenPipe,
	)
}

// WriteJSONL writes list through StartJSONLWriter.
func WriteJSONL(w io.Writer, list []output.Record, cols output.Columns) error {
	in, done := StartJSONLWriter(w, cols, len(list))
	for _, r := range list {
		in <- r
	}
	close(in)
	return <-done
}
