// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"slices"

	"bcseq/internal/output"
)

// Func renders a batch of records to w.
type Func func(w io.Writer, list []output.Record, cols output.Columns) error

// Writers maps an output format name to its handler.
var Writers = map[string]Func{}

// Register installs fn for format (idempotent last-wins).
func Register(format string, fn Func) { Writers[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(Writers))
	for k := range Writers {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, list []output.Record, cols output.Columns) error {
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, cols)
}

func init() {
	Register("text", output.WriteText)
	Register("json", output.WriteJSON)
	Register("jsonl", WriteJSONL)
}
