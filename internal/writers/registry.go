package writers

import (
	"fmt"
	"io"
	"sort"

	"ggcat2bcalm/core/graph"
)

// Options carries the per-run knobs a format may need.
type Options struct {
	K       int  // overlap for GFA L records is K-1
	WithSeq bool // JSONL: include the sequence
}

// Handler consumes the unitig stream until it is closed.
type Handler func(w io.Writer, in <-chan graph.Unitig, opt Options) error

// Unitig writer registry (format → handler). Register in init() blocks.
var UnitigWriters = map[string]Handler{}

// RegisterUnitig is idempotent, last wins.
func RegisterUnitig(format string, fn Handler) { UnitigWriters[format] = fn }

// Registered lists known formats in sorted order.
func Registered() []string {
	out := make([]string, 0, len(UnitigWriters))
	for f := range UnitigWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func WriteUnitigs(format string, w io.Writer, in <-chan graph.Unitig, opt Options) error {
	fn, ok := UnitigWriters[format]
	if !ok {
		return fmt.Errorf("unknown unitig format %q (no writer registered)", format)
	}
	return fn(w, in, opt)
}
