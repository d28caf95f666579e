package writers

import (
	"io"

	"ggcat2bcalm/core/graph"
	"ggcat2bcalm/internal/output"
)

func init() {
	RegisterUnitig(output.FormatBCALM, func(w io.Writer, in <-chan graph.Unitig, _ Options) error {
		return output.StreamBCALM(w, in)
	})
	RegisterUnitig(output.FormatGFA, func(w io.Writer, in <-chan graph.Unitig, opt Options) error {
		return output.StreamGFA(w, in, opt.K)
	})
	// DOT needs every node before the first edge, so it buffers.
	RegisterUnitig(output.FormatDOT, func(w io.Writer, in <-chan graph.Unitig, _ Options) error {
		return output.WriteDOT(w, in)
	})
	RegisterUnitig(output.FormatJSON, func(w io.Writer, in <-chan graph.Unitig, opt Options) error {
		return output.WriteJSON(w, in, opt.WithSeq)
	})
	RegisterUnitig(output.FormatJSONL, func(w io.Writer, in <-chan graph.Unitig, opt Options) error {
		pipe, done := StartUnitigJSONLWriter(w, opt.WithSeq, 64)
		for u := range in {
			pipe <- u
		}
		close(pipe)
		return <-done
	})
}

// StartUnitigWriter spins up a writer goroutine for the given format.
// The returned channel must be closed by the caller; the error channel
// yields exactly one value once the writer is done. Items sent after a
// writer failure are drained so the producer never blocks.
func StartUnitigWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- graph.Unitig, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan graph.Unitig, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteUnitigs(format, out, in, opt)
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}
