// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a small quickstart header and body, followed by a
// one-line tip to discover full help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

// Examples is the quickstart body for the converter.
func Examples(name string) func(io.Writer) {
	return func(out io.Writer) {
		fmt.Fprintf(out, "  # GGCAT unitigs (k=31) to BCALM2 FASTA\n")
		fmt.Fprintf(out, "  %s -k 31 -f unitigs.fa -o unitigs.bcalm.fa\n\n", name)
		fmt.Fprintf(out, "  # read STDIN, write STDOUT\n")
		fmt.Fprintf(out, "  ggcat build ... -o /dev/stdout | %s -k 31 - > graph.fa\n\n", name)
		fmt.Fprintf(out, "  # GFA for Bandage, with an output checksum\n")
		fmt.Fprintf(out, "  %s -k 31 unitigs.fa --format gfa -o graph.gfa --checksum\n\n", name)
		fmt.Fprintf(out, "  # at repeats, compare each bucket's first unitig end against the rest only\n")
		fmt.Fprintf(out, "  %s -k 31 unitigs.fa --pairing anchor\n", name)
	}
}
