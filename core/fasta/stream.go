// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// StreamUnitigsCtx parses unitig FASTA from r and calls emit once per record,
// in input order. Every header must be followed by exactly one sequence line;
// wrapped sequences are rejected. Blank lines are ignored.
//
// The Seq slice passed to emit is only valid for the duration of the call.
// It is cancelable between lines.
func StreamUnitigsCtx(ctx context.Context, r io.Reader, opts Options, emit func(Record) error) error {
	opts = opts.withDefaults()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, opts.BufferBytes), opts.MaxLineBytes)

	var (
		label     string
		inRecord  bool // header seen, sequence pending
		lastIsSeq bool // previous non-blank line was a sequence
		lineNo    int
		index     int
	)

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := bytes.TrimRight(sc.Bytes(), " \t\r")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if inRecord {
				return &MalformedError{Line: lineNo, Record: index, Reason: "header follows header with no sequence line"}
			}
			label = string(line[1:])
			inRecord = true
			lastIsSeq = false
			continue
		}
		if !inRecord {
			reason := "sequence line without a header"
			if lastIsSeq {
				reason = "wrapped (multi-line) sequences are not supported"
			}
			return &MalformedError{Line: lineNo, Record: index, Reason: reason}
		}
		if err := emit(Record{Index: index, Label: label, Seq: line}); err != nil {
			return err
		}
		index++
		inRecord = false
		lastIsSeq = true
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan (line %d): %w", lineNo+1, err)
	}
	if inRecord {
		return &MalformedError{Line: lineNo, Record: index, Reason: "header at end of input has no sequence line"}
	}
	return nil
}
