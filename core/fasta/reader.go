// core/fasta/reader.go
package fasta

import (
	"errors"
	"fmt"
)

// Record is one unitig: a header label and a single-line sequence.
// Index is the 0-based ordinal of the record in its stream.
type Record struct {
	Index int
	Label string
	Seq   []byte
}

// Options bounds the line scanner.
type Options struct {
	BufferBytes  int // initial scanner buffer
	MaxLineBytes int // longest accepted line (a whole unitig sequence)
}

const (
	DefaultBufferBytes  = 64 * 1024
	DefaultMaxLineBytes = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
)

// DefaultOptions mirrors the scanner sizing used for genome FASTA.
var DefaultOptions = Options{BufferBytes: DefaultBufferBytes, MaxLineBytes: DefaultMaxLineBytes}

func (o Options) withDefaults() Options {
	if o.BufferBytes <= 0 {
		o.BufferBytes = DefaultBufferBytes
	}
	if o.MaxLineBytes <= 0 {
		o.MaxLineBytes = DefaultMaxLineBytes
	}
	if o.BufferBytes > o.MaxLineBytes {
		o.BufferBytes = o.MaxLineBytes
	}
	return o
}

// ErrMalformedRecord marks a broken header/sequence pairing.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedError carries the 1-based line number where pairing broke.
type MalformedError struct {
	Line   int
	Record int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("line %d (record %d): %s", e.Line, e.Record, e.Reason)
}

func (e *MalformedError) Unwrap() error { return ErrMalformedRecord }
