// core/graph/errors.go
package graph

import (
	"errors"
	"fmt"
)

var (
	ErrSequenceTooShort      = errors.New("sequence shorter than k")
	ErrDuplicateLeftmostKmer = errors.New("duplicate leftmost k-mer")
	ErrInvalidK              = errors.New("k must be >= 2")
)

// RecordError ties an indexing failure to the offending record.
type RecordError struct {
	Index int    // 0-based record ordinal
	Kmer  string // offending substring (truncated sequence or k-mer)
	Err   error
}

func (e *RecordError) Error() string {
	if e.Kmer == "" {
		return fmt.Sprintf("record %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("record %d (%s): %v", e.Index, e.Kmer, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// preview keeps error messages readable for long unitigs.
func preview(seq []byte) string {
	const max = 64
	if len(seq) <= max {
		return string(seq)
	}
	return string(seq[:max]) + "..."
}

type duplicateError struct{ first int }

func (e duplicateError) Error() string {
	return fmt.Sprintf("%v (first seen at record %d)", ErrDuplicateLeftmostKmer, e.first)
}

func (e duplicateError) Unwrap() error { return ErrDuplicateLeftmostKmer }

func duplicateOf(first int) error { return duplicateError{first: first} }
