// core/dna/rc.go
package dna

import (
	"errors"
	"fmt"
)

// ErrInvalidBase is returned for any byte outside {A,C,G,T}.
var ErrInvalidBase = errors.New("invalid base")

// InvalidBaseError locates the first non-ACGT byte of a sequence.
type InvalidBaseError struct {
	Pos  int
	Base byte
	Seq  string
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q at offset %d in %q", e.Base, e.Pos, e.Seq)
}

func (e *InvalidBaseError) Unwrap() error { return ErrInvalidBase }

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// Validate reports the first byte of seq that is not an uppercase nucleotide.
func Validate(seq []byte) error {
	for i, b := range seq {
		if complement[b] == 0 {
			return &InvalidBaseError{Pos: i, Base: b, Seq: string(seq)}
		}
	}
	return nil
}

// RevComp returns the reverse complement of seq. Bytes outside {A,C,G,T}
// come back as 0; call Validate first when the input is untrusted.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}
