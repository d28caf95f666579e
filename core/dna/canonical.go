// core/dna/canonical.go
package dna

import "bytes"

// Canonicalize returns the lexicographically smaller of seq and its reverse
// complement. canonical is true when seq itself was chosen, which includes
// palindromes (seq == RevComp(seq)).
//
// The returned key never aliases seq.
func Canonicalize(seq []byte) (canonical bool, key []byte, err error) {
	if err := Validate(seq); err != nil {
		return false, nil, err
	}
	rc := RevComp(seq)
	if bytes.Compare(seq, rc) <= 0 {
		return true, bytes.Clone(seq), nil
	}
	return false, rc, nil
}

// CanonicalString is Canonicalize for string keys.
func CanonicalString(s string) (bool, string, error) {
	ok, key, err := Canonicalize([]byte(s))
	return ok, string(key), err
}
