// core/fasta/open.go
package fasta

import (
	"errors"
	"io"
	"os"
)

// ErrCompressed is returned when the input starts with a gzip magic number.
var ErrCompressed = errors.New("compressed input is not supported; decompress first")

// openReader keeps the "-" (stdin) convention. Gzip input is refused rather
// than silently parsed as text.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	if n == 2 && sig[0] == 0x1f && sig[1] == 0x8b {
		_ = fh.Close()
		return nil, ErrCompressed
	}
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}
	return fh, nil
}

// CheckReadable opens and closes path, reporting the open error if any.
// Used to surface unreadable inputs before any work starts.
func CheckReadable(path string) error {
	if path == "-" {
		return nil
	}
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	return rc.Close()
}
