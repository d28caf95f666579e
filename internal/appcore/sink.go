package appcore

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// sink is the output destination. A file output is written to a temporary
// sibling and only renamed over the destination by commit, so a failed run
// never leaves a partial file behind.
type sink struct {
	w    io.Writer
	f    *os.File
	dest string

	n      int64
	digest *xxhash.Digest
}

func openSink(path string, stdout io.Writer, checksum bool) (*sink, error) {
	s := &sink{w: stdout, dest: path}
	if checksum {
		s.digest = xxhash.New()
	}
	if path == "-" {
		return s, nil
	}
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, err
	}
	s.f, s.w = f, f
	return s, nil
}

func (s *sink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.n += int64(n)
	if s.digest != nil {
		_, _ = s.digest.Write(p[:n])
	}
	return n, err
}

func (s *sink) Bytes() int64 { return s.n }

// Sum64 is the xxhash64 of every byte written; ok is false when checksums
// were not requested.
func (s *sink) Sum64() (sum uint64, ok bool) {
	if s.digest == nil {
		return 0, false
	}
	return s.digest.Sum64(), true
}

func (s *sink) Name() string { return s.dest }

func (s *sink) commit() error {
	if s.f == nil {
		return nil
	}
	tmp := s.f.Name()
	err := errors.Join(s.f.Chmod(0o644), s.f.Sync(), s.f.Close())
	s.f = nil
	if err == nil {
		err = os.Rename(tmp, s.dest)
	}
	if err != nil {
		_ = os.Remove(tmp)
	}
	return err
}

func (s *sink) abort() {
	if s.f == nil {
		return
	}
	_ = s.f.Close()
	_ = os.Remove(s.f.Name())
	s.f = nil
}
