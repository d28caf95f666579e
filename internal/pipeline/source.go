// internal/pipeline/source.go
package pipeline

import (
	"context"
	"os"

	"ggcat2bcalm/core/fasta"
)

// Source yields unitig records. Stream is called once per pass and must
// produce the same records in the same order each time.
type Source interface {
	Stream(ctx context.Context, emit func(fasta.Record) error) error
}

// FileSource streams a FASTA file from disk.
type FileSource struct {
	Path   string
	Reader fasta.Options
}

func (s FileSource) Stream(ctx context.Context, emit func(fasta.Record) error) error {
	return fasta.StreamUnitigsPathCtx(ctx, s.Path, s.Reader, emit)
}

// OpenSource returns a re-readable Source for path. "-" (stdin) is spooled
// to a temporary file under tempDir first; cleanup removes it.
func OpenSource(ctx context.Context, path string, opts fasta.Options, tempDir string) (Source, func(), error) {
	if path != "-" {
		return FileSource{Path: path, Reader: opts}, func() {}, nil
	}
	spooled, cleanup, err := fasta.Spool(ctx, os.Stdin, tempDir)
	if err != nil {
		return nil, nil, err
	}
	return FileSource{Path: spooled, Reader: opts}, cleanup, nil
}
