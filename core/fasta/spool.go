// core/fasta/spool.go
package fasta

import (
	"context"
	"fmt"
	"io"
	"os"
)

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// Spool copies a one-shot stream (typically stdin) into a temporary file in
// dir so it can be scanned more than once. cleanup removes the file.
func Spool(ctx context.Context, r io.Reader, dir string) (path string, cleanup func(), err error) {
	fh, err := os.CreateTemp(dir, "unitigs-*.fa")
	if err != nil {
		return "", nil, fmt.Errorf("spool: %w", err)
	}
	cleanup = func() { _ = os.Remove(fh.Name()) }
	if _, err := io.Copy(fh, ctxReader{ctx: ctx, r: r}); err != nil {
		_ = fh.Close()
		cleanup()
		return "", nil, fmt.Errorf("spool: %w", err)
	}
	if err := fh.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("spool: %w", err)
	}
	return fh.Name(), cleanup, nil
}
