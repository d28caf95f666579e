// core/fasta/path_ctx.go
package fasta

import "context"

// StreamUnitigsPathCtx opens path ("-" for stdin) and streams its records.
func StreamUnitigsPathCtx(ctx context.Context, path string, opts Options, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return StreamUnitigsCtx(ctx, rc, opts, emit)
}
