// internal/pipeline/pipeline.go
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"ggcat2bcalm/core/fasta"
	"ggcat2bcalm/core/graph"
)

// ErrPassMismatch means the second read of the input did not reproduce the
// records seen while indexing (the file changed, or a Source is not stable).
var ErrPassMismatch = errors.New("input changed between passes")

// Config controls a conversion.
type Config struct {
	K                   int
	Pairing             graph.Pairing
	AllowDuplicateKmers bool
}

// Stats summarizes one conversion.
type Stats struct {
	Fragments     int
	Extremities   int
	Buckets       int
	SharedBuckets int
	Links         int
	SelfLinks     int

	IndexTime time.Duration
	InferTime time.Duration
	EmitTime  time.Duration
}

// ForEachUnitig indexes src, infers links, then streams src again and calls
// visit once per unitig in input order. Identities and labels come from the
// first pass; the second pass only supplies sequences.
// It returns the first error encountered (including context cancellation).
func ForEachUnitig(ctx context.Context, cfg Config, src Source, visit func(graph.Unitig) error) (Stats, error) {
	var st Stats

	idx, err := graph.NewIndex(cfg.K, graph.IndexOptions{AllowDuplicateKmers: cfg.AllowDuplicateKmers})
	if err != nil {
		return st, err
	}

	start := time.Now()
	err = src.Stream(ctx, func(r fasta.Record) error {
		_, err := idx.Add(r.Label, r.Seq)
		return err
	})
	if err != nil {
		return st, fmt.Errorf("index: %w", err)
	}
	st.IndexTime = time.Since(start)
	st.Fragments = idx.Len()
	st.Extremities = idx.Extremities()
	st.Buckets = idx.Buckets()

	start = time.Now()
	links := graph.Infer(idx, cfg.Pairing)
	st.InferTime = time.Since(start)
	st.SharedBuckets = links.SharedBuckets()
	st.Links = links.Total()
	st.SelfLinks = links.SelfLinks()

	start = time.Now()
	heads, k := idx.Heads(), idx.K()
	emitted := 0
	err = src.Stream(ctx, func(r fasta.Record) error {
		if r.Index >= len(heads) {
			return fmt.Errorf("%w: record %d was not indexed", ErrPassMismatch, r.Index)
		}
		h := heads[r.Index]
		if len(r.Seq) < k || string(r.Seq[:k]) != h.LeftKmer || r.Label != h.Label {
			return fmt.Errorf("%w: record %d no longer starts with %s", ErrPassMismatch, r.Index, h.LeftKmer)
		}
		emitted++
		// r.Seq aliases the scanner buffer; visit may hand it to another goroutine.
		return visit(graph.Unitig{ID: h.ID, Label: h.Label, Seq: bytes.Clone(r.Seq), Links: links.Of(h.ID)})
	})
	if err != nil {
		return st, err
	}
	if emitted != len(heads) {
		return st, fmt.Errorf("%w: indexed %d records, re-read %d", ErrPassMismatch, len(heads), emitted)
	}
	st.EmitTime = time.Since(start)
	return st, nil
}
