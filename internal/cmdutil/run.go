package cmdutil

import (
	"context"

	"ggcat2bcalm/core/graph"
	"ggcat2bcalm/internal/pipeline"
)

// RunStream runs the two-pass conversion and forwards every unitig to send.
// It returns the number of unitigs sent, the run stats and the first error
// encountered.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	src pipeline.Source,
	send func(graph.Unitig) error,
) (int, pipeline.Stats, error) {
	total := 0
	st, err := pipeline.ForEachUnitig(ctx, cfg, src, func(u graph.Unitig) error {
		if err := send(u); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, st, err
}
