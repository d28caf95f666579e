// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"ggcat2bcalm/core/graph"
	"ggcat2bcalm/internal/cmdutil"
	"ggcat2bcalm/internal/config"
	"ggcat2bcalm/internal/metrics"
	"ggcat2bcalm/internal/pipeline"
	"ggcat2bcalm/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// Run converts cfg.Input to cfg.Output and returns the process exit code.
// cfg must already be validated.
func Run(parent context.Context, stdout, stderr io.Writer, cfg config.Config, wf WriterFactory) int {
	log := cmdutil.NewLogger(stderr, cfg.Quiet, cfg.Debug)
	log.Debug("starting conversion",
		"input", cfg.Input, "output", cfg.Output, "k", cfg.K,
		"format", cfg.Format, "pairing", cfg.Pairing)

	var m *metrics.Run
	if cfg.MetricsFile != "" {
		m = metrics.New()
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	code, st, n, out := convert(ctx, log, stdout, cfg, wf)

	if m != nil {
		m.Observe(st)
		if out != nil {
			m.AddOutputBytes(out.Bytes())
		}
		m.Outcome(outcome(code))
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error("writing metrics file", "path", cfg.MetricsFile, "error", err)
			if code == ExitOK {
				code = ExitRuntime
			}
		}
	}
	if code != ExitOK {
		return code
	}

	log.Info("conversion complete",
		"unitigs", n,
		"links", st.Links,
		"self_links", st.SelfLinks,
		"shared_buckets", st.SharedBuckets,
		"index", st.IndexTime, "infer", st.InferTime, "emit", st.EmitTime)
	if sum, ok := out.Sum64(); ok {
		// Same layout as the *sum tools so the line can be checked by hand.
		_, _ = fmt.Fprintf(stderr, "%016x  %s\n", sum, out.Name())
	}
	return ExitOK
}

func convert(ctx context.Context, log *slog.Logger, stdout io.Writer, cfg config.Config, wf WriterFactory) (int, pipeline.Stats, int, *sink) {
	var st pipeline.Stats

	src, cleanup, err := pipeline.OpenSource(ctx, cfg.Input, cfg.ReaderOptions(), "")
	if err != nil {
		return failure(log, err), st, 0, nil
	}
	defer cleanup()

	out, err := openSink(cfg.Output, stdout, cfg.Checksum)
	if err != nil {
		log.Error("opening output", "path", cfg.Output, "error", err)
		return ExitRuntime, st, 0, nil
	}
	outw := bufio.NewWriter(out)
	inCh, writeErr := wf.Start(outw, 64)

	total, st, perr := cmdutil.RunStream(ctx,
		pipeline.Config{
			K:                   cfg.K,
			Pairing:             cfg.PairingMode(),
			AllowDuplicateKmers: cfg.AllowDuplicateKmers,
		},
		src,
		func(u graph.Unitig) error {
			select {
			case inCh <- u:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	close(inCh)

	werr := <-writeErr
	if werr == nil {
		werr = outw.Flush()
	}
	if perr != nil {
		out.abort()
		return failure(log, perr), st, total, out
	}
	// A closed downstream pipe (e.g. `| head`) is not a failure once the
	// input converted cleanly.
	if writers.IsBrokenPipe(werr) {
		out.abort()
		return ExitOK, st, total, out
	}
	if werr != nil {
		out.abort()
		log.Error("writing output", "path", cfg.Output, "error", werr)
		return ExitRuntime, st, total, out
	}
	if err := out.commit(); err != nil {
		log.Error("committing output", "path", cfg.Output, "error", err)
		return ExitRuntime, st, total, out
	}
	return ExitOK, st, total, out
}

func failure(log *slog.Logger, err error) int {
	if errors.Is(err, context.Canceled) {
		log.Warn("canceled")
		return ExitCanceled
	}
	log.Error("conversion failed", "error", err)
	return ExitRuntime
}

func outcome(code int) string {
	switch code {
	case ExitOK:
		return "ok"
	case ExitCanceled:
		return "canceled"
	}
	return "error"
}
