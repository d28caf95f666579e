// Package appshell is the process boundary shared by the commands: signal
// handling, argv and the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"ggcat2bcalm/internal/appcore"
)

// Main runs run under a context canceled by SIGINT/SIGTERM and exits with
// its code. No arguments prints help.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// An interrupted run never reports success.
	if ctx.Err() != nil && code == appcore.ExitOK {
		code = appcore.ExitCanceled
	}

	stop()
	os.Exit(code)
}
