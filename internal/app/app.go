// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"ggcat2bcalm/internal/appcore"
	"ggcat2bcalm/internal/cli"
	"ggcat2bcalm/internal/clibase"
	"ggcat2bcalm/internal/version"
	"ggcat2bcalm/internal/writers"
)

const name = "ggcat2bcalm"

// flush reports the exit code for a finished stdout write: a closed pipe is
// not an error.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return code
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitRuntime
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.Usage()
			return flush(outw, stderr, appcore.ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			// Examples went to the discarded output; print them for real.
			clibase.PrintExamples(outw, name, clibase.Examples(name))
			return flush(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, appcore.ExitOK)
	}

	c := opts.Config
	writer := appcore.NewUnitigWriterFactory(c.Format, c.K, c.WithSeq)
	return appcore.Run(parent, stdout, stderr, c, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
