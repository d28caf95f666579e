// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"ggcat2bcalm/core/fasta"
	"ggcat2bcalm/internal/clibase"
	"ggcat2bcalm/internal/cliutil"
	"ggcat2bcalm/internal/config"
)

// Options is the parsed command line.
type Options struct {
	Config  config.Config
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, nil)
	return fs
}

// ParseArgs registers and parses all flags and resolves the final config:
// defaults, then the --config file, then flags given on the command line.
// It returns flag.ErrHelp for -h and clibase.ErrPrintedAndExitOK after
// printing --examples.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var misc clibase.Misc
	opt.Config = config.Default()
	clibase.Register(fs, &opt.Config, &misc)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	posArgs = append(posArgs, fs.Args()...)

	if misc.Help {
		return opt, flag.ErrHelp
	}
	if misc.Examples {
		clibase.PrintExamples(fs.Output(), fs.Name(), clibase.Examples(fs.Name()))
		return opt, clibase.ErrPrintedAndExitOK
	}
	if misc.Version {
		opt.Version = true
		return opt, nil
	}

	if misc.ConfigFile != "" {
		if err := mergeFile(fs, &opt.Config, misc.ConfigFile); err != nil {
			return opt, err
		}
	}

	pos, err := cliutil.SingleInput(posArgs)
	if err != nil {
		return opt, err
	}
	if pos != "" {
		if isSet(fs, "input", "f") {
			return opt, errors.New("input given both as --input and as a positional argument")
		}
		opt.Config.Input = pos
	}

	if err := opt.Config.Validate(); err != nil {
		return opt, err
	}
	if err := fasta.CheckReadable(opt.Config.Input); err != nil {
		return opt, fmt.Errorf("input: %w", err)
	}
	return opt, nil
}

// mergeFile rebuilds *c as defaults overlaid by the file, then replays the
// flags that were set explicitly so they keep precedence.
func mergeFile(fs *flag.FlagSet, c *config.Config, path string) error {
	file, err := config.Load(path)
	if err != nil {
		return err
	}
	type setFlag struct{ name, value string }
	var explicit []setFlag
	fs.Visit(func(f *flag.Flag) {
		explicit = append(explicit, setFlag{f.Name, f.Value.String()})
	})

	merged := config.Default()
	merged.Overlay(file)
	*c = merged
	for _, f := range explicit {
		if err := fs.Set(f.name, f.value); err != nil {
			return fmt.Errorf("--%s: %w", f.name, err)
		}
	}
	return nil
}

func isSet(fs *flag.FlagSet, names ...string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		for _, n := range names {
			if f.Name == n {
				set = true
			}
		}
	})
	return set
}
