// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so
// flags may follow the input path. '-' is a positional (stdin), '--' ends
// flag parsing. Use before fs.Parse(flagArgs).
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			posArgs = append(posArgs, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if !boolFlags[name] && i+1 < len(argv) {
			flagArgs = append(flagArgs, argv[i+1])
			i++
		}
	}
	return
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ErrTooManyInputs is returned when positionals name more than one input.
var ErrTooManyInputs = errors.New("exactly one input file is accepted")

// SingleInput resolves the positional input, if any. A glob must match
// exactly one file. "" means no positional was given.
func SingleInput(posArgs []string) (string, error) {
	switch len(posArgs) {
	case 0:
		return "", nil
	case 1:
	default:
		return "", fmt.Errorf("%w (got %d: %s)", ErrTooManyInputs, len(posArgs), strings.Join(posArgs, " "))
	}
	a := posArgs[0]
	if a == "-" || !hasGlobMeta(a) {
		return a, nil
	}
	m, err := filepath.Glob(a)
	if err != nil {
		return "", fmt.Errorf("bad glob %q: %v", a, err)
	}
	switch len(m) {
	case 0:
		return "", fmt.Errorf("no input matched %q", a)
	case 1:
		return m[0], nil
	}
	return "", fmt.Errorf("%w (%q matched %d files)", ErrTooManyInputs, a, len(m))
}
