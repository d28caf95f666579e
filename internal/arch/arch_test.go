// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

const mod = "ggcat2bcalm/"

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	entry := []string{mod + "internal/app", mod + "internal/cli", mod + "cmd/"}
	with := func(extra ...string) []string { return append(append([]string{}, entry...), extra...) }

	bans := map[string][]string{
		// The graph core knows nothing about the tool around it.
		mod + "core/": {mod + "internal/", mod + "pkg/", mod + "cmd/"},
		mod + "internal/pipeline": with(
			mod+"internal/writers", mod+"internal/output", mod+"internal/config", mod+"internal/metrics",
		),
		mod + "internal/writers": with(
			mod+"internal/pipeline", mod+"internal/config", mod+"internal/metrics",
		),
		mod + "internal/output": with(
			mod+"internal/pipeline", mod+"internal/writers", mod+"internal/config", mod+"internal/metrics",
		),
		mod + "internal/config":  with(mod+"internal/pipeline", mod+"internal/writers", mod+"internal/metrics"),
		mod + "internal/metrics": with(mod+"internal/writers", mod+"internal/config"),
		mod + "pkg/api":          {mod + "internal/", mod + "core/", mod + "cmd/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, mod) {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, mod) {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
