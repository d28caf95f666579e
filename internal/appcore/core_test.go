package appcore

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/cespare/xxhash/v2"

	"ggcat2bcalm/internal/config"
)

func setup(t *testing.T, fa string) config.Config {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "unitigs.fa")
	if err := os.WriteFile(in, []byte(fa), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.K = 4
	cfg.Input = in
	cfg.Output = filepath.Join(dir, "out.fa")
	return cfg
}

func run(cfg config.Config) (int, string, string) {
	var stdout, stderr bytes.Buffer
	wf := NewUnitigWriterFactory(cfg.Format, cfg.K, cfg.WithSeq)
	code := Run(context.Background(), &stdout, &stderr, cfg, wf)
	return code, stdout.String(), stderr.String()
}

const chain = ">1 LN:i:6\nGGGACC\n>2 LN:i:6\nACCTTA\n"

func TestRun_FileOutput(t *testing.T) {
	cfg := setup(t, chain)
	code, stdout, stderr := run(cfg)
	if code != ExitOK {
		t.Fatalf("exit %d\n%s", code, stderr)
	}
	if stdout != "" {
		t.Fatalf("stdout should be empty with a file output, got %q", stdout)
	}
	got, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	want := ">0 LN:i:0 KC:i:0 km:f:0.0\tL:+:1:+\t1 LN:i:6\nGGGACC\n" +
		">1 LN:i:0 KC:i:0 km:f:0.0\tL:+:0:+\t2 LN:i:6\nACCTTA\n"
	if string(got) != want {
		t.Fatalf("output mismatch\n got:  %q\n want: %q", got, want)
	}
	if !strings.Contains(stderr, "conversion complete") || !strings.Contains(stderr, "unitigs=2") {
		t.Fatalf("missing summary log:\n%s", stderr)
	}
	leftovers, _ := filepath.Glob(cfg.Output + ".tmp-*")
	if len(leftovers) != 0 {
		t.Fatalf("temporary files left behind: %v", leftovers)
	}
}

func TestRun_Stdout(t *testing.T) {
	cfg := setup(t, chain)
	cfg.Output = "-"
	cfg.Quiet = true
	code, stdout, stderr := run(cfg)
	if code != ExitOK || stderr != "" {
		t.Fatalf("exit %d stderr %q", code, stderr)
	}
	if !strings.HasPrefix(stdout, ">0 LN:i:0 KC:i:0 km:f:0.0\tL:+:1:+\t1 LN:i:6\n") {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

// closedPipe fails every write the way stdout does after `| head` exits.
type closedPipe struct{}

func (closedPipe) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestRun_BrokenPipe(t *testing.T) {
	cases := []struct {
		name, fa string
		want     int
	}{
		{"clean input", chain, ExitOK},
		{"data error wins", ">a\nACG\n", ExitRuntime},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := setup(t, tc.fa)
			cfg.Output = "-"
			cfg.Format = "gfa" // the header alone reaches the closed pipe
			var stderr bytes.Buffer
			wf := NewUnitigWriterFactory(cfg.Format, cfg.K, cfg.WithSeq)
			if code := Run(context.Background(), closedPipe{}, &stderr, cfg, wf); code != tc.want {
				t.Fatalf("exit %d, want %d\n%s", code, tc.want, stderr.String())
			}
			if tc.want == ExitRuntime && !strings.Contains(stderr.String(), "conversion failed") {
				t.Fatalf("data error not reported:\n%s", stderr.String())
			}
		})
	}
}

func TestRun_FailureLeavesNoOutput(t *testing.T) {
	cfg := setup(t, ">a\nACGTN\n")
	code, _, stderr := run(cfg)
	if code != ExitRuntime {
		t.Fatalf("exit %d, want %d\n%s", code, ExitRuntime, stderr)
	}
	if _, err := os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Fatalf("output should not exist after failure: %v", err)
	}
	if !strings.Contains(stderr, "conversion failed") || !strings.Contains(stderr, "invalid base") {
		t.Fatalf("missing error log:\n%s", stderr)
	}
}

func TestRun_FailureKeepsPreviousOutput(t *testing.T) {
	cfg := setup(t, ">a\nACG\n")
	if err := os.WriteFile(cfg.Output, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code, _, _ := run(cfg); code != ExitRuntime {
		t.Fatalf("exit %d", code)
	}
	if b, _ := os.ReadFile(cfg.Output); string(b) != "old" {
		t.Fatalf("previous output clobbered: %q", b)
	}
}

func TestRun_Checksum(t *testing.T) {
	cfg := setup(t, chain)
	cfg.Checksum = true
	code, _, stderr := run(cfg)
	if code != ExitOK {
		t.Fatalf("exit %d\n%s", code, stderr)
	}
	b, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf("%016x  %s\n", xxhash.Sum64(b), cfg.Output)
	if !strings.HasSuffix(stderr, want) {
		t.Fatalf("want checksum line %q in:\n%s", want, stderr)
	}
}

func TestRun_MetricsFile(t *testing.T) {
	cfg := setup(t, chain)
	cfg.MetricsFile = filepath.Join(filepath.Dir(cfg.Output), "run.prom")
	if code, _, stderr := run(cfg); code != ExitOK {
		t.Fatalf("exit %d\n%s", code, stderr)
	}
	b, err := os.ReadFile(cfg.MetricsFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "ggcat2bcalm_links 2") || !strings.Contains(string(b), `outcome="ok"`) {
		t.Fatalf("unexpected metrics:\n%s", b)
	}
}

func TestRun_Canceled(t *testing.T) {
	cfg := setup(t, chain)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := Run(ctx, &stdout, &stderr, cfg, NewUnitigWriterFactory(cfg.Format, cfg.K, false))
	if code != ExitCanceled {
		t.Fatalf("exit %d, want %d\n%s", code, ExitCanceled, stderr.String())
	}
	if _, err := os.Stat(cfg.Output); !os.IsNotExist(err) {
		t.Fatalf("output should not exist after cancel")
	}
}
