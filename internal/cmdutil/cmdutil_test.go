package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"ggcat2bcalm/core/fasta"
	"ggcat2bcalm/core/graph"
	"ggcat2bcalm/internal/pipeline"
)

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, false, false)
	log.Debug("hidden")
	log.Info("shown", "k", 31)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "msg=shown") || !strings.Contains(out, "k=31") {
		t.Fatalf("unexpected log output:\n%s", out)
	}
	if !strings.Contains(out, "run=") {
		t.Fatalf("missing run id:\n%s", out)
	}

	buf.Reset()
	NewLogger(&buf, true, false).Warn("quiet drops warnings")
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}

	buf.Reset()
	NewLogger(&buf, false, true).Debug("dbg")
	if !strings.Contains(buf.String(), "msg=dbg") {
		t.Fatalf("debug logger dropped debug record")
	}
}

func TestNewLogger_DistinctRunIDs(t *testing.T) {
	var a, b bytes.Buffer
	NewLogger(&a, false, false).Info("x")
	NewLogger(&b, false, false).Info("x")
	runID := func(s string) string {
		i := strings.Index(s, "run=")
		return strings.Fields(s[i:])[0]
	}
	if runID(a.String()) == runID(b.String()) {
		t.Fatal("run ids should differ")
	}
}

type memSource []fasta.Record

func (m memSource) Stream(ctx context.Context, emit func(fasta.Record) error) error {
	for _, r := range m {
		if err := emit(r); err != nil {
			return err
		}
	}
	return nil
}

func TestRunStream(t *testing.T) {
	src := memSource{
		{Index: 0, Label: "a", Seq: []byte("GGGACC")},
		{Index: 1, Label: "b", Seq: []byte("ACCTTA")},
	}
	var got []graph.Unitig
	n, st, err := RunStream(context.Background(), pipeline.Config{K: 4}, src, func(u graph.Unitig) error {
		got = append(got, u)
		return nil
	})
	if err != nil || n != 2 || len(got) != 2 || st.Links != 2 {
		t.Fatalf("n=%d links=%d err=%v", n, st.Links, err)
	}

	stop := errors.New("stop")
	n, _, err = RunStream(context.Background(), pipeline.Config{K: 4}, src, func(graph.Unitig) error { return stop })
	if !errors.Is(err, stop) || n != 0 {
		t.Fatalf("send error should abort: n=%d err=%v", n, err)
	}
}
