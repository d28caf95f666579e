package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"ggcat2bcalm/core/graph"
	"ggcat2bcalm/internal/output"
	"ggcat2bcalm/pkg/api"
)

func sample() []graph.Unitig {
	return []graph.Unitig{
		{ID: 0, Label: "1 LN:i:6", Seq: []byte("GGGACC"), Links: []graph.Link{
			{FromStrand: graph.Forward, To: 1, ToStrand: graph.Forward, FromEnd: graph.Suffix, ToEnd: graph.Prefix},
		}},
		{ID: 1, Label: "2 LN:i:6", Seq: []byte("ACCTTA"), Links: []graph.Link{
			{FromStrand: graph.Forward, To: 0, ToStrand: graph.Forward, FromEnd: graph.Prefix, ToEnd: graph.Suffix},
		}},
	}
}

func run(t *testing.T, format string, opt Options) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartUnitigWriter(&buf, format, opt, 1)
	for _, u := range sample() {
		in <- u
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("%s writer err: %v", format, err)
	}
	return buf.String()
}

func TestBCALMWriter_Snapshot(t *testing.T) {
	got := run(t, output.FormatBCALM, Options{K: 4})
	want := ">0 LN:i:0 KC:i:0 km:f:0.0\tL:+:1:+\t1 LN:i:6\nGGGACC\n" +
		">1 LN:i:0 KC:i:0 km:f:0.0\tL:+:0:+\t2 LN:i:6\nACCTTA\n"
	if got != want {
		t.Fatalf("BCALM snapshot mismatch\n got:  %q\n want: %q", got, want)
	}
}

func TestGFAWriter(t *testing.T) {
	got := run(t, output.FormatGFA, Options{K: 4})
	if !strings.HasPrefix(got, "H\tVN:Z:1.0\n") || strings.Count(got, "\nL\t") != 1 || !strings.Contains(got, "L\t0\t+\t1\t+\t3M") {
		t.Fatalf("unexpected GFA:\n%s", got)
	}
}

func TestDOTWriter(t *testing.T) {
	got := run(t, output.FormatDOT, Options{})
	if !strings.Contains(got, "digraph unitigs") || !strings.Contains(got, `"0 (6 bp)"`) {
		t.Fatalf("unexpected DOT:\n%s", got)
	}
}

func TestJSONLWriter_StreamsValidV1(t *testing.T) {
	got := run(t, output.FormatJSONL, Options{WithSeq: true})
	sc := bufio.NewScanner(strings.NewReader(got))
	var n int
	for sc.Scan() {
		var v api.UnitigV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("bad json line %d: %v\n%s", n, err, sc.Text())
		}
		if v.ID != n || v.Length != 6 || len(v.Links) != 1 || v.Seq == "" {
			t.Fatalf("line %d: unexpected %+v", n, v)
		}
		n++
	}
	if n != 2 {
		t.Fatalf("want 2 lines, got %d", n)
	}
}

func TestUnknownUnitigFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartUnitigWriter(&b, "nope-format", Options{}, 1)
	// Sends beyond the buffer must not block once the writer has failed.
	for _, u := range append(sample(), sample()...) {
		in <- u
	}
	close(in)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown unitig format") {
		t.Fatalf("want 'unknown unitig format' error, got: %v", err)
	}
}

func TestRegistered(t *testing.T) {
	got := strings.Join(Registered(), ",")
	if got != "bcalm,dot,gfa,json,jsonl" {
		t.Fatalf("registered formats = %s", got)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("EPIPE and ErrClosedPipe are broken pipes")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatal("unexpected broken pipe")
	}
}

func TestJSONWriter_Array(t *testing.T) {
	got := run(t, output.FormatJSON, Options{})
	var list []api.UnitigV1
	if err := json.Unmarshal([]byte(got), &list); err != nil {
		t.Fatalf("bad json: %v\n%s", err, got)
	}
	if len(list) != 2 || list[1].Links[0].To != 0 || list[0].Seq != "" {
		t.Fatalf("unexpected array %+v", list)
	}
}
