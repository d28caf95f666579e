package jsonutil

import (
	"bytes"
	"testing"
)

func TestEncodePretty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePretty(&buf, map[string]string{"label": "a<b>"}); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"label\": \"a<b>\"\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}
