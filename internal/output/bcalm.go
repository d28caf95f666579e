package output

import (
	"bufio"
	"io"
	"strconv"

	"ggcat2bcalm/core/graph"
)

// BCALMHeader renders the header line (without newline):
// >ID LN:i:0 KC:i:0 km:f:0.0<TAB>links<TAB>label
func BCALMHeader(u graph.Unitig) string {
	return ">" + strconv.Itoa(u.ID) + " " + BCALMPlaceholders + "\t" + graph.JoinLinks(u.Links) + "\t" + u.Label
}

// WriteBCALM writes one unitig as a two-line BCALM record.
func WriteBCALM(w io.Writer, u graph.Unitig) error {
	if _, err := io.WriteString(w, BCALMHeader(u)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if _, err := w.Write(u.Seq); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// StreamBCALM streams BCALM records from a channel to the writer.
func StreamBCALM(w io.Writer, in <-chan graph.Unitig) error {
	bw := bufio.NewWriter(w)
	for u := range in {
		if err := WriteBCALM(bw, u); err != nil {
			return err
		}
	}
	return bw.Flush()
}
