package output

import (
	"bufio"
	"fmt"
	"io"

	"ggcat2bcalm/core/graph"
)

// OwnsLink reports whether link, stored on unitig from, is the copy that
// undirected formats print. Every non-self link has a mirror on its target,
// so only the copy held by the lower identity is kept.
func OwnsLink(from int, link graph.Link) bool {
	return from <= link.To
}

// StreamGFA writes GFA1: a header, one S line per unitig and one L line per
// undirected link with a (k-1)M overlap. L orientations come from
// graph.Link.Overlap, so the end of the first segment really overlaps the
// start of the second.
func StreamGFA(w io.Writer, in <-chan graph.Unitig, k int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, GFAHeader); err != nil {
		return err
	}
	for u := range in {
		if _, err := fmt.Fprintf(bw, "S\t%d\t%s\tLN:i:%d\n", u.ID, u.Seq, len(u.Seq)); err != nil {
			return err
		}
		for _, l := range u.Links {
			if !OwnsLink(u.ID, l) {
				continue
			}
			from, to := l.Overlap()
			if _, err := fmt.Fprintf(bw, "L\t%d\t%c\t%d\t%c\t%dM\n", u.ID, from, l.To, to, k-1); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
