// internal/output/json.go
package output

import (
	"io"

	"ggcat2bcalm/core/graph"
	"ggcat2bcalm/internal/jsonutil"
	"ggcat2bcalm/pkg/api"
)

// ToAPIUnitig converts a domain Unitig to the stable wire schema (v1).
// Seq is included only when withSeq is set.
func ToAPIUnitig(u graph.Unitig, withSeq bool) api.UnitigV1 {
	v := api.UnitigV1{
		ID:     u.ID,
		Label:  u.Label,
		Length: len(u.Seq),
		Links:  make([]api.LinkV1, 0, len(u.Links)),
	}
	for _, l := range u.Links {
		v.Links = append(v.Links, api.LinkV1{FromStrand: l.FromStrand.String(), To: l.To, ToStrand: l.ToStrand.String()})
	}
	if withSeq {
		v.Seq = string(u.Seq)
	}
	return v
}

// WriteJSON drains in and writes one indented JSON array.
func WriteJSON(w io.Writer, in <-chan graph.Unitig, withSeq bool) error {
	list := make([]api.UnitigV1, 0, 128)
	for u := range in {
		list = append(list, ToAPIUnitig(u, withSeq))
	}
	return jsonutil.EncodePretty(w, list)
}
