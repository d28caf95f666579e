package writers

import (
	"encoding/json"
	"io"

	"ggcat2bcalm/core/graph"
	"ggcat2bcalm/internal/jsonlutil"
	"ggcat2bcalm/internal/output"
)

// StartUnitigJSONLWriter streams each unitig as one JSON line (v1).
func StartUnitigJSONLWriter(out io.Writer, withSeq bool, bufSize int) (chan<- graph.Unitig, <-chan error) {
	return jsonlutil.Start[graph.Unitig](out, bufSize,
		func(enc *json.Encoder, u graph.Unitig) error {
			return enc.Encode(output.ToAPIUnitig(u, withSeq))
		},
		IsBrokenPipe,
	)
}
