// pkg/api/unitigs_v1.go
package api

// LinkV1 is one strand-annotated adjacency.
type LinkV1 struct {
	FromStrand string `json:"from_strand"` // "+" | "-"
	To         int    `json:"to"`
	ToStrand   string `json:"to_strand"` // "+" | "-"
}

// UnitigV1 is the stable JSONL schema for converted unitigs.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type UnitigV1 struct {
	ID     int      `json:"id"`
	Label  string   `json:"label"`
	Length int      `json:"length"`
	Links  []LinkV1 `json:"links"`
	Seq    string   `json:"seq,omitempty"`
}
