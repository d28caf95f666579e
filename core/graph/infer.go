// core/graph/infer.go
package graph

import "fmt"

// Pairing selects which extremities of a shared bucket are compared.
type Pairing int

const (
	// AllPairs compares every unordered pair in a bucket.
	AllPairs Pairing = iota
	// FirstAnchor compares only the first extremity of a bucket against the
	// rest. Repeats then get fewer links than with AllPairs.
	FirstAnchor
)

func (p Pairing) String() string {
	if p == FirstAnchor {
		return "anchor"
	}
	return "all"
}

// ParsePairing accepts "all" or "anchor".
func ParsePairing(s string) (Pairing, error) {
	switch s {
	case "all", "":
		return AllPairs, nil
	case "anchor":
		return FirstAnchor, nil
	}
	return AllPairs, fmt.Errorf("unknown pairing %q (want all | anchor)", s)
}

// Links accumulates descriptors per unitig identity, in discovery order.
type Links struct {
	byID   [][]Link
	total  int
	self   int
	shared int
}

// Infer walks every bucket holding two or more extremities and records the
// links implied by the orientation table. The index is only read.
func Infer(idx *Index, mode Pairing) *Links {
	l := &Links{byID: make([][]Link, idx.Len())}
	idx.Scan(func(_ string, ext []Extremity) bool {
		if len(ext) < 2 {
			return true
		}
		l.shared++
		anchors := len(ext) - 1
		if mode == FirstAnchor {
			anchors = 1
		}
		for i := 0; i < anchors; i++ {
			for j := i + 1; j < len(ext); j++ {
				l.pair(ext[i], ext[j])
			}
		}
		return true
	})
	return l
}

func (l *Links) pair(n1, n2 Extremity) {
	s1, s2, ok := resolve(n1, n2)
	if !ok {
		return
	}
	l.add(n1.Fragment, Link{FromStrand: s1, To: n2.Fragment, ToStrand: s2, FromEnd: n1.End, ToEnd: n2.End})
	if n1.Fragment == n2.Fragment {
		// Self-adjacency keeps only the forward descriptor.
		l.self++
		return
	}
	m1, m2, _ := resolve(n2, n1)
	l.add(n2.Fragment, Link{FromStrand: m1, To: n1.Fragment, ToStrand: m2, FromEnd: n2.End, ToEnd: n1.End})
}

func (l *Links) add(id int, link Link) {
	l.byID[id] = append(l.byID[id], link)
	l.total++
}

// Of returns the descriptors recorded for identity id.
func (l *Links) Of(id int) []Link {
	if id < 0 || id >= len(l.byID) {
		return nil
	}
	return l.byID[id]
}

// Text renders the descriptors of id as a space-separated string.
func (l *Links) Text(id int) string { return JoinLinks(l.Of(id)) }

// Total is the number of descriptors written, mirrors included.
func (l *Links) Total() int { return l.total }

// SelfLinks counts descriptors whose target is their own unitig.
func (l *Links) SelfLinks() int { return l.self }

// SharedBuckets counts buckets that held at least two extremities.
func (l *Links) SharedBuckets() int { return l.shared }
