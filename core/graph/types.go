// core/graph/types.go
package graph

import (
	"strconv"
	"strings"
)

// End names which boundary (k-1)-mer of a unitig an extremity stands for.
type End uint8

const (
	Prefix End = iota // first k-1 bases of the leftmost k-mer
	Suffix            // last k-1 bases of the rightmost k-mer
)

func (e End) String() string {
	if e == Prefix {
		return "prefix"
	}
	return "suffix"
}

// Orientation tells whether the boundary (k-1)-mer was already canonical.
type Orientation uint8

const (
	Canonical Orientation = iota
	Reversed
)

func (o Orientation) String() string {
	if o == Canonical {
		return "canonical"
	}
	return "reversed"
}

// Strand is the traversal direction written in a link descriptor.
type Strand byte

const (
	Forward Strand = '+'
	Reverse Strand = '-'
)

func (s Strand) String() string { return string(rune(s)) }

// Extremity is one end of one unitig filed under a canonical key.
type Extremity struct {
	Fragment    int
	End         End
	Orientation Orientation
}

// Link is one BCALM descriptor stored on its owning unitig. FromEnd and
// ToEnd record which extremities met; they are not part of the text form.
type Link struct {
	FromStrand Strand
	To         int
	ToStrand   Strand

	FromEnd End
	ToEnd   End
}

// Overlap returns the orientations under which the last k-1 bases of the
// owning unitig equal the first k-1 bases of unitig To. A suffix is read
// forward and a prefix reverse-complemented; the target is the reverse.
// GFA and DOT edges use this, not the descriptor strands.
func (l Link) Overlap() (from, to Strand) {
	from, to = Forward, Forward
	if l.FromEnd == Prefix {
		from = Reverse
	}
	if l.ToEnd == Suffix {
		to = Reverse
	}
	return from, to
}

// String renders the BCALM descriptor, e.g. "L:+:12:-".
func (l Link) String() string {
	var b strings.Builder
	l.appendTo(&b)
	return b.String()
}

func (l Link) appendTo(b *strings.Builder) {
	b.WriteString("L:")
	b.WriteByte(byte(l.FromStrand))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(l.To))
	b.WriteByte(':')
	b.WriteByte(byte(l.ToStrand))
}

// JoinLinks renders descriptors separated by single spaces.
func JoinLinks(links []Link) string {
	var b strings.Builder
	for i, l := range links {
		if i > 0 {
			b.WriteByte(' ')
		}
		l.appendTo(&b)
	}
	return b.String()
}

// Head is the per-unitig projection kept between the two passes.
type Head struct {
	ID       int
	Label    string
	LeftKmer string
}

// Unitig is what writers receive: the re-read sequence plus its identity,
// passthrough label and inferred links.
type Unitig struct {
	ID    int
	Label string
	Seq   []byte
	Links []Link
}
