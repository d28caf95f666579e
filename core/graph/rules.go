// core/graph/rules.go
package graph

// rule is one row of the orientation table: the strands written on the
// first extremity's unitig when it meets the second extremity.
type rule struct {
	from, to Strand
	ok       bool
}

// state packs (End, Orientation) into 0..3.
func state(e Extremity) int { return int(e.End)*2 + int(e.Orientation) }

const (
	prefixCanonical = iota
	prefixReversed
	suffixCanonical
	suffixReversed
)

// rules[a][b] describes a link from an extremity in state a to one in state b.
// Only complementary pairs produce an edge.
var rules = func() (t [4][4]rule) {
	t[prefixCanonical][prefixReversed] = rule{Forward, Reverse, true}
	t[prefixCanonical][suffixCanonical] = rule{Forward, Forward, true}
	t[prefixReversed][prefixCanonical] = rule{Reverse, Forward, true}
	t[prefixReversed][suffixReversed] = rule{Reverse, Reverse, true}
	t[suffixCanonical][prefixCanonical] = rule{Forward, Forward, true}
	t[suffixCanonical][suffixReversed] = rule{Forward, Reverse, true}
	t[suffixReversed][prefixReversed] = rule{Reverse, Reverse, true}
	t[suffixReversed][suffixCanonical] = rule{Reverse, Forward, true}
	return t
}()

// resolve looks up the edge a→b. ok is false when the pair does not connect.
func resolve(a, b Extremity) (from, to Strand, ok bool) {
	r := rules[state(a)][state(b)]
	return r.from, r.to, r.ok
}
