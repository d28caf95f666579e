// core/graph/index.go
package graph

import (
	"github.com/tidwall/btree"

	"ggcat2bcalm/core/dna"
)

// IndexOptions tunes extremity indexing.
type IndexOptions struct {
	// AllowDuplicateKmers accepts unitigs that share a leftmost k-mer. Links
	// are keyed by identity, so this is safe; it is refused by default because
	// BCALM-style consumers join on that k-mer.
	AllowDuplicateKmers bool
}

// Index files every unitig extremity under the canonical form of its boundary
// (k-1)-mer. Buckets are kept in key order so that inference is reproducible;
// extremities inside a bucket keep encounter order.
type Index struct {
	k           int
	opts        IndexOptions
	buckets     btree.Map[string, *bucket]
	heads       []Head
	extremities int
	leftmost    map[string]int
}

type bucket struct {
	ext []Extremity
}

// NewIndex returns an empty index for k-mers of size k.
func NewIndex(k int, opts IndexOptions) (*Index, error) {
	if k < 2 {
		return nil, ErrInvalidK
	}
	x := &Index{k: k, opts: opts}
	if !opts.AllowDuplicateKmers {
		x.leftmost = make(map[string]int)
	}
	return x, nil
}

// K is the k-mer size the index was built for.
func (x *Index) K() int { return x.k }

// Add assigns the next identity to a unitig and files its two extremities.
// The prefix extremity is filed before the suffix one.
func (x *Index) Add(label string, seq []byte) (Head, error) {
	id := len(x.heads)
	k := x.k
	if len(seq) < k {
		return Head{}, &RecordError{Index: id, Kmer: preview(seq), Err: ErrSequenceTooShort}
	}
	left := seq[:k]
	right := seq[len(seq)-k:]

	pCanon, pKey, err := dna.Canonicalize(left[:k-1])
	if err != nil {
		return Head{}, &RecordError{Index: id, Kmer: string(left), Err: err}
	}
	sCanon, sKey, err := dna.Canonicalize(right[1:])
	if err != nil {
		return Head{}, &RecordError{Index: id, Kmer: string(right), Err: err}
	}

	h := Head{ID: id, Label: label, LeftKmer: string(left)}
	if x.leftmost != nil {
		if prev, dup := x.leftmost[h.LeftKmer]; dup {
			return Head{}, &RecordError{Index: id, Kmer: h.LeftKmer, Err: duplicateOf(prev)}
		}
		x.leftmost[h.LeftKmer] = id
	}

	x.file(string(pKey), Extremity{Fragment: id, End: Prefix, Orientation: orientation(pCanon)})
	x.file(string(sKey), Extremity{Fragment: id, End: Suffix, Orientation: orientation(sCanon)})
	x.heads = append(x.heads, h)
	return h, nil
}

func (x *Index) file(key string, e Extremity) {
	b, ok := x.buckets.Get(key)
	if !ok {
		b = &bucket{}
		x.buckets.Set(key, b)
	}
	b.ext = append(b.ext, e)
	x.extremities++
}

func orientation(canonical bool) Orientation {
	if canonical {
		return Canonical
	}
	return Reversed
}

// Len is the number of indexed unitigs.
func (x *Index) Len() int { return len(x.heads) }

// Extremities is the number of filed extremities (always 2*Len).
func (x *Index) Extremities() int { return x.extremities }

// Buckets is the number of distinct canonical keys.
func (x *Index) Buckets() int { return x.buckets.Len() }

// Heads returns the unitig projections in identity order. Callers must not
// modify the slice.
func (x *Index) Heads() []Head { return x.heads }

// Head returns the projection for identity id.
func (x *Index) Head(id int) (Head, bool) {
	if id < 0 || id >= len(x.heads) {
		return Head{}, false
	}
	return x.heads[id], true
}

// Bucket returns the extremities filed under a canonical key.
func (x *Index) Bucket(key string) ([]Extremity, bool) {
	b, ok := x.buckets.Get(key)
	if !ok {
		return nil, false
	}
	return b.ext, true
}

// Scan visits buckets in ascending key order until fn returns false.
func (x *Index) Scan(fn func(key string, ext []Extremity) bool) {
	x.buckets.Scan(func(key string, b *bucket) bool {
		return fn(key, b.ext)
	})
}
