package classifier

import (
	"fmt"
	"slices"
	"sort"
	"unicode/utf8"
)

const (
	// gramLen is the byte length of the literal fragments large buckets are
	// keyed by.
	gramLen = 4
	// gramIndexMin is the bucket size from which a gram index is built.
	gramIndexMin = 64
)

// Index groups compiled patterns by their leading literal run so that a
// query only evaluates patterns whose prefix agrees with the input. Large
// groups are further keyed by the rarest 4-byte fragment of each pattern's
// remaining literals, so only patterns whose key occurs in the input are
// evaluated.
type Index struct {
	patterns []CompiledPattern
	// buckets maps a normalized prefix to its patterns.
	buckets map[string]*bucket
	// prefixLens lists the distinct bucket key lengths, longest first.
	prefixLens []int
	// catchAll holds patterns starting with a wildcard.
	catchAll    *bucket
	defaultSlot int
}

// bucket holds positions in Index.patterns, best rank first. grams is nil
// for small buckets, which are scanned in full.
type bucket struct {
	order []int32
	// grams maps a fragment to indices into order, ascending.
	grams map[string][]int32
	// unkeyed lists indices into order of patterns without a usable
	// fragment, ascending. They are candidates for every query.
	unkeyed []int32
}

// IndexStats describes the shape of a built index.
type IndexStats struct {
	Patterns       int    `json:"patterns"`
	Buckets        int    `json:"buckets"`
	LargestBucket  int    `json:"largest_bucket"`
	LargestPrefix  string `json:"largest_prefix"`
	GramIndexed    int    `json:"gram_indexed"`
	Unkeyed        int    `json:"unkeyed"`
	CatchAll       int    `json:"catch_all"`
	DefaultPattern string `json:"default_pattern"`
}

// BuildIndex organizes patterns into prefix buckets. The dataset must
// contain a universal "*" pattern; without it some inputs would resolve to
// nothing and ErrMissingDefaultPattern is returned.
func BuildIndex(patterns []CompiledPattern) (*Index, error) {
	idx := &Index{
		patterns:    patterns,
		buckets:     make(map[string]*bucket),
		defaultSlot: -1,
	}

	groups := make(map[string][]int32)
	var catchAll []int32
	for i := range patterns {
		cp := &patterns[i]
		if cp.isUniversal() && (idx.defaultSlot < 0 || ranksAbove(cp, &patterns[idx.defaultSlot])) {
			idx.defaultSlot = i
		}
		if cp.Prefix == "" {
			catchAll = append(catchAll, int32(i))
			continue
		}
		groups[cp.Prefix] = append(groups[cp.Prefix], int32(i))
	}

	if idx.defaultSlot < 0 {
		return nil, fmt.Errorf("%w: no entry with the pattern \"*\" among %d patterns", ErrMissingDefaultPattern, len(patterns))
	}

	lens := make(map[int]struct{})
	for prefix, order := range groups {
		idx.buckets[prefix] = idx.newBucket(order)
		lens[len(prefix)] = struct{}{}
	}
	idx.catchAll = idx.newBucket(catchAll)

	for l := range lens {
		idx.prefixLens = append(idx.prefixLens, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idx.prefixLens)))

	return idx, nil
}

// newBucket rank-sorts order and, for large buckets, keys every pattern by
// its least frequent fragment within the bucket.
func (idx *Index) newBucket(order []int32) *bucket {
	idx.sortBucket(order)
	b := &bucket{order: order}
	if len(order) < gramIndexMin {
		return b
	}

	freq := make(map[string]int)
	seen := make(map[string]struct{})
	for _, pos := range order {
		clear(seen)
		eachGram(&idx.patterns[pos], func(g string) {
			if _, ok := seen[g]; !ok {
				seen[g] = struct{}{}
				freq[g]++
			}
		})
	}

	b.grams = make(map[string][]int32)
	for i, pos := range order {
		key, rarest := "", 0
		eachGram(&idx.patterns[pos], func(g string) {
			if c := freq[g]; key == "" || c < rarest {
				key, rarest = g, c
			}
		})
		if key == "" {
			b.unkeyed = append(b.unkeyed, int32(i))
			continue
		}
		b.grams[key] = append(b.grams[key], int32(i))
	}
	return b
}

// eachGram calls fn for every fragment of the pattern's literal runs after
// the first token. The first token is either the bucket prefix, which every
// candidate shares, or a wildcard.
func eachGram(cp *CompiledPattern, fn func(g string)) {
	for _, tok := range cp.Tokens[1:] {
		if tok.Kind != TokenLiteral {
			continue
		}
		for i := 0; i+gramLen <= len(tok.Text); i++ {
			fn(tok.Text[i : i+gramLen])
		}
	}
}

func (idx *Index) sortBucket(bucket []int32) {
	sort.Slice(bucket, func(a, b int) bool {
		return ranksAbove(&idx.patterns[bucket[a]], &idx.patterns[bucket[b]])
	})
}

// Query returns the arena slot of the best entry matching input, or false
// when no pattern matches.
func (idx *Index) Query(input string) (int, bool) {
	s := Normalize(input)
	n := utf8.RuneCountInString(s)

	var buf []int32
	best := -1
	for _, l := range idx.prefixLens {
		if l > len(s) {
			continue
		}
		if b, ok := idx.buckets[s[:l]]; ok {
			best = idx.query(b, s, l, n, best, &buf)
		}
	}
	best = idx.query(idx.catchAll, s, 0, n, best, &buf)

	if best < 0 {
		return 0, false
	}
	return idx.patterns[best].Entry, true
}

// query evaluates the candidates of b whose fragments occur in s[from:].
// Fragments of a matching pattern lie after its prefix, so from is the
// bucket key length.
func (idx *Index) query(b *bucket, s string, from, n, best int, buf *[]int32) int {
	if b.grams == nil {
		return idx.scan(b.order, s, n, best)
	}
	if len(b.order) == 0 || (best >= 0 && !ranksAbove(&idx.patterns[b.order[0]], &idx.patterns[best])) {
		return best
	}

	cand := append((*buf)[:0], b.unkeyed...)
	for i := from; i+gramLen <= len(s); i++ {
		cand = append(cand, b.grams[s[i:i+gramLen]]...)
	}
	slices.Sort(cand)
	cand = slices.Compact(cand)
	*buf = cand

	for _, i := range cand {
		pos := b.order[i]
		cp := &idx.patterns[pos]
		if best >= 0 && !ranksAbove(cp, &idx.patterns[best]) {
			return best
		}
		if cp.accepts(s, n) {
			return int(pos)
		}
	}
	return best
}

// scan walks a rank-ordered bucket and returns the new best position. It
// stops at the first match, or at the first candidate that cannot outrank
// the current best.
func (idx *Index) scan(bucket []int32, s string, n int, best int) int {
	for _, pos := range bucket {
		cp := &idx.patterns[pos]
		if best >= 0 && !ranksAbove(cp, &idx.patterns[best]) {
			return best
		}
		if cp.accepts(s, n) {
			return int(pos)
		}
	}
	return best
}

// DefaultEntry returns the arena slot of the universal "*" entry.
func (idx *Index) DefaultEntry() int {
	return idx.patterns[idx.defaultSlot].Entry
}

// Stats reports bucket statistics.
func (idx *Index) Stats() IndexStats {
	stats := IndexStats{
		Patterns:       len(idx.patterns),
		Buckets:        len(idx.buckets),
		CatchAll:       len(idx.catchAll.order),
		DefaultPattern: idx.patterns[idx.defaultSlot].Pattern,
	}
	count := func(b *bucket) {
		if b.grams != nil {
			stats.GramIndexed++
			stats.Unkeyed += len(b.unkeyed)
		}
	}
	for prefix, b := range idx.buckets {
		count(b)
		if len(b.order) > stats.LargestBucket || (len(b.order) == stats.LargestBucket && prefix < stats.LargestPrefix) {
			stats.LargestBucket = len(b.order)
			stats.LargestPrefix = prefix
		}
	}
	count(idx.catchAll)
	return stats
}

// ranksAbove orders candidates: higher specificity, then longer pattern,
// then earlier declaration.
func ranksAbove(a, b *CompiledPattern) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Length != b.Length {
		return a.Length > b.Length
	}
	return a.Ordinal < b.Ordinal
}

func (cp *CompiledPattern) isUniversal() bool {
	return len(cp.Tokens) == 1 && cp.Tokens[0].Kind == TokenStar
}
