// Package ngram computes adjacent-pair (bigram) frequencies over a tokenized
// corpus and selects the highest-count pairs.
package ngram

import "sort"

// Pair is an ordered pair of adjacent tokens within one line. Order matters
// for counting: (a,b) and (b,a) are distinct keys unless counting is
// canonicalized.
type Pair struct {
	A, B string
}

// Canonical returns the pair with its tokens in lexicographic order.
func (p Pair) Canonical() Pair {
	if p.A > p.B {
		return Pair{A: p.B, B: p.A}
	}
	return p
}

// Unordered reports whether two pairs denote the same unordered token pair.
func (p Pair) Unordered(q Pair) bool {
	return p.Canonical() == q.Canonical()
}

// Bigrams returns the adjacent pairs of a token sequence, left to right.
// Sequences of fewer than two tokens yield no pairs; pairs never span lines,
// so callers extract per line.
func Bigrams(tokens []string) []Pair {
	if len(tokens) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(tokens)-1)
	for i := 0; i+1 < len(tokens); i++ {
		pairs = append(pairs, Pair{A: tokens[i], B: tokens[i+1]})
	}
	return pairs
}

// Entry is a ranked frequency table row.
type Entry struct {
	Pair  Pair
	Count int
}

// Table counts occurrences of each distinct pair. It also records the order
// in which pairs were first seen, which is the tie-break for ranking.
type Table struct {
	counts map[Pair]int
	order  []Pair // first-seen order
}

// NewTable returns an empty frequency table.
func NewTable() *Table {
	return &Table{counts: make(map[Pair]int)}
}

// Add counts one occurrence of p.
func (t *Table) Add(p Pair) {
	if _, seen := t.counts[p]; !seen {
		t.order = append(t.order, p)
	}
	t.counts[p]++
}

// Count returns the occurrence count for p.
func (t *Table) Count(p Pair) int { return t.counts[p] }

// Len returns the number of distinct pairs.
func (t *Table) Len() int { return len(t.counts) }

// Total returns the sum of all counts, which equals the number of bigrams
// added.
func (t *Table) Total() int {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	return total
}

// TopN returns the n highest-count entries, count descending, ties broken by
// first-seen order. Returns fewer than n entries when the table is smaller.
func (t *Table) TopN(n int) []Entry {
	if n <= 0 {
		return nil
	}

	ranked := make([]Entry, len(t.order))
	for i, p := range t.order {
		ranked[i] = Entry{Pair: p, Count: t.counts[p]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// Count builds a frequency table from tokenized lines. When canonical is
// true each pair is alphabetically ordered before counting, merging the two
// orientations of an unordered pair into one key.
func Count(lines [][]string, canonical bool) *Table {
	t := NewTable()
	for _, line := range lines {
		for _, p := range Bigrams(line) {
			if canonical {
				p = p.Canonical()
			}
			t.Add(p)
		}
	}
	return t
}
