// Package index builds the term vocabulary and its per-term global
// weights from a corpus. The vocabulary fixes the dimension of every
// vector produced afterwards and must not change while vectors exist;
// both types here are immutable after construction.
package index

import (
	"sort"

	"textmatch/internal/text"
)

// Vocabulary is a fixed, ordered set of terms with the raw occurrence
// frequency accumulated for each. Position i in the term order is
// coordinate i of every vector built against this vocabulary.
type Vocabulary struct {
	terms []string
	pos   map[string]int
	freq  map[string]int
	total int
}

// Build folds every document's normalized tokens into a fresh frequency
// table with increment 1, then folds the seed terms with increment 0. A
// seed term absent from the corpus therefore stays at frequency 1 no
// matter how often it is listed, while a seed already present in the
// corpus keeps its corpus count.
//
// Terms are ordered by descending raw frequency, ties broken
// lexicographically, so vector dimensions are stable across runs.
func Build(docs map[string]string, seeds []string, norm *text.Normalizer) *Vocabulary {
	freq := make(map[string]int)
	for _, content := range docs {
		fold(freq, norm.Tokenize(content), 1)
	}
	for _, seed := range seeds {
		fold(freq, norm.Tokenize(seed), 0)
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		fi, fj := freq[terms[i]], freq[terms[j]]
		if fi != fj {
			return fi > fj
		}
		return terms[i] < terms[j]
	})

	pos := make(map[string]int, len(terms))
	total := 0
	for i, term := range terms {
		pos[term] = i
		total += freq[term]
	}
	return &Vocabulary{terms: terms, pos: pos, freq: freq, total: total}
}

// fold applies the first-seen rule: a term new to the table enters at
// count 1; every later occurrence adds increment.
func fold(freq map[string]int, tokens []string, increment int) {
	for _, t := range tokens {
		if _, ok := freq[t]; !ok {
			freq[t] = 1
		} else {
			freq[t] += increment
		}
	}
}

// Terms returns the ordered term list. Callers must not mutate it.
func (v *Vocabulary) Terms() []string { return v.terms }

// Len returns the vocabulary size, i.e. the vector dimension.
func (v *Vocabulary) Len() int { return len(v.terms) }

// Position returns the fixed dimension index of term.
func (v *Vocabulary) Position(term string) (int, bool) {
	i, ok := v.pos[term]
	return i, ok
}

// Frequency returns the raw occurrence count of term, zero if unknown.
func (v *Vocabulary) Frequency(term string) int { return v.freq[term] }

// TotalMass returns the sum of all raw frequencies.
func (v *Vocabulary) TotalMass() int { return v.total }
