// Package vectorize converts arbitrary text into a dense vector over a
// fixed vocabulary: each coordinate is the term's global weight times
// its local rate within the text.
package vectorize

import (
	"textmatch/internal/domain"
	"textmatch/internal/index"
	"textmatch/internal/text"
)

// Vectorizer embeds text against one shared vocabulary and weight
// table. It is stateless per call and safe for concurrent use.
type Vectorizer struct {
	vocab   *index.Vocabulary
	weights *index.Weights
	norm    *text.Normalizer
}

// New creates a vectorizer over the given vocabulary and weights. The
// normalizer must be the same one the vocabulary was built with.
func New(vocab *index.Vocabulary, weights *index.Weights, norm *text.Normalizer) *Vectorizer {
	return &Vectorizer{vocab: vocab, weights: weights, norm: norm}
}

// Vectorize embeds s into a vector of vocabulary dimension. Token
// counts live in a call-local table that is never merged back into the
// vocabulary. Tokens outside the vocabulary contribute nothing. Returns
// domain.ErrEmptyText when no tokens survive normalization.
func (v *Vectorizer) Vectorize(s string) ([]float64, error) {
	local := make(map[string]int)
	total := 0
	for _, tok := range v.norm.Tokenize(s) {
		local[tok]++
		total++
	}
	if total == 0 {
		return nil, domain.ErrEmptyText
	}
	vec := make([]float64, v.vocab.Len())
	for term, count := range local {
		pos, ok := v.vocab.Position(term)
		if !ok {
			continue
		}
		vec[pos] = v.weights.At(pos) * (float64(count) / float64(total))
	}
	return vec, nil
}

// Zero returns the all-zero vector of vocabulary dimension.
func (v *Vectorizer) Zero() []float64 {
	return make([]float64, v.vocab.Len())
}

// Recognized returns the vocabulary terms with a strictly positive
// coordinate in vec, in vocabulary order.
func (v *Vectorizer) Recognized(vec []float64) []string {
	var terms []string
	for i, val := range vec {
		if val > 0 {
			terms = append(terms, v.vocab.Terms()[i])
		}
	}
	return terms
}
