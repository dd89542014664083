package index

import (
	"fmt"
	"math"

	"textmatch/internal/domain"
)

// Weights maps every vocabulary term to its inverse total-frequency
// weight, ln(totalMass / rawFrequency). A term that occupies the whole
// corpus mass weighs exactly zero; a term seen only a handful of times
// out of a large mass weighs high. This is rarity relative to total
// token mass, not classical inverse document frequency.
type Weights struct {
	vocab *Vocabulary
	byPos []float64
}

// ComputeWeights derives the weight table from a built vocabulary.
func ComputeWeights(v *Vocabulary) (*Weights, error) {
	if v.TotalMass() == 0 {
		return nil, domain.ErrEmptyVocabulary
	}
	total := float64(v.TotalMass())
	byPos := make([]float64, v.Len())
	for i, term := range v.Terms() {
		f := v.Frequency(term)
		if f == 0 {
			return nil, fmt.Errorf("%w: term %q", domain.ErrZeroFrequency, term)
		}
		byPos[i] = math.Log(total / float64(f))
	}
	return &Weights{vocab: v, byPos: byPos}, nil
}

// Weight returns the weight of a vocabulary term.
func (w *Weights) Weight(term string) (float64, error) {
	i, ok := w.vocab.Position(term)
	if !ok {
		return 0, fmt.Errorf("%w: term %q", domain.ErrNotFound, term)
	}
	return w.byPos[i], nil
}

// At returns the weight at a vocabulary position.
func (w *Weights) At(pos int) float64 { return w.byPos[pos] }

// Vocabulary returns the vocabulary these weights were derived from.
func (w *Weights) Vocabulary() *Vocabulary { return w.vocab }
