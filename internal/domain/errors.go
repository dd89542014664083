package domain

import "errors"

var (
	// ErrUnknownLanguage reports an unsupported normalization language
	// at construction time.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrUnknownIndexPolicy reports an invalid document-population mode.
	ErrUnknownIndexPolicy = errors.New("unknown index policy")

	// ErrEmptyVocabulary reports weight computation over a vocabulary
	// with zero total frequency mass.
	ErrEmptyVocabulary = errors.New("empty vocabulary")

	// ErrZeroFrequency reports a vocabulary term with raw frequency
	// zero. The fold rule seeds every term at one, so this guards an
	// impossible division rather than an expected state.
	ErrZeroFrequency = errors.New("zero raw frequency")

	// ErrEmptyText reports that no tokens survived normalization.
	ErrEmptyText = errors.New("no tokens survived normalization")

	// ErrNotFound reports a lookup of an unindexed term or document.
	ErrNotFound = errors.New("not found")
)
