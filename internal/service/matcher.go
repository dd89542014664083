// Package service wires the corpus, vocabulary, weight table,
// vectorizer, and document store into the caller-facing matcher.
package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"textmatch/internal/domain"
	"textmatch/internal/index"
	"textmatch/internal/store"
	"textmatch/internal/text"
	"textmatch/internal/vectorize"
)

// Options configures matcher construction.
type Options struct {
	// Language selects the normalization pipeline ("english", "german").
	Language string
	// Policy selects which documents populate the store.
	Policy domain.IndexPolicy
	// Seeds are terms guaranteed a vocabulary slot even when absent
	// from the corpus (raw frequency 1, never incremented by seeding).
	Seeds []string
	// Extra holds caller-given documents for the separate and union
	// policies, keyed by document id.
	Extra map[string]string
	// Logger receives per-document diagnostics. Defaults to the
	// package-level default logger.
	Logger *log.Logger
}

// Matcher owns one corpus snapshot: the vocabulary and weights built
// from it, and the document store populated against them. Vocabulary
// and weights are read-only after New; rebuilding means constructing a
// new Matcher.
type Matcher struct {
	norm       *text.Normalizer
	vocab      *index.Vocabulary
	weights    *index.Weights
	vectorizer *vectorize.Vectorizer
	store      *store.Memory
	log        *log.Logger
}

// New builds the vocabulary and weight table from the provider's corpus
// plus seed terms, then populates the document store according to the
// policy. Configuration errors (unknown language or policy) surface
// immediately.
func New(provider domain.CorpusProvider, opts Options) (*Matcher, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	norm, err := text.NewNormalizer(opts.Language)
	if err != nil {
		return nil, err
	}

	corpusDocs, err := provider.Load()
	if err != nil {
		return nil, err
	}

	vocab := index.Build(corpusDocs, opts.Seeds, norm)
	weights, err := index.ComputeWeights(vocab)
	if err != nil {
		return nil, err
	}

	docs, err := selectDocuments(opts.Policy, corpusDocs, opts.Extra)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		norm:       norm,
		vocab:      vocab,
		weights:    weights,
		vectorizer: vectorize.New(vocab, weights, norm),
		store:      store.NewMemory(vocab.Len()),
		log:        logger,
	}
	if err := m.insertDocuments(docs); err != nil {
		return nil, err
	}
	return m, nil
}

func selectDocuments(policy domain.IndexPolicy, corpusDocs, extra map[string]string) (map[string]string, error) {
	switch policy {
	case domain.PolicyReplace, "":
		return corpusDocs, nil
	case domain.PolicySeparate:
		return extra, nil
	case domain.PolicyUnion:
		merged := make(map[string]string, len(corpusDocs)+len(extra))
		for id, content := range corpusDocs {
			merged[id] = content
		}
		for id, content := range extra {
			merged[id] = content
		}
		return merged, nil
	default:
		_, err := domain.ParsePolicy(string(policy))
		return nil, err
	}
}

// insertDocuments vectorizes and stores docs in sorted-id order, fixing
// the scan order that tie-breaking depends on.
func (m *Matcher) insertDocuments(docs map[string]string) error {
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		vec, err := m.vectorizer.Vectorize(docs[id])
		if errors.Is(err, domain.ErrEmptyText) {
			// A document with no surviving tokens still occupies a
			// point in the space: the origin.
			m.log.Warn("document has no recognizable terms", "doc", id)
			vec = m.vectorizer.Zero()
		} else if err != nil {
			return err
		}
		if err := m.store.Insert(id, vec); err != nil {
			return err
		}
	}
	return nil
}

// Search returns the stored document closest to query by Euclidean
// distance. A query with no surviving tokens competes as the zero
// vector rather than failing. An empty store yields Found == false.
func (m *Matcher) Search(query string) (domain.Match, error) {
	return m.search(query, false)
}

// SearchVerbose is Search plus per-document distances and debug logs.
func (m *Matcher) SearchVerbose(query string) (domain.Match, error) {
	return m.search(query, true)
}

func (m *Matcher) search(query string, verbose bool) (domain.Match, error) {
	vec, err := m.vectorizer.Vectorize(query)
	if errors.Is(err, domain.ErrEmptyText) {
		vec = m.vectorizer.Zero()
	} else if err != nil {
		return domain.Match{}, err
	}

	match := domain.Match{Recognized: m.vectorizer.Recognized(vec)}
	if verbose {
		match.Distances = m.store.Distances(vec)
		m.log.Debug("query vectorized", "recognized", strings.Join(match.Recognized, " "))
		for _, dd := range match.Distances {
			m.log.Debug("candidate", "doc", dd.ID, "distance", dd.Distance)
		}
	}

	id, dist, ok := m.store.Nearest(vec)
	if !ok {
		return match, nil
	}
	match.DocumentID = id
	match.Distance = dist
	match.Found = true
	return match, nil
}

// Summary lists every indexed document id in scan order.
func (m *Matcher) Summary() string {
	return strings.Join(m.store.IDs(), ", ")
}

// Vocabulary returns the corpus vocabulary.
func (m *Matcher) Vocabulary() *index.Vocabulary { return m.vocab }

// Weights returns the term weight table.
func (m *Matcher) Weights() *index.Weights { return m.weights }

// Len returns the number of indexed documents.
func (m *Matcher) Len() int { return m.store.Len() }
