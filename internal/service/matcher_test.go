package service

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"textmatch/internal/domain"
)

// mapProvider is a CorpusProvider backed by an in-memory map.
type mapProvider map[string]string

func (m mapProvider) Load() (map[string]string, error) { return m, nil }

func quietOptions(opts Options) Options {
	opts.Logger = log.New(io.Discard)
	return opts
}

func newMatcher(t *testing.T, corpus map[string]string, opts Options) *Matcher {
	t.Helper()
	m, err := New(mapProvider(corpus), quietOptions(opts))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestEndToEndCatDog(t *testing.T) {
	corpus := map[string]string{
		"doc1": "the cat sat",
		"doc2": "the dog ran",
	}
	m := newMatcher(t, corpus, Options{
		Language: "english",
		Policy:   domain.PolicyReplace,
		Seeds:    []string{"cat"},
	})

	vocab := m.Vocabulary()
	for _, term := range []string{"cat", "sat", "dog", "ran"} {
		if _, ok := vocab.Position(term); !ok {
			t.Errorf("vocabulary missing %q (terms %v)", term, vocab.Terms())
		}
	}
	if _, ok := vocab.Position("the"); ok {
		t.Error("stop-word entered the vocabulary")
	}
	// "cat" occurs once in doc1; seeding an already-present term must
	// not double-count it.
	if got := vocab.Frequency("cat"); got != 1 {
		t.Errorf("Frequency(cat) = %d, want 1", got)
	}

	match, err := m.Search("cat")
	if err != nil {
		t.Fatal(err)
	}
	if !match.Found || match.DocumentID != "doc1" {
		t.Errorf("Search(cat) = %+v, want doc1", match)
	}
	if math.IsInf(match.Distance, 0) || math.IsNaN(match.Distance) {
		t.Errorf("distance = %v, want finite", match.Distance)
	}
}

func TestUnknownLanguage(t *testing.T) {
	_, err := New(mapProvider{"d": "alpha"}, quietOptions(Options{Language: "klingon"}))
	if !errors.Is(err, domain.ErrUnknownLanguage) {
		t.Fatalf("err = %v, want ErrUnknownLanguage", err)
	}
}

func TestUnknownPolicy(t *testing.T) {
	_, err := New(mapProvider{"d": "alpha"}, quietOptions(Options{
		Language: "english",
		Policy:   domain.IndexPolicy("bogus"),
	}))
	if !errors.Is(err, domain.ErrUnknownIndexPolicy) {
		t.Fatalf("err = %v, want ErrUnknownIndexPolicy", err)
	}
}

func TestEmptyCorpus(t *testing.T) {
	_, err := New(mapProvider{}, quietOptions(Options{Language: "english"}))
	if !errors.Is(err, domain.ErrEmptyVocabulary) {
		t.Fatalf("err = %v, want ErrEmptyVocabulary", err)
	}
}

func TestPolicySeparate(t *testing.T) {
	corpus := map[string]string{"a": "alpha", "b": "beta"}
	m := newMatcher(t, corpus, Options{
		Language: "english",
		Policy:   domain.PolicySeparate,
		Extra:    map[string]string{"x": "alpha alpha"},
	})
	if got := m.Summary(); got != "x" {
		t.Errorf("Summary = %q, want %q", got, "x")
	}
}

func TestPolicySeparateEmptyStore(t *testing.T) {
	m := newMatcher(t, map[string]string{"a": "alpha"}, Options{
		Language: "english",
		Policy:   domain.PolicySeparate,
	})
	match, err := m.Search("alpha")
	if err != nil {
		t.Fatal(err)
	}
	if match.Found {
		t.Errorf("empty store produced a match: %+v", match)
	}
}

func TestPolicyUnionExtraWinsOnCollision(t *testing.T) {
	corpus := map[string]string{"a": "alpha", "b": "beta"}
	m := newMatcher(t, corpus, Options{
		Language: "english",
		Policy:   domain.PolicyUnion,
		Extra:    map[string]string{"a": "beta"},
	})
	if got := m.Summary(); got != "a, b" {
		t.Fatalf("Summary = %q, want %q", got, "a, b")
	}
	// Both stored vectors now embed "beta"; the query ties at distance
	// zero and the first scanned document wins. Had the corpus version
	// of "a" survived, "b" would be strictly closer.
	match, err := m.Search("beta")
	if err != nil {
		t.Fatal(err)
	}
	if !match.Found || match.DocumentID != "a" {
		t.Errorf("Search(beta) = %+v, want a (extra content must win)", match)
	}
}

func TestZeroVectorQuery(t *testing.T) {
	corpus := map[string]string{
		"heavy": "alpha",
		"light": "beta beta beta",
	}
	m := newMatcher(t, corpus, Options{Language: "english"})
	// vocabulary: alpha=1, beta=3, mass=4; "heavy" has norm ln(4),
	// "light" has norm ln(4/3): the zero vector lands nearer "light".
	for _, q := range []string{"the of and", "quixot"} {
		match, err := m.Search(q)
		if err != nil {
			t.Fatalf("Search(%q): %v", q, err)
		}
		if !match.Found || match.DocumentID != "light" {
			t.Errorf("Search(%q) = %+v, want light (smallest norm)", q, match)
		}
		if len(match.Recognized) != 0 {
			t.Errorf("Recognized = %v, want none", match.Recognized)
		}
	}
}

func TestSingleDocumentAlwaysFound(t *testing.T) {
	m := newMatcher(t, map[string]string{"only": "alpha beta"}, Options{Language: "english"})
	match, err := m.Search("gamma delta")
	if err != nil {
		t.Fatal(err)
	}
	if !match.Found || match.DocumentID != "only" {
		t.Errorf("match = %+v, want only", match)
	}
	if math.IsInf(match.Distance, 0) {
		t.Errorf("distance = %v, want finite", match.Distance)
	}
}

func TestSelfMatchIsLocalOptimum(t *testing.T) {
	corpus := map[string]string{
		"d1": "alpha beta",
		"d2": "gamma delta",
		"d3": "alpha gamma",
	}
	m := newMatcher(t, corpus, Options{Language: "english"})
	match, err := m.SearchVerbose("gamma delta")
	if err != nil {
		t.Fatal(err)
	}
	if match.DocumentID != "d2" {
		t.Errorf("self-match = %+v, want d2", match)
	}
	best := match.Distance
	for _, dd := range match.Distances {
		if dd.Distance < best {
			t.Errorf("doc %s at %v closer than self-match %v", dd.ID, dd.Distance, best)
		}
	}
}

func TestSearchVerboseDistances(t *testing.T) {
	corpus := map[string]string{"a": "alpha", "b": "beta"}
	m := newMatcher(t, corpus, Options{Language: "english"})

	plain, err := m.Search("alpha")
	if err != nil {
		t.Fatal(err)
	}
	if plain.Distances != nil {
		t.Errorf("plain search populated Distances: %v", plain.Distances)
	}

	verbose, err := m.SearchVerbose("alpha")
	if err != nil {
		t.Fatal(err)
	}
	if len(verbose.Distances) != 2 {
		t.Fatalf("Distances = %v, want 2 entries", verbose.Distances)
	}
	if len(verbose.Recognized) != 1 || verbose.Recognized[0] != "alpha" {
		t.Errorf("Recognized = %v, want [alpha]", verbose.Recognized)
	}
}

func TestSummaryScanOrder(t *testing.T) {
	corpus := map[string]string{"c": "alpha", "a": "beta", "b": "gamma"}
	m := newMatcher(t, corpus, Options{Language: "english"})
	if got := m.Summary(); got != "a, b, c" {
		t.Errorf("Summary = %q, want sorted scan order %q", got, "a, b, c")
	}
}

func TestDocumentWithoutRecognizableTerms(t *testing.T) {
	// A stop-word-only document is stored at the origin rather than
	// aborting indexing.
	corpus := map[string]string{
		"empty": "the of and",
		"full":  "alpha beta",
	}
	m := newMatcher(t, corpus, Options{Language: "english"})
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	match, err := m.Search("alpha")
	if err != nil {
		t.Fatal(err)
	}
	if match.DocumentID != "full" {
		t.Errorf("match = %+v, want full", match)
	}
}
