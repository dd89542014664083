package domain

import "fmt"

// Document is a single piece of corpus text keyed by identifier.
type Document struct {
	ID      string
	Path    string
	Content string
}

// DocumentDistance pairs an indexed document with its Euclidean distance
// to a query vector.
type DocumentDistance struct {
	ID       string
	Distance float64
}

// Match is the outcome of a similarity search. Found is false when the
// document store is empty; that is a well-defined "no match" result, not
// an error. Distances is only populated in verbose searches.
type Match struct {
	DocumentID string
	Distance   float64
	Found      bool
	Recognized []string
	Distances  []DocumentDistance
}

// IndexPolicy selects which documents populate the document store.
type IndexPolicy string

const (
	// PolicyReplace indexes exactly the corpus documents.
	PolicyReplace IndexPolicy = "replace"
	// PolicySeparate indexes only the caller-given documents.
	PolicySeparate IndexPolicy = "separate"
	// PolicyUnion indexes the corpus merged with the caller-given
	// documents; caller-given entries win on id collision.
	PolicyUnion IndexPolicy = "union"
)

// ParsePolicy validates a policy string. The empty string defaults to
// PolicyReplace.
func ParsePolicy(s string) (IndexPolicy, error) {
	switch IndexPolicy(s) {
	case PolicyReplace, "":
		return PolicyReplace, nil
	case PolicySeparate:
		return PolicySeparate, nil
	case PolicyUnion:
		return PolicyUnion, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownIndexPolicy, s)
	}
}

// CorpusProvider supplies raw text keyed by document identifier.
// Implementations own file discovery and format-specific extraction.
type CorpusProvider interface {
	Load() (map[string]string, error)
}
