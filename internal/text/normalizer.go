// Package text turns raw text into normalized terms: lowercased,
// stop-word-filtered, Snowball-stemmed tokens suitable as vocabulary
// keys.
package text

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"

	"textmatch/internal/domain"
)

//go:embed stopwords_english.txt stopwords_german.txt
var stopwordFiles embed.FS

// Normalizer produces normalized tokens for one language. Construction
// fails for languages without a stop-word list or stemmer; after that it
// is immutable and safe to share.
type Normalizer struct {
	language  string
	stopwords map[string]struct{}
}

// NewNormalizer creates a normalizer for the given language. Supported
// languages are "english" and "german".
func NewNormalizer(language string) (*Normalizer, error) {
	stop, err := loadStopwords(language)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, language)
	}
	return &Normalizer{language: language, stopwords: stop}, nil
}

// Language returns the configured language tag.
func (n *Normalizer) Language() string { return n.language }

// Stopwords returns the stop-word set for the configured language.
// Callers must not mutate it.
func (n *Normalizer) Stopwords() map[string]struct{} { return n.stopwords }

// Tokenize lowercases s, splits it on non-letter/digit boundaries,
// discards tokens of length <= 1 and stop-words (checked on the raw
// token, before stemming), and stems the survivors.
func (n *Normalizer) Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var tokens []string
	for _, t := range raw {
		if len(t) <= 1 {
			continue
		}
		if _, stop := n.stopwords[t]; stop {
			continue
		}
		stemmed := n.Normalize(t)
		if stemmed == "" {
			continue
		}
		tokens = append(tokens, stemmed)
	}
	return tokens
}

// Normalize stems a single already-lowercased token.
func (n *Normalizer) Normalize(token string) string {
	stemmed, err := snowball.Stem(token, n.language, true)
	if err != nil {
		// Language validity is checked at construction; a per-token
		// failure leaves the token as-is.
		return token
	}
	return stemmed
}

func loadStopwords(language string) (map[string]struct{}, error) {
	data, err := stopwordFiles.ReadFile("stopwords_" + language + ".txt")
	if err != nil {
		return nil, err
	}
	stop := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		stop[word] = struct{}{}
	}
	return stop, scanner.Err()
}
