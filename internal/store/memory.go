// Package store holds one vector per indexed document and answers
// nearest-neighbor queries by exhaustive Euclidean scan.
package store

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"textmatch/internal/domain"
)

// Memory is an in-memory document vector store. Scans run in insertion
// order, which makes tie-breaking ("first document at the minimum
// distance wins") reproducible. Re-inserting an id replaces its vector
// but keeps its original scan position.
type Memory struct {
	mu        sync.RWMutex
	dimension int
	ids       []string
	vectors   map[string][]float64
}

// Entry is one stored (id, vector) pair.
type Entry struct {
	ID     string
	Vector []float64
}

// NewMemory creates an empty store for vectors of the given dimension.
func NewMemory(dimension int) *Memory {
	return &Memory{dimension: dimension, vectors: make(map[string][]float64)}
}

// Insert stores a vector under id, overwriting any prior vector.
func (m *Memory) Insert(id string, vec []float64) error {
	if len(vec) != m.dimension {
		return fmt.Errorf("vector dimension %d does not match store dimension %d", len(vec), m.dimension)
	}
	if id == "" {
		return errors.New("empty document id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vectors[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.vectors[id] = vec
	return nil
}

// Get returns the vector stored under id.
func (m *Memory) Get(id string) ([]float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	vec, ok := m.vectors[id]
	if !ok {
		return nil, fmt.Errorf("%w: document %q", domain.ErrNotFound, id)
	}
	return vec, nil
}

// All returns every stored entry in insertion order.
func (m *Memory) All() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]Entry, 0, len(m.ids))
	for _, id := range m.ids {
		entries = append(entries, Entry{ID: id, Vector: m.vectors[id]})
	}
	return entries
}

// IDs returns the stored document ids in insertion order.
func (m *Memory) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, len(m.ids))
	copy(ids, m.ids)
	return ids
}

// Len returns the number of stored documents.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.ids)
}

// Nearest scans every stored vector and returns the id closest to query
// by Euclidean distance. The first candidate always beats the initial
// bound, and the first document at the minimum wins ties. ok is false
// when the store is empty.
func (m *Memory) Nearest(query []float64) (id string, distance float64, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	best := math.Inf(1)
	for _, docID := range m.ids {
		d := euclidean(query, m.vectors[docID])
		if d < best {
			best = d
			id = docID
			ok = true
		}
	}
	if !ok {
		return "", 0, false
	}
	return id, best, true
}

// Distances returns the distance from query to every stored vector, in
// insertion order.
func (m *Memory) Distances(query []float64) []domain.DocumentDistance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.DocumentDistance, 0, len(m.ids))
	for _, docID := range m.ids {
		out = append(out, domain.DocumentDistance{
			ID:       docID,
			Distance: euclidean(query, m.vectors[docID]),
		})
	}
	return out
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
