package graph

import (
	"sync"

	"github.com/c360studio/semstreams/message"
)

// MemStore is an in-memory Store keyed by subject. Insertion order is
// preserved per subject so that "first triple wins" resolution is
// deterministic. A mutex makes it safe to share between the CLI and tests;
// the core itself assumes a single writer per subject.
type MemStore struct {
	mu      sync.RWMutex
	triples map[string][]message.Triple
}

// NewMemStore creates an empty in-memory triple store.
func NewMemStore() *MemStore {
	return &MemStore{triples: make(map[string][]message.Triple)}
}

// FindTriples returns all triples matching (subject, predicate, *) in
// insertion order.
func (s *MemStore) FindTriples(subject, predicate string) ([]message.Triple, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []message.Triple
	for _, t := range s.triples[subject] {
		if t.Predicate == predicate {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// RemoveTriples deletes all triples matching (subject, predicate, *).
func (s *MemStore) RemoveTriples(subject, predicate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.triples[subject]
	kept := existing[:0]
	for _, t := range existing {
		if t.Predicate != predicate {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(s.triples, subject)
		return nil
	}
	s.triples[subject] = kept
	return nil
}

// AddTriple appends a triple under its subject.
func (s *MemStore) AddTriple(t message.Triple) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.triples[t.Subject] = append(s.triples[t.Subject], t)
	return nil
}

// Subjects returns every subject that currently has at least one triple.
func (s *MemStore) Subjects() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subjects := make([]string, 0, len(s.triples))
	for subject := range s.triples {
		subjects = append(subjects, subject)
	}
	return subjects
}

// All returns a copy of every triple in the store.
func (s *MemStore) All() []message.Triple {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []message.Triple
	for _, ts := range s.triples {
		all = append(all, ts...)
	}
	return all
}
