package graph

import "fmt"

// ResolveFirst queries candidates in priority order and returns the literal
// string form of the first triple found under the first predicate with any
// match. Later candidates are ignored once a predicate matches, even if the
// matched value is empty. A predicate with multiple triples yields its first
// triple; multiplicity is a storage convention, not a contract, so extra
// triples are not an error.
//
// ok is false when no candidate matched. Store errors propagate unchanged
// apart from wrapping.
func ResolveFirst(store Store, subject string, candidates ...string) (value string, ok bool, err error) {
	for _, predicate := range candidates {
		triples, err := store.FindTriples(subject, predicate)
		if err != nil {
			return "", false, fmt.Errorf("find %s on %s: %w", predicate, subject, err)
		}
		if len(triples) > 0 {
			return ObjectString(triples[0].Object), true, nil
		}
	}
	return "", false, nil
}

// ResolveAll returns the literal string forms of every triple under the
// first candidate predicate that has any match. Used for multi-valued
// properties such as reference URLs.
func ResolveAll(store Store, subject string, candidates ...string) ([]string, error) {
	for _, predicate := range candidates {
		triples, err := store.FindTriples(subject, predicate)
		if err != nil {
			return nil, fmt.Errorf("find %s on %s: %w", predicate, subject, err)
		}
		if len(triples) == 0 {
			continue
		}
		values := make([]string, 0, len(triples))
		for _, t := range triples {
			values = append(values, ObjectString(t.Object))
		}
		return values, nil
	}
	return nil, nil
}
