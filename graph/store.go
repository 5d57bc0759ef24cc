// Package graph provides the triple-store capability license entities are
// projected into, a versioned-predicate resolver for reads, an in-memory
// store, JSON snapshots, and NATS publishing of projected entities.
package graph

import (
	"fmt"
	"strconv"

	"github.com/c360studio/semstreams/message"
)

// Store is the triple-store capability consumed by the license mapper.
// Implementations are expected to be synchronous; retries, timeouts, and
// connectivity concerns live behind this interface, not above it.
type Store interface {
	// FindTriples returns all triples matching (subject, predicate, *).
	// An empty result is not an error.
	FindTriples(subject, predicate string) ([]message.Triple, error)

	// RemoveTriples deletes all triples matching (subject, predicate, *).
	// Removing a predicate with no triples is a no-op.
	RemoveTriples(subject, predicate string) error

	// AddTriple inserts a single triple.
	AddTriple(t message.Triple) error
}

// ObjectString renders a triple object in its literal string form.
// Literals arrive as strings from most serializations, but ingesters may
// have stored typed values for booleans and numbers.
func ObjectString(obj any) string {
	switch v := obj.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
