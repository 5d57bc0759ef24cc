package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/c360studio/semstreams/message"
)

// LoadSnapshot reads a JSON triple snapshot into a fresh MemStore.
// The snapshot format is a JSON array of triples, the same shape the
// entity-ingest stream carries.
func LoadSnapshot(path string) (*MemStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var triples []message.Triple
	if err := json.Unmarshal(data, &triples); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	store := NewMemStore()
	for _, t := range triples {
		if t.Subject == "" || t.Predicate == "" {
			return nil, fmt.Errorf("parse snapshot %s: triple missing subject or predicate", path)
		}
		if err := store.AddTriple(t); err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
	}
	return store, nil
}

// SaveSnapshot writes every triple in the store to path as a JSON array.
func SaveSnapshot(path string, store *MemStore) error {
	data, err := json.MarshalIndent(store.All(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
