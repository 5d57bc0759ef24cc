package graph

import (
	"errors"
	"testing"

	"github.com/c360studio/semstreams/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addLiteral(t *testing.T, store *MemStore, subject, predicate string, object any) {
	t.Helper()
	err := store.AddTriple(message.Triple{
		Subject:    subject,
		Predicate:  predicate,
		Object:     object,
		Source:     "test",
		Confidence: 1.0,
	})
	require.NoError(t, err)
}

func TestResolveFirst_PrefersEarlierCandidate(t *testing.T) {
	store := NewMemStore()
	addLiteral(t, store, "lic.1", "license.v1.header", "old header")
	addLiteral(t, store, "lic.1", "license.std.header", "new header")

	value, ok, err := ResolveFirst(store, "lic.1", "license.std.header", "license.v1.header")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new header", value)
}

func TestResolveFirst_FallsBackToLegacy(t *testing.T) {
	store := NewMemStore()
	addLiteral(t, store, "lic.1", "license.v1.header", "old header")

	value, ok, err := ResolveFirst(store, "lic.1", "license.std.header", "license.v1.header")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "old header", value)
}

func TestResolveFirst_NoMatchIsNotAnError(t *testing.T) {
	store := NewMemStore()

	value, ok, err := ResolveFirst(store, "lic.1", "license.std.header", "license.v1.header")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestResolveFirst_FirstTripleWinsOnMultiplicity(t *testing.T) {
	store := NewMemStore()
	addLiteral(t, store, "lic.1", "license.std.header", "first")
	addLiteral(t, store, "lic.1", "license.std.header", "second")

	value, ok, err := ResolveFirst(store, "lic.1", "license.std.header")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "first", value)
}

func TestResolveFirst_EmptyMatchStopsResolution(t *testing.T) {
	store := NewMemStore()
	addLiteral(t, store, "lic.1", "license.std.header", "")
	addLiteral(t, store, "lic.1", "license.v1.header", "legacy value")

	value, ok, err := ResolveFirst(store, "lic.1", "license.std.header", "license.v1.header")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, value, "a matched empty literal must not fall through to legacy")
}

type failingStore struct {
	*MemStore
	err error
}

func (s *failingStore) FindTriples(subject, predicate string) ([]message.Triple, error) {
	return nil, s.err
}

func TestResolveFirst_PropagatesStoreError(t *testing.T) {
	boom := errors.New("store unavailable")
	store := &failingStore{MemStore: NewMemStore(), err: boom}

	_, _, err := ResolveFirst(store, "lic.1", "license.std.header")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestResolveAll_CollectsAllValuesUnderFirstMatch(t *testing.T) {
	store := NewMemStore()
	addLiteral(t, store, "lic.1", "license.meta.see_also", "https://example.org/a")
	addLiteral(t, store, "lic.1", "license.meta.see_also", "https://example.org/b")

	values, err := ResolveAll(store, "lic.1", "license.meta.see_also")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.org/a", "https://example.org/b"}, values)
}

func TestObjectString(t *testing.T) {
	tests := []struct {
		name   string
		object any
		want   string
	}{
		{"string passes through", "text", "text"},
		{"bool renders lowercase", true, "true"},
		{"float drops trailing zeros", 1.5, "1.5"},
		{"int renders decimal", 42, "42"},
		{"nil renders empty", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ObjectString(tc.object))
		})
	}
}
