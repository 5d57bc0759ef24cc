package license

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spdxkit/licensegraph/graph"
	vocab "github.com/spdxkit/licensegraph/vocabulary/license"
)

func strptr(s string) *string { return &s }

func TestNew_DetachedDefaults(t *testing.T) {
	l := New("MIT", "MIT License", "Permission is hereby granted.")

	assert.False(t, l.Bound())
	assert.Empty(t, l.Subject())
	assert.Nil(t, l.Header())
	assert.Nil(t, l.Template())
	assert.False(t, l.OsiApproved())
	assert.True(t, l.textInHTML)
	assert.True(t, l.templateInHTML)
}

func TestNew_Options(t *testing.T) {
	l := New("MIT", "MIT License", "body",
		WithHeader("notice"),
		WithTemplate("template"),
		WithOsiApproved(true),
		WithComment("a comment"),
		WithSeeAlso("https://example.org"),
	)

	require.NotNil(t, l.Header())
	assert.Equal(t, "notice", *l.Header())
	require.NotNil(t, l.Template())
	assert.Equal(t, "template", *l.Template())
	assert.True(t, l.OsiApproved())
	assert.Equal(t, "a comment", l.Comment())
	assert.Equal(t, []string{"https://example.org"}, l.SeeAlso())
}

func TestDetachedSetters_TouchNoStore(t *testing.T) {
	l := New("MIT", "MIT License", "body")

	require.NoError(t, l.SetText("new body"))
	require.NoError(t, l.SetHeader(strptr("new header")))
	require.NoError(t, l.SetOsiApproved(true))

	assert.Equal(t, "new body", l.Text())
	assert.False(t, l.Bound())
}

func TestSetters_FlipHTMLFlagsOnce(t *testing.T) {
	l := New("MIT", "MIT License", "body")
	require.True(t, l.textInHTML)
	require.True(t, l.templateInHTML)

	require.NoError(t, l.SetText("plain body"))
	assert.False(t, l.textInHTML, "plain-text set must mark the body as plain")
	assert.True(t, l.templateInHTML, "template flag is independent of the body flag")

	require.NoError(t, l.SetTemplate(strptr("plain template")))
	assert.False(t, l.templateInHTML)

	// The transition is one-directional; further sets keep the flag down.
	require.NoError(t, l.SetText("another body"))
	assert.False(t, l.textInHTML)
}

func TestClone_IsDetachedAndIndependent(t *testing.T) {
	store := graph.NewMemStore()
	l, err := Persist(store, testSubject, New("MIT", "MIT License", "body", WithHeader("notice")))
	require.NoError(t, err)
	require.True(t, l.Bound())

	c := l.Clone()
	assert.False(t, c.Bound())
	assert.Equal(t, l.ID(), c.ID())

	require.NoError(t, c.SetHeader(strptr("changed")))
	require.NotNil(t, l.Header())
	assert.Equal(t, "notice", *l.Header(), "clone mutation must not leak back")
}

func TestCopyFrom_CopiesSourceTemplate(t *testing.T) {
	src := New("Apache-2.0", "Apache License 2.0", "Apache body",
		WithTemplate("apache template"),
		WithHeader("apache header"),
		WithOsiApproved(true),
		WithComment("src comment"),
		WithSeeAlso("https://example.org/apache"),
	)
	dst := New("MIT", "MIT License", "MIT body", WithTemplate("mit template"))

	require.NoError(t, dst.CopyFrom(src))

	assert.Equal(t, "Apache-2.0", dst.ID())
	assert.Equal(t, "Apache License 2.0", dst.Name())
	assert.Equal(t, "Apache body", dst.Text())
	require.NotNil(t, dst.Template())
	assert.Equal(t, "apache template", *dst.Template(), "template must come from the source entity")
	require.NotNil(t, dst.Header())
	assert.Equal(t, "apache header", *dst.Header())
	assert.True(t, dst.OsiApproved())
	assert.Equal(t, "src comment", dst.Comment())
}

func TestCopyFrom_BoundReceiverRewritesTriples(t *testing.T) {
	store := graph.NewMemStore()
	dst, err := Persist(store, testSubject, New("MIT", "MIT License", "MIT body"))
	require.NoError(t, err)

	src := New("BSD-2-Clause", "BSD 2-Clause", "BSD body", WithOsiApproved(true))
	require.NoError(t, dst.CopyFrom(src))

	texts, err := store.FindTriples(testSubject, vocab.LicenseText)
	require.NoError(t, err)
	require.Len(t, texts, 1)
	assert.Equal(t, "BSD body", texts[0].Object)
}

func TestSameIdentity(t *testing.T) {
	a := New("MIT", "MIT License", "body one")
	b := New("MIT", "Different Name", "different body")
	c := New("ISC", "MIT License", "body one")

	assert.True(t, a.SameIdentity(b))
	assert.False(t, a.SameIdentity(c))
	assert.False(t, a.SameIdentity(nil))
}

func TestEquivalent_ComparesOnlyBodyText(t *testing.T) {
	a := New("MIT", "MIT License", "Permission is hereby granted.")
	b := New("MIT-2", "Another Name", "Permission is hereby granted.",
		WithOsiApproved(true), WithHeader("different header"))

	assert.True(t, a.Equivalent(b), "differing metadata must not affect equivalence")

	c := New("MIT", "MIT License", "Permission is hereby revoked.")
	assert.False(t, a.Equivalent(c), "same id with different text is not equivalent")

	assert.False(t, a.Equivalent(nil))
}

func TestString_ReturnsOnlyID(t *testing.T) {
	assert.Equal(t, "MIT", New("MIT", "MIT License", "body").String())
}

func TestVerify(t *testing.T) {
	t.Run("valid license has no problems", func(t *testing.T) {
		l := New("MIT", "MIT License", "body")
		assert.Empty(t, l.Verify())
	})

	t.Run("empty id and text produce exactly two problems", func(t *testing.T) {
		l := New("", "MIT License", "")
		problems := l.Verify()
		require.Len(t, problems, 2)
		assert.Contains(t, problems[0], "license ID")
		assert.Contains(t, problems[1], "license text")
	})

	t.Run("text problem names the id", func(t *testing.T) {
		l := New("MIT", "MIT License", "")
		problems := l.Verify()
		require.Len(t, problems, 1)
		assert.Contains(t, problems[0], "MIT")
	})

	t.Run("optional fields absent is never a problem", func(t *testing.T) {
		l := New("MIT", "MIT License", "body")
		assert.Nil(t, l.Header())
		assert.Nil(t, l.Template())
		assert.Empty(t, l.Verify())
	})
}

type brokenStore struct {
	*graph.MemStore
	removeErr error
}

func (s *brokenStore) RemoveTriples(subject, predicate string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	return s.MemStore.RemoveTriples(subject, predicate)
}

func TestBoundSetter_StoreFailureLeavesMemoryUpdated(t *testing.T) {
	store := &brokenStore{MemStore: graph.NewMemStore()}
	l, err := Persist(store, testSubject, New("MIT", "MIT License", "body"))
	require.NoError(t, err)

	store.removeErr = errors.New("store down")
	err = l.SetText("replacement body")
	require.Error(t, err)

	// Memory moved first; divergence is the caller's to detect by reloading.
	assert.Equal(t, "replacement body", l.Text())
}

func TestBoundSetter_WritesCarryProvenance(t *testing.T) {
	store := graph.NewMemStore()
	l, err := Persist(store, testSubject, New("MIT", "MIT License", "body"))
	require.NoError(t, err)
	require.NoError(t, l.SetText("updated"))

	triples, err := store.FindTriples(testSubject, vocab.LicenseText)
	require.NoError(t, err)
	require.Len(t, triples, 1)

	triple := triples[0]
	assert.Equal(t, DefaultSource, triple.Source)
	assert.Equal(t, 1.0, triple.Confidence)
	assert.False(t, triple.Timestamp.IsZero())
}
