// Package license implements the license entity and its mapping to and from
// graph triples: versioned-predicate loads, replace-semantics writes under
// the current schema, verification, and text-based equivalence.
package license

import (
	"fmt"
	"strings"
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/spdxkit/licensegraph/graph"
	"github.com/spdxkit/licensegraph/text"
	vocab "github.com/spdxkit/licensegraph/vocabulary/license"
)

// DefaultSource is the provenance tag stamped on triples this package writes.
const DefaultSource = "licensegraph.mapper"

// Identity properties inherited from the general licensing-info shape.
// None of them ever changed names, so each has a single candidate.
var (
	propID      = vocab.Property{Canonical: vocab.LicenseID}
	propName    = vocab.Property{Canonical: vocab.LicenseName}
	propComment = vocab.Property{Canonical: vocab.LicenseComment}
	propSeeAlso = vocab.Property{Canonical: vocab.LicenseSeeAlso}
)

// License is a license record. It exists in one of two modes, decided at
// construction: detached (New, Clone) where setters only mutate memory, and
// bound (Load, Persist) where setters synchronously rewrite the backing
// triples with replace semantics.
//
// A bound setter updates memory before touching the store; if the store
// write fails, memory and store diverge until the caller reloads. The core
// adds no retry or rollback.
type License struct {
	id       string
	name     string
	body     string
	header   *string
	template *string
	osi      bool
	comment  string
	seeAlso  []string

	// textInHTML and templateInHTML record whether the in-memory value may
	// still carry markup. True on every construction; flipped false by the
	// first plain-text setter for the field and never flipped back.
	textInHTML     bool
	templateInHTML bool

	store   graph.Store
	subject string
	source  string
}

// Option configures construction of a detached License.
type Option func(*License)

// WithHeader sets the standard notice block.
func WithHeader(header string) Option {
	return func(l *License) { l.header = &header }
}

// WithTemplate sets the machine-template form of the license text.
func WithTemplate(template string) Option {
	return func(l *License) { l.template = &template }
}

// WithOsiApproved marks the license OSI-approved.
func WithOsiApproved(approved bool) Option {
	return func(l *License) { l.osi = approved }
}

// WithComment sets free-form commentary.
func WithComment(comment string) Option {
	return func(l *License) { l.comment = comment }
}

// WithSeeAlso sets reference URLs.
func WithSeeAlso(urls ...string) Option {
	return func(l *License) { l.seeAlso = append([]string(nil), urls...) }
}

// WithSource overrides the provenance tag stamped on written triples.
func WithSource(source string) Option {
	return func(l *License) { l.source = source }
}

// New constructs a detached license from explicit field values.
func New(id, name, body string, opts ...Option) *License {
	l := &License{
		id:             id,
		name:           name,
		body:           body,
		textInHTML:     true,
		templateInHTML: true,
		source:         DefaultSource,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ID returns the license identifier.
func (l *License) ID() string { return l.id }

// Name returns the license name.
func (l *License) Name() string { return l.name }

// Text returns the license body text.
func (l *License) Text() string { return l.body }

// Header returns the standard notice block, or nil when absent.
func (l *License) Header() *string { return copyOptional(l.header) }

// Template returns the license template, or nil when absent.
func (l *License) Template() *string { return copyOptional(l.template) }

// OsiApproved reports whether the license is OSI-approved.
func (l *License) OsiApproved() bool { return l.osi }

// Comment returns the free-form commentary.
func (l *License) Comment() string { return l.comment }

// SeeAlso returns the reference URLs.
func (l *License) SeeAlso() []string { return append([]string(nil), l.seeAlso...) }

// Bound reports whether setters write through to a backing store.
func (l *License) Bound() bool { return l.store != nil }

// Subject returns the graph subject a bound license maps to, or "".
func (l *License) Subject() string { return l.subject }

// SetID sets the license identifier.
func (l *License) SetID(id string) error {
	l.id = id
	return l.writeThrough(propID, &id)
}

// SetName sets the license name.
func (l *License) SetName(name string) error {
	l.name = name
	return l.writeThrough(propName, &name)
}

// SetText sets the license body text. The value is taken as already plain,
// so the HTML flag flips false and stays false.
func (l *License) SetText(body string) error {
	l.body = body
	l.textInHTML = false
	return l.writeThrough(vocab.PropText, &body)
}

// SetHeader sets or clears the standard notice block. A nil value removes
// the header triples without inserting a replacement.
func (l *License) SetHeader(header *string) error {
	l.header = copyOptional(header)
	return l.writeThrough(vocab.PropHeader, header)
}

// SetTemplate sets or clears the license template. The value is taken as
// already plain, so the HTML flag flips false and stays false.
func (l *License) SetTemplate(template *string) error {
	l.template = copyOptional(template)
	l.templateInHTML = false
	return l.writeThrough(vocab.PropTemplate, template)
}

// SetOsiApproved sets the OSI-approval flag. False is the implicit default
// on load, so a false value clears the triples rather than writing one.
func (l *License) SetOsiApproved(approved bool) error {
	l.osi = approved
	if !l.Bound() {
		return nil
	}
	if err := l.removeAll(vocab.PropOsiApproved); err != nil {
		return err
	}
	if !approved {
		return nil
	}
	return l.addLiteral(vocab.PropOsiApproved.Canonical, "true")
}

// SetComment sets the free-form commentary.
func (l *License) SetComment(comment string) error {
	l.comment = comment
	return l.writeThrough(propComment, &comment)
}

// SetSeeAlso replaces the reference URLs.
func (l *License) SetSeeAlso(urls []string) error {
	l.seeAlso = append([]string(nil), urls...)
	if !l.Bound() {
		return nil
	}
	if err := l.removeAll(propSeeAlso); err != nil {
		return err
	}
	for _, url := range urls {
		if err := l.addLiteral(propSeeAlso.Canonical, url); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a detached copy of the license.
func (l *License) Clone() *License {
	c := *l
	c.store = nil
	c.subject = ""
	c.header = copyOptional(l.header)
	c.template = copyOptional(l.template)
	c.seeAlso = append([]string(nil), l.seeAlso...)
	return &c
}

// CopyFrom copies every field from src into l through l's setters, so a
// bound receiver rewrites its triples as it goes.
func (l *License) CopyFrom(src *License) error {
	if err := l.SetComment(src.Comment()); err != nil {
		return err
	}
	if err := l.SetID(src.ID()); err != nil {
		return err
	}
	if err := l.SetText(src.Text()); err != nil {
		return err
	}
	if err := l.SetName(src.Name()); err != nil {
		return err
	}
	if err := l.SetOsiApproved(src.OsiApproved()); err != nil {
		return err
	}
	if err := l.SetSeeAlso(src.SeeAlso()); err != nil {
		return err
	}
	if err := l.SetHeader(src.Header()); err != nil {
		return err
	}
	return l.SetTemplate(src.Template())
}

// SameIdentity reports whether both licenses carry the same identifier.
// It says nothing about their content; see Equivalent.
func (l *License) SameIdentity(other *License) bool {
	return other != nil && l.id == other.id
}

// Equivalent reports whether two licenses have equivalent body text. All
// other fields, the identifier included, are excluded from the relation.
func (l *License) Equivalent(other *License) bool {
	if other == nil {
		return false
	}
	return text.LicenseTextsEquivalent(l.body, other.body)
}

// String returns only the license ID so the value can be embedded in
// parseable license expressions.
func (l *License) String() string { return l.id }

// writeThrough applies replace semantics for prop on a bound license:
// every predicate the property was ever stored under is cleared, then the
// canonical predicate receives the new literal when value is non-nil.
// Detached licenses return nil without touching any store.
func (l *License) writeThrough(prop vocab.Property, value *string) error {
	if !l.Bound() {
		return nil
	}
	if err := l.removeAll(prop); err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	return l.addLiteral(prop.Canonical, *value)
}

func (l *License) removeAll(prop vocab.Property) error {
	for _, pred := range prop.All() {
		if err := l.store.RemoveTriples(l.subject, pred); err != nil {
			return fmt.Errorf("remove %s on %s: %w", pred, l.subject, err)
		}
	}
	return nil
}

func (l *License) addLiteral(predicate, value string) error {
	err := l.store.AddTriple(message.Triple{
		Subject:    l.subject,
		Predicate:  predicate,
		Object:     value,
		Source:     l.source,
		Timestamp:  time.Now(),
		Confidence: 1.0,
	})
	if err != nil {
		return fmt.Errorf("add %s on %s: %w", predicate, l.subject, err)
	}
	return nil
}

// trimXMLLiteral strips the legacy XML-literal datatype suffix by exact,
// case-sensitive trailing match.
func trimXMLLiteral(s string) string {
	return strings.TrimSuffix(s, vocab.XMLLiteralSuffix)
}

func copyOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
