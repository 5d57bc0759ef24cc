package license

import (
	"time"

	"github.com/c360studio/semstreams/message"
	"github.com/spdxkit/licensegraph/graph"
	vocab "github.com/spdxkit/licensegraph/vocabulary/license"
)

// Project renders the license as triples under subject, always using the
// current-schema predicate names. Empty required fields and absent optional
// fields emit nothing; the OSI flag is written only when true, since false
// is the implicit default on load.
func (l *License) Project(subject string) []message.Triple {
	now := time.Now()
	var triples []message.Triple

	add := func(predicate, value string) {
		triples = append(triples, message.Triple{
			Subject:    subject,
			Predicate:  predicate,
			Object:     value,
			Source:     l.source,
			Timestamp:  now,
			Confidence: 1.0,
		})
	}

	if l.id != "" {
		add(vocab.LicenseID, l.id)
	}
	if l.name != "" {
		add(vocab.LicenseName, l.name)
	}
	if l.comment != "" {
		add(vocab.LicenseComment, l.comment)
	}
	for _, url := range l.seeAlso {
		add(vocab.LicenseSeeAlso, url)
	}
	if l.body != "" {
		add(vocab.PropText.Canonical, l.body)
	}
	if l.header != nil {
		add(vocab.PropHeader.Canonical, *l.header)
	}
	if l.template != nil {
		add(vocab.PropTemplate.Canonical, *l.template)
	}
	if l.osi {
		add(vocab.PropOsiApproved.Canonical, "true")
	}

	return triples
}

// Persist writes src into store under subject with replace semantics per
// field and returns a bound copy whose setters write through. The detached
// src is left untouched, so the caller decides which mode to keep using.
func Persist(store graph.Store, subject string, src *License) (*License, error) {
	bound := src.Clone()
	bound.store = store
	bound.subject = subject

	if id := src.ID(); id != "" {
		if err := bound.SetID(id); err != nil {
			return nil, err
		}
	}
	if name := src.Name(); name != "" {
		if err := bound.SetName(name); err != nil {
			return nil, err
		}
	}
	if comment := src.Comment(); comment != "" {
		if err := bound.SetComment(comment); err != nil {
			return nil, err
		}
	}
	if urls := src.SeeAlso(); len(urls) > 0 {
		if err := bound.SetSeeAlso(urls); err != nil {
			return nil, err
		}
	}
	if body := src.Text(); body != "" {
		if err := bound.SetText(body); err != nil {
			return nil, err
		}
	}
	if err := bound.SetHeader(src.Header()); err != nil {
		return nil, err
	}
	if err := bound.SetTemplate(src.Template()); err != nil {
		return nil, err
	}
	if err := bound.SetOsiApproved(src.OsiApproved()); err != nil {
		return nil, err
	}

	return bound, nil
}
