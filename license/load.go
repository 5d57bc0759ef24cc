package license

import (
	"fmt"
	"strings"

	"github.com/spdxkit/licensegraph/graph"
	"github.com/spdxkit/licensegraph/text"
	vocab "github.com/spdxkit/licensegraph/vocabulary/license"
)

// Load reconstructs a license from the triples reachable from subject and
// returns it bound to store, so subsequent setters write through.
//
// Each versioned field resolves its candidates in priority order: current
// schema first, then legacy. Absent optional fields load as nil and the OSI
// flag defaults to false; a present OSI literal outside {"true", "1",
// "false", "0"} aborts the load with a *ValidationError. Body and template
// literals have the XML-literal suffix stripped and, because a stored value
// is assumed HTML-flavored until a plain-text setter says otherwise, are
// normalized to plain text. Headers only get entity unescaping; historical
// header values were stored escaped whether or not the record carried
// markup, so the asymmetry is deliberate.
func Load(store graph.Store, subject string) (*License, error) {
	l := &License{
		textInHTML:     true,
		templateInHTML: true,
		store:          store,
		subject:        subject,
		source:         DefaultSource,
	}

	if err := l.loadIdentity(); err != nil {
		return nil, err
	}

	// Body text: canonical predicate only, no legacy fallback.
	if value, ok, err := graph.ResolveFirst(store, subject, vocab.PropText.Candidates()...); err != nil {
		return nil, fmt.Errorf("load license text: %w", err)
	} else if ok {
		body := trimXMLLiteral(value)
		if l.textInHTML {
			body = text.HTMLToPlain(body)
		}
		l.body = body
	}

	// Standard header: current then legacy, entity unescape only.
	if value, ok, err := graph.ResolveFirst(store, subject, vocab.PropHeader.Candidates()...); err != nil {
		return nil, fmt.Errorf("load license header: %w", err)
	} else if ok {
		header := text.UnescapeEntities(value)
		l.header = &header
	}

	// Template: current then legacy, suffix strip then markup normalization.
	if value, ok, err := graph.ResolveFirst(store, subject, vocab.PropTemplate.Candidates()...); err != nil {
		return nil, fmt.Errorf("load license template: %w", err)
	} else if ok {
		template := trimXMLLiteral(value)
		if l.templateInHTML {
			template = text.HTMLToPlain(template)
		}
		l.template = &template
	}

	// OSI flag: strict literal set, absent means false.
	value, ok, err := graph.ResolveFirst(store, subject, vocab.PropOsiApproved.Candidates()...)
	if err != nil {
		return nil, fmt.Errorf("load osi approved: %w", err)
	}
	if ok {
		switch strings.TrimSpace(value) {
		case "true", "1":
			l.osi = true
		case "false", "0":
			l.osi = false
		default:
			return nil, &ValidationError{
				Subject:   subject,
				Predicate: vocab.PropOsiApproved.Canonical,
				Value:     value,
			}
		}
	}

	return l, nil
}

// loadIdentity resolves the inherited licensing-info fields. None of them
// is required to be present; the verifier reports what is missing.
func (l *License) loadIdentity() error {
	id, _, err := graph.ResolveFirst(l.store, l.subject, propID.Canonical)
	if err != nil {
		return fmt.Errorf("load license id: %w", err)
	}
	l.id = id

	name, _, err := graph.ResolveFirst(l.store, l.subject, propName.Canonical)
	if err != nil {
		return fmt.Errorf("load license name: %w", err)
	}
	l.name = name

	comment, _, err := graph.ResolveFirst(l.store, l.subject, propComment.Canonical)
	if err != nil {
		return fmt.Errorf("load license comment: %w", err)
	}
	l.comment = comment

	seeAlso, err := graph.ResolveAll(l.store, l.subject, propSeeAlso.Canonical)
	if err != nil {
		return fmt.Errorf("load see also: %w", err)
	}
	l.seeAlso = seeAlso

	return nil
}
