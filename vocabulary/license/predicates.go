package license

import "github.com/c360studio/semstreams/vocabulary"

// Identity predicates inherited from the general licensing-info shape.
const (
	// LicenseID is the unique license identifier within a catalog.
	LicenseID = "license.meta.id"

	// LicenseName is the human-readable license name.
	LicenseName = "license.meta.name"

	// LicenseComment is free-form commentary about the license.
	LicenseComment = "license.meta.comment"

	// LicenseSeeAlso is a URL referencing the license.
	// May appear multiple times on one entity.
	LicenseSeeAlso = "license.meta.see_also"
)

// Current-schema predicates for license-specific fields. These are the only
// predicate names writes ever produce.
const (
	// LicenseText is the full license body text.
	LicenseText = "license.std.text"

	// LicenseHeader is the standard notice block.
	LicenseHeader = "license.std.header"

	// LicenseTemplate is the machine-template form of the license text.
	LicenseTemplate = "license.std.template"

	// LicenseOsiApproved is the OSI-approval flag.
	// Literal values are restricted to "true", "1", "false", "0".
	LicenseOsiApproved = "license.std.osi_approved"
)

// Legacy 1.0 predicates, recognized on read only.
const (
	// LicenseHeaderV1 is the 1.0 name for the notice block.
	LicenseHeaderV1 = "license.v1.header"

	// LicenseTemplateV1 is the 1.0 name for the template.
	LicenseTemplateV1 = "license.v1.template"

	// LicenseOsiApprovedV1 is the 1.0 name for the OSI flag.
	LicenseOsiApprovedV1 = "license.v1.osi_approved"
)

// Property pairs a canonical predicate with the legacy names still accepted
// on read. Candidate order is resolution priority: canonical first, then
// legacy in the order older schema versions are preferred.
type Property struct {
	// Canonical is the single predicate used for all writes.
	Canonical string

	// Legacy holds older predicate names recognized on read.
	Legacy []string
}

// Candidates returns the read-resolution order: canonical, then legacy.
func (p Property) Candidates() []string {
	return append([]string{p.Canonical}, p.Legacy...)
}

// All returns every predicate the property has ever been stored under.
// Used by replace-semantics writes to clear stale legacy triples.
func (p Property) All() []string {
	return p.Candidates()
}

// Versioned properties for the four license-specific fields.
var (
	// PropText has no legacy fallback; the body text predicate never changed.
	PropText = Property{Canonical: LicenseText}

	PropHeader      = Property{Canonical: LicenseHeader, Legacy: []string{LicenseHeaderV1}}
	PropTemplate    = Property{Canonical: LicenseTemplate, Legacy: []string{LicenseTemplateV1}}
	PropOsiApproved = Property{Canonical: LicenseOsiApproved, Legacy: []string{LicenseOsiApprovedV1}}
)

func init() {
	// Identity predicates
	vocabulary.Register(LicenseID,
		vocabulary.WithDescription("Unique license identifier within a catalog"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(EntityNamespace+"licenseId"))

	vocabulary.Register(LicenseName,
		vocabulary.WithDescription("Human-readable license name"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"name"))

	vocabulary.Register(LicenseComment,
		vocabulary.WithDescription("Free-form commentary about the license"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(RdfsComment))

	vocabulary.Register(LicenseSeeAlso,
		vocabulary.WithDescription("URL referencing the license"),
		vocabulary.WithDataType("array"),
		vocabulary.WithIRI(RdfsSeeAlso))

	// Current-schema field predicates
	vocabulary.Register(LicenseText,
		vocabulary.WithDescription("Full license body text"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropLicenseText))

	vocabulary.Register(LicenseHeader,
		vocabulary.WithDescription("Standard notice block for the license"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropStandardHeader))

	vocabulary.Register(LicenseTemplate,
		vocabulary.WithDescription("Machine-template form of the license text"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropStandardTemplate))

	vocabulary.Register(LicenseOsiApproved,
		vocabulary.WithDescription("OSI approval flag: true, 1, false, or 0"),
		vocabulary.WithDataType("boolean"),
		vocabulary.WithIRI(PropOsiApprovedIRI))

	// Legacy predicates, read-only compatibility
	vocabulary.Register(LicenseHeaderV1,
		vocabulary.WithDescription("1.0 schema name for the standard notice block"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropStandardHeaderV1))

	vocabulary.Register(LicenseTemplateV1,
		vocabulary.WithDescription("1.0 schema name for the license template"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(PropStandardTemplateV1))

	vocabulary.Register(LicenseOsiApprovedV1,
		vocabulary.WithDescription("1.0 schema name for the OSI approval flag"),
		vocabulary.WithDataType("boolean"),
		vocabulary.WithIRI(PropOsiApprovedV1))
}
