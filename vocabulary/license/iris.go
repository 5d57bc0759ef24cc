package license

// Namespace is the base IRI for current-schema license vocabulary terms.
const Namespace = "http://spdx.org/rdf/terms#"

// NamespaceV1 is the base IRI used by the 1.0 serialization. Predicates in
// this namespace are recognized on read only.
const NamespaceV1 = "http://spdx.org/rdf/licenses/1.0#"

// EntityNamespace is the base IRI for license entity instances.
const EntityNamespace = "http://spdx.org/licenses/"

// XMLLiteralSuffix is the trailing datatype marker the legacy serialization
// appended to XML-literal values. Recognition is an exact, case-sensitive
// trailing match; the suffix is stripped before the value is used.
const XMLLiteralSuffix = "^^http://www.w3.org/1999/02/22-rdf-syntax-ns#XMLLiteral"

// Standard ontology IRI constants for mappings.
const (
	// RdfsComment is the RDFS comment property.
	RdfsComment = "http://www.w3.org/2000/01/rdf-schema#comment"

	// RdfsSeeAlso is the RDFS seeAlso property.
	RdfsSeeAlso = "http://www.w3.org/2000/01/rdf-schema#seeAlso"
)

// Class IRIs for license entities.
const (
	// ClassLicense represents a full license record with body text.
	ClassLicense = Namespace + "License"

	// ClassListedLicense represents a license on the published license list.
	// Extends: ClassLicense
	ClassListedLicense = Namespace + "ListedLicense"
)

// Data property IRIs for license attributes.
const (
	// PropLicenseText is the full license body text.
	PropLicenseText = Namespace + "licenseText"

	// PropStandardHeader is the short notice block for the license.
	PropStandardHeader = Namespace + "standardLicenseHeader"

	// PropStandardTemplate is the machine-template form of the license text.
	PropStandardTemplate = Namespace + "standardLicenseTemplate"

	// PropOsiApprovedIRI marks OSI-approved licenses.
	PropOsiApprovedIRI = Namespace + "isOsiApproved"

	// PropStandardHeaderV1 is the 1.0 name for the notice block.
	PropStandardHeaderV1 = NamespaceV1 + "licenseHeader"

	// PropStandardTemplateV1 is the 1.0 name for the template.
	PropStandardTemplateV1 = NamespaceV1 + "licenseTemplate"

	// PropOsiApprovedV1 is the 1.0 name for the OSI flag.
	PropOsiApprovedV1 = NamespaceV1 + "licenseOsiApproved"
)
