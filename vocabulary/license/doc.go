// Package license defines the vocabulary for license entities in the
// knowledge graph: predicate names in dotted notation, their ontology IRI
// mappings, and the versioned property lists that pair each current-schema
// predicate with the legacy names older ingesters wrote.
//
// Reads resolve a property's candidates in priority order (current first,
// then legacy); writes always use the canonical predicate. This keeps the
// graph readable across schema versions while converging on one shape.
package license
