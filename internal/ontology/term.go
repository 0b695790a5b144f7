// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ontology loads the Gene Ontology DAG from OBO format into an
// immutable in-memory term store. The store is built once, then shared
// read-only across any number of concurrent feature computations.
package ontology

import "fmt"

// Namespace identifies one of the three GO sub-ontologies.
type Namespace string

const (
	MolecularFunction Namespace = "molecular_function"
	BiologicalProcess Namespace = "biological_process"
	CellularComponent Namespace = "cellular_component"
)

// Namespaces lists the sub-ontologies in canonical order (mf, bp, cc).
func Namespaces() []Namespace {
	return []Namespace{MolecularFunction, BiologicalProcess, CellularComponent}
}

// Term is one node of the ontology DAG.
type Term struct {
	// ID is the canonical accession (e.g. "GO:0016301"). Lookups by an
	// alternate or replaced accession resolve to this term.
	ID string

	// Name is the human-readable term name.
	Name string

	// Namespace is the sub-ontology the term belongs to.
	Namespace Namespace

	// Parents holds the canonical accessions reachable via is_a or
	// part_of edges, sorted lexicographically. part_of edges may cross
	// namespace boundaries.
	Parents []string

	// AltIDs lists alternate accessions that resolve to this term.
	AltIDs []string

	// IsObsolete marks terms retired from the ontology. Obsolete terms
	// carry no parent edges.
	IsObsolete bool

	// ReplacedBy is the accession of the term superseding an obsolete
	// term, if one was designated.
	ReplacedBy string
}

// UnknownTermError reports an accession that does not resolve to any term
// in the store. It indicates the annotation data references an ontology
// snapshot newer or older than the loaded one.
type UnknownTermError struct {
	Accession string
}

func (e *UnknownTermError) Error() string {
	return fmt.Sprintf("ontology: unknown term %q", e.Accession)
}
