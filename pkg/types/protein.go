// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data structures passed between the
// ontology, feature, and dataset stages.
package types

// Protein holds the annotation data for a single protein. Each annotation
// field is a delimiter-separated string of tokens; the empty string means
// the field is absent. The feature engine only ever reads these fields.
type Protein struct {
	// Accession is the UniProt accession (e.g. "P04637").
	Accession string `json:"accession" yaml:"accession"`

	// GOMF is the comma-separated molecular function GO accessions.
	GOMF string `json:"go_mf,omitempty" yaml:"go_mf,omitempty"`

	// GOBP is the comma-separated biological process GO accessions.
	GOBP string `json:"go_bp,omitempty" yaml:"go_bp,omitempty"`

	// GOCC is the comma-separated cellular component GO accessions.
	GOCC string `json:"go_cc,omitempty" yaml:"go_cc,omitempty"`

	// InterPro is the comma-separated InterPro domain identifiers.
	InterPro string `json:"interpro,omitempty" yaml:"interpro,omitempty"`

	// Pfam is the comma-separated Pfam domain identifiers.
	Pfam string `json:"pfam,omitempty" yaml:"pfam,omitempty"`

	// Keywords is the comma-separated free-text annotation keywords.
	Keywords string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Interaction identifies one protein pair, optionally with its curated
// interaction-type labels (e.g. "phosphorylation,activation").
type Interaction struct {
	// Source is the accession of the source protein.
	Source string `json:"source" yaml:"source"`

	// Target is the accession of the target protein.
	Target string `json:"target" yaml:"target"`

	// Labels is the comma-separated interaction-type labels, if curated.
	Labels string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// FeatureRecord maps feature names to ordered annotation token lists for
// one protein pair. Raw fields are the source-then-target concatenation of
// the parsed annotations; the ulca_go_* fields hold the induced GO terms
// after regrouping. Records are created fresh per pair and never mutated
// after assembly.
type FeatureRecord struct {
	GOMF     []string `json:"go_mf" yaml:"go_mf"`
	GOBP     []string `json:"go_bp" yaml:"go_bp"`
	GOCC     []string `json:"go_cc" yaml:"go_cc"`
	ULCAGOMF []string `json:"ulca_go_mf" yaml:"ulca_go_mf"`
	ULCAGOBP []string `json:"ulca_go_bp" yaml:"ulca_go_bp"`
	ULCAGOCC []string `json:"ulca_go_cc" yaml:"ulca_go_cc"`
	InterPro []string `json:"interpro" yaml:"interpro"`
	Pfam     []string `json:"pfam" yaml:"pfam"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// FeatureField pairs a feature name with its token list.
type FeatureField struct {
	Name   string
	Values []string
}

// Fields returns the record's fields in canonical key order. Consumers
// that vectorize or serialize records iterate this instead of reflecting
// over the struct, so field order is stable across runs.
func (r *FeatureRecord) Fields() []FeatureField {
	return []FeatureField{
		{"go_mf", r.GOMF},
		{"go_bp", r.GOBP},
		{"go_cc", r.GOCC},
		{"ulca_go_mf", r.ULCAGOMF},
		{"ulca_go_bp", r.ULCAGOBP},
		{"ulca_go_cc", r.ULCAGOCC},
		{"interpro", r.InterPro},
		{"pfam", r.Pfam},
		{"keywords", r.Keywords},
	}
}
