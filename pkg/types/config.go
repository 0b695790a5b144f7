// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OntologyConfig holds settings for loading the Gene Ontology term store.
type OntologyConfig struct {
	// OBOPath is the path to the Gene Ontology OBO file (e.g. "data/go.obo").
	OBOPath string `json:"obo_path" yaml:"obo_path"`
}

// DatasetConfig holds settings for the protein/interaction dataset.
type DatasetConfig struct {
	// Path is the SQLite database file (e.g. "data/ppi.db").
	Path string `json:"path" yaml:"path"`
}

// ExtractConfig holds settings for batch feature extraction.
type ExtractConfig struct {
	// Workers is the number of concurrent feature computations (default 4).
	Workers int `json:"workers" yaml:"workers"`

	// UseCache reuses previously computed feature records from the dataset
	// feature cache and stores new ones.
	UseCache bool `json:"use_cache" yaml:"use_cache"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Ontology OntologyConfig `json:"ontology" yaml:"ontology"`
	Dataset  DatasetConfig  `json:"dataset" yaml:"dataset"`
	Extract  ExtractConfig  `json:"extract" yaml:"extract"`
}
