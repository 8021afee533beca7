// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultConceptsFile is the documentation filename the indexer scans for.
const DefaultConceptsFile = "CONCEPTS.md"

// DefaultSnapshotFile is the default snapshot location.
const DefaultSnapshotFile = "concept_index.json"

// IndexConfig holds settings for the index build stage.
type IndexConfig struct {
	// RootDir is the corpus root scanned recursively for documentation files.
	RootDir string `json:"root_dir" yaml:"root_dir"`

	// ConceptsFile is the documentation filename to index (default CONCEPTS.md).
	ConceptsFile string `json:"concepts_file" yaml:"concepts_file"`

	// SnapshotPath is where the built snapshot is written.
	SnapshotPath string `json:"snapshot_path" yaml:"snapshot_path"`
}

// Validate checks that the build configuration is usable.
func (c IndexConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.RootDir, validation.Required),
		validation.Field(&c.ConceptsFile, validation.Required),
		validation.Field(&c.SnapshotPath, validation.Required),
	)
}

// QueryConfig holds settings for the query stage.
type QueryConfig struct {
	// SnapshotPath is the snapshot the engine loads at startup.
	SnapshotPath string `json:"snapshot_path" yaml:"snapshot_path"`

	// MaxResults is the default maximum number of results to display (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Validate checks that the query configuration is usable.
func (c QueryConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.SnapshotPath, validation.Required),
		validation.Field(&c.MaxResults, validation.Min(0)),
	)
}
