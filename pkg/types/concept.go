// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Tier is a learning difficulty level. Concepts are organized into four
// ordered tiers forming the learning path.
type Tier string

const (
	TierBasic        Tier = "basic"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
	TierExpert       Tier = "expert"
)

// TierOrder lists the tiers from first to last in the learning path.
var TierOrder = []Tier{TierBasic, TierIntermediate, TierAdvanced, TierExpert}

// Valid reports whether t is one of the four known tiers.
func (t Tier) Valid() bool {
	for _, tier := range TierOrder {
		if t == tier {
			return true
		}
	}
	return false
}

// Next returns the tier that follows t in the learning path. The second
// return value is false when t is the last tier or not a known tier.
func (t Tier) Next() (Tier, bool) {
	for i, tier := range TierOrder {
		if t == tier && i < len(TierOrder)-1 {
			return TierOrder[i+1], true
		}
	}
	return "", false
}

// CrossReferenceCategories lists the fixed thematic buckets concepts are
// grouped into, in the order categories are matched and serialized.
var CrossReferenceCategories = []string{
	"ownership",
	"error-handling",
	"concurrency",
	"memory",
	"types",
	"collections",
	"functions",
	"testing",
	"advanced",
}

// Concept is one indexed topic section with derived metadata. Concepts are
// keyed by their derived id in Snapshot.Concepts; the id doubles as the
// section anchor within the source document.
type Concept struct {
	// Title is the original heading text in display form.
	Title string `json:"title" yaml:"title"`

	// Tier is the difficulty level derived from the document's location.
	Tier Tier `json:"tier" yaml:"tier"`

	// Description is the first substantial content line of the section,
	// with inline markup stripped and truncated to 200 characters.
	Description string `json:"description" yaml:"description"`

	// FilePath is the originating document path relative to the corpus root.
	FilePath string `json:"file_path" yaml:"file_path"`

	// Anchor is the section anchor inside the document, equal to the
	// concept id.
	Anchor string `json:"anchor" yaml:"anchor"`

	// Keywords holds at most 10 lowercase tokens drawn from inline code
	// spans and the domain vocabulary, sorted ascending.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// RelatedConcepts holds at most 5 concept ids harvested from cue
	// phrases in the section body, sorted ascending.
	RelatedConcepts []string `json:"related_concepts" yaml:"related_concepts"`

	// Projects lists the known project names found in the document's path
	// components, deduplicated and sorted.
	Projects []string `json:"projects" yaml:"projects"`
}

// Metadata describes a single index build.
type Metadata struct {
	// TotalConcepts is the number of entries in Snapshot.Concepts.
	TotalConcepts int `json:"total_concepts" yaml:"total_concepts"`

	// FilesProcessed is the number of documentation files discovered
	// during the scan, including files that failed to read.
	FilesProcessed int `json:"files_processed" yaml:"files_processed"`

	// LastUpdated is the build timestamp.
	LastUpdated time.Time `json:"last_updated" yaml:"last_updated"`
}

// Snapshot is the persisted form of the full concept index. It is written
// once per build and read in full by the query engine at startup.
type Snapshot struct {
	Concepts        map[string]Concept  `json:"concepts" yaml:"concepts"`
	CrossReferences map[string][]string `json:"cross_references" yaml:"cross_references"`
	LearningPath    map[Tier][]string   `json:"learning_path" yaml:"learning_path"`
	Metadata        Metadata            `json:"metadata" yaml:"metadata"`
}
