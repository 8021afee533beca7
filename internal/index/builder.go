// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index builds the concept snapshot from a documentation corpus.
package index

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/concept-index/internal/extract"
	"github.com/pdiddy/concept-index/pkg/types"
)

// categoryKeywords maps each cross-reference category to the keywords that
// place a concept in it. The testing and advanced categories have extra
// predicates, see categorize.
var categoryKeywords = map[string][]string{
	"ownership":      {"ownership", "borrowing", "reference", "lifetime"},
	"error-handling": {"result", "option", "error", "unwrap", "expect"},
	"concurrency":    {"thread", "async", "await", "mutex", "arc"},
	"memory":         {"box", "rc", "heap", "stack", "allocator"},
	"types":          {"struct", "enum", "trait", "generic"},
	"collections":    {"vec", "hashmap", "iterator", "collect"},
	"functions":      {"closure", "fn", "impl"},
	"testing":        {"test"},
}

// BuildSummary holds counts from an index build run.
type BuildSummary struct {
	Indexed    int
	Failed     int
	Concepts   int
	Collisions int
}

// Total returns the number of documentation files discovered.
func (s BuildSummary) Total() int {
	return s.Indexed + s.Failed
}

// Builder accumulates concepts across a corpus scan. It carries all state
// explicitly so builds are reentrant and testable in isolation.
type Builder struct {
	root         string
	conceptsFile string
	concepts     map[string]types.Concept
	files        int
}

// NewBuilder prepares a build over cfg.RootDir for documents named
// cfg.ConceptsFile.
func NewBuilder(cfg types.IndexConfig) *Builder {
	conceptsFile := cfg.ConceptsFile
	if conceptsFile == "" {
		conceptsFile = types.DefaultConceptsFile
	}
	return &Builder{
		root:         cfg.RootDir,
		conceptsFile: conceptsFile,
		concepts:     make(map[string]types.Concept),
	}
}

// Scan walks the corpus, extracts concepts from every documentation file,
// and merges them into the builder. Unreadable files are reported on w and
// skipped; they never abort the scan. Duplicate ids keep the last concept
// processed, with a warning per collision.
func (b *Builder) Scan(w io.Writer) (BuildSummary, error) {
	var summary BuildSummary

	err := filepath.WalkDir(b.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != b.conceptsFile {
			return nil
		}

		b.files++

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", path, err)
			summary.Failed++
			return nil
		}

		rel, err := filepath.Rel(b.root, path)
		if err != nil {
			rel = path
		}

		count := 0
		for _, sec := range extract.SplitSections(string(data)) {
			id, c, ok := extract.FromSection(sec, path, rel)
			if !ok {
				continue
			}
			if _, exists := b.concepts[id]; exists {
				fmt.Fprintf(w, "warning %s: duplicate concept id %q, keeping last\n", rel, id)
				summary.Collisions++
			}
			b.concepts[id] = c
			count++
		}

		fmt.Fprintf(w, "indexed %s (%d concepts)\n", rel, count)
		summary.Indexed++
		return nil
	})
	if err != nil {
		return summary, fmt.Errorf("scanning %s: %w", b.root, err)
	}

	summary.Concepts = len(b.concepts)
	fmt.Fprintf(w, "\nfiles: %d, concepts: %d, failed: %d\n",
		summary.Total(), summary.Concepts, summary.Failed)

	return summary, nil
}

// Snapshot derives the cross-reference categories and the learning path
// from the accumulated concepts and assembles the final snapshot.
func (b *Builder) Snapshot() types.Snapshot {
	ids := make([]string, 0, len(b.concepts))
	for id := range b.concepts {
		ids = append(ids, id)
	}
	// Fixed iteration order keeps category membership lists deterministic.
	sort.Strings(ids)

	crossRefs := make(map[string][]string, len(types.CrossReferenceCategories))
	for _, category := range types.CrossReferenceCategories {
		crossRefs[category] = []string{}
	}

	learningPath := make(map[types.Tier][]string, len(types.TierOrder))
	for _, tier := range types.TierOrder {
		learningPath[tier] = []string{}
	}

	for _, id := range ids {
		c := b.concepts[id]
		for _, category := range categorize(c) {
			crossRefs[category] = append(crossRefs[category], id)
		}
		if c.Tier.Valid() {
			learningPath[c.Tier] = append(learningPath[c.Tier], id)
		}
	}

	for tier := range learningPath {
		sort.Strings(learningPath[tier])
	}

	return types.Snapshot{
		Concepts:        b.concepts,
		CrossReferences: crossRefs,
		LearningPath:    learningPath,
		Metadata: types.Metadata{
			TotalConcepts:  len(b.concepts),
			FilesProcessed: b.files,
			LastUpdated:    time.Now().UTC(),
		},
	}
}

// categorize returns the cross-reference categories a concept belongs to.
func categorize(c types.Concept) []string {
	var categories []string
	for _, category := range types.CrossReferenceCategories {
		if matchesCategory(category, c) {
			categories = append(categories, category)
		}
	}
	return categories
}

func matchesCategory(category string, c types.Concept) bool {
	switch category {
	case "advanced":
		return c.Tier == types.TierAdvanced || c.Tier == types.TierExpert
	case "testing":
		return hasKeyword(c.Keywords, "test") ||
			strings.Contains(strings.ToLower(c.Title), "testing")
	default:
		for _, kw := range categoryKeywords[category] {
			if hasKeyword(c.Keywords, kw) {
				return true
			}
		}
		return false
	}
}

func hasKeyword(keywords []string, want string) bool {
	for _, kw := range keywords {
		if kw == want {
			return true
		}
	}
	return false
}
