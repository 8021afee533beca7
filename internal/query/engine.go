// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query answers lookups over a loaded concept snapshot: relevance
// search, exact lookup, tier and project filters, cross-reference lookup,
// and next-concept suggestions. The engine is read-only after load.
package query

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pdiddy/concept-index/pkg/types"
)

// Engine holds the full snapshot in memory for the process lifetime.
type Engine struct {
	concepts     map[string]types.Concept
	crossRefs    map[string][]string
	learningPath map[types.Tier][]string
	meta         types.Metadata
}

// NewEngine wraps an in-memory snapshot.
func NewEngine(snap types.Snapshot) *Engine {
	e := emptyEngine()
	if snap.Concepts != nil {
		e.concepts = snap.Concepts
	}
	if snap.CrossReferences != nil {
		e.crossRefs = snap.CrossReferences
	}
	if snap.LearningPath != nil {
		e.learningPath = snap.LearningPath
	}
	e.meta = snap.Metadata
	return e
}

// Load reads the snapshot at path. On a missing or unparsable file it
// returns a usable empty engine together with the error, so callers can
// log a warning and keep serving empty results instead of terminating.
func Load(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return emptyEngine(), fmt.Errorf("index %s not found: run a build first", path)
		}
		return emptyEngine(), fmt.Errorf("reading index %s: %w", path, err)
	}

	var snap types.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return emptyEngine(), fmt.Errorf("parsing index %s: %w", path, err)
	}

	return NewEngine(snap), nil
}

func emptyEngine() *Engine {
	return &Engine{
		concepts:     make(map[string]types.Concept),
		crossRefs:    make(map[string][]string),
		learningPath: make(map[types.Tier][]string),
	}
}

// Metadata returns the loaded snapshot's build metadata.
func (e *Engine) Metadata() types.Metadata {
	return e.meta
}

// Len returns the number of loaded concepts.
func (e *Engine) Len() int {
	return len(e.concepts)
}

// SearchResult pairs a concept with its relevance score.
type SearchResult struct {
	ID      string        `json:"id" yaml:"id"`
	Score   float64       `json:"score" yaml:"score"`
	Concept types.Concept `json:"concept" yaml:"concept"`
}

// Search scores every concept against the query and returns matches in
// descending score order, ties broken by id. Concepts scoring zero or
// below are excluded. With exact set, only the concept whose id (or its
// space-separated form) equals the query is returned, at score 100.
func (e *Engine) Search(query string, exact bool) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))

	var results []SearchResult
	for id, c := range e.concepts {
		var score float64
		if exact {
			score = exactScore(q, id)
		} else {
			score = relevanceScore(q, id, c)
		}
		if score > 0 {
			results = append(results, SearchResult{ID: id, Score: score, Concept: c})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	return results
}

// RelatedDetail summarizes one resolvable related concept.
type RelatedDetail struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Tier        types.Tier `json:"tier" yaml:"tier"`
	Description string     `json:"description" yaml:"description"`
}

// ConceptDetails is a concept record augmented with resolved related
// concepts. Related ids absent from the index are silently dropped.
type ConceptDetails struct {
	ID      string          `json:"id" yaml:"id"`
	Concept types.Concept   `json:"concept" yaml:"concept"`
	Related []RelatedDetail `json:"related_concepts_details" yaml:"related_concepts_details"`
}

// Details returns the concept with the given id and its resolved related
// concepts. The second return value is false when the id is absent.
func (e *Engine) Details(id string) (ConceptDetails, bool) {
	c, ok := e.concepts[id]
	if !ok {
		return ConceptDetails{}, false
	}

	details := ConceptDetails{ID: id, Concept: c, Related: []RelatedDetail{}}
	for _, relID := range c.RelatedConcepts {
		rel, ok := e.concepts[relID]
		if !ok {
			continue
		}
		details.Related = append(details.Related, RelatedDetail{
			ID:          relID,
			Title:       rel.Title,
			Tier:        rel.Tier,
			Description: rel.Description,
		})
	}

	return details, true
}

// CrossReferences returns the concept ids of the first category whose name
// contains the query, matching categories in their fixed order. An empty
// slice means no category matched.
func (e *Engine) CrossReferences(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, category := range types.CrossReferenceCategories {
		if strings.Contains(category, q) {
			return e.crossRefs[category]
		}
	}
	return []string{}
}

// ConceptRef is a resolved concept with its id.
type ConceptRef struct {
	ID      string        `json:"id" yaml:"id"`
	Concept types.Concept `json:"concept" yaml:"concept"`
}

// ByTier returns the concepts listed under the given tier in the learning
// path, in the path's sorted order. Ids no longer present in the concept
// mapping are skipped. Unknown tiers yield an empty result.
func (e *Engine) ByTier(tier string) []ConceptRef {
	ids := e.learningPath[types.Tier(strings.ToLower(tier))]

	refs := make([]ConceptRef, 0, len(ids))
	for _, id := range ids {
		if c, ok := e.concepts[id]; ok {
			refs = append(refs, ConceptRef{ID: id, Concept: c})
		}
	}
	return refs
}

// ByProject returns all concepts tagged with a project whose name contains
// projectName, ordered by id.
func (e *Engine) ByProject(projectName string) []ConceptRef {
	name := strings.ToLower(projectName)

	var refs []ConceptRef
	for id, c := range e.concepts {
		for _, project := range c.Projects {
			if strings.Contains(strings.ToLower(project), name) {
				refs = append(refs, ConceptRef{ID: id, Concept: c})
				break
			}
		}
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return refs
}
