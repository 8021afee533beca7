// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"sort"

	"github.com/pdiddy/concept-index/pkg/types"
)

const (
	maxSuggestions  = 5
	maxNextTier     = 3
	priorityNext    = 1
	priorityRelated = 2
)

// Suggestion is one recommended next concept with the reason it was picked.
type Suggestion struct {
	ID       string        `json:"id" yaml:"id"`
	Concept  types.Concept `json:"concept" yaml:"concept"`
	Reason   string        `json:"reason" yaml:"reason"`
	Priority int           `json:"priority" yaml:"priority"`
}

// SuggestNext builds a ranked list of concepts to learn after conceptID:
// every resolvable related concept at priority 2, then the first three
// concepts of the next tier at priority 1. Lower priority sorts first, so
// next-tier suggestions surface ahead of related ones. At most five
// suggestions are returned. The second return value is false when the id
// is absent.
func (e *Engine) SuggestNext(conceptID string) ([]Suggestion, bool) {
	current, ok := e.concepts[conceptID]
	if !ok {
		return nil, false
	}

	var suggestions []Suggestion

	for _, relID := range current.RelatedConcepts {
		rel, ok := e.concepts[relID]
		if !ok {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			ID:       relID,
			Concept:  rel,
			Reason:   "related concept",
			Priority: priorityRelated,
		})
	}

	if next, ok := current.Tier.Next(); ok {
		refs := e.ByTier(string(next))
		if len(refs) > maxNextTier {
			refs = refs[:maxNextTier]
		}
		for _, ref := range refs {
			suggestions = append(suggestions, Suggestion{
				ID:       ref.ID,
				Concept:  ref.Concept,
				Reason:   fmt.Sprintf("next tier (%s)", next),
				Priority: priorityNext,
			})
		}
	}

	// Stable sort keeps insertion order within each priority.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority < suggestions[j].Priority
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return suggestions, true
}
