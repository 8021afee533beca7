// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"strings"

	"github.com/pdiddy/concept-index/pkg/types"
)

// Relevance weights. The scoring is an additive sum over independent
// signals; the weights are part of the query contract and must not drift.
const (
	weightTitleSubstring   = 50
	weightTitleExact       = 25
	weightIDSubstring      = 40
	weightKeywordSubstring = 20
	weightKeywordExact     = 10
	weightDescription      = 10
	weightWordInTitle      = 5
	weightWordInID         = 3
	weightWordInKeyword    = 2

	exactMatchScore = 100

	// Words this short or shorter are ignored in per-word scoring.
	minScoredWordLen = 2
)

// exactScore implements exact-match lookup: the query must equal the id or
// the id with hyphens replaced by spaces.
func exactScore(query, id string) float64 {
	if query == id || query == strings.ReplaceAll(id, "-", " ") {
		return exactMatchScore
	}
	return 0
}

// relevanceScore computes the additive relevance of a concept for a
// lowercased, trimmed query.
func relevanceScore(query, id string, c types.Concept) float64 {
	var score float64

	title := strings.ToLower(c.Title)
	if strings.Contains(title, query) {
		score += weightTitleSubstring
		if query == title {
			score += weightTitleExact
		}
	}

	if strings.Contains(strings.ReplaceAll(id, "-", " "), query) {
		score += weightIDSubstring
	}

	for _, kw := range c.Keywords {
		lower := strings.ToLower(kw)
		if strings.Contains(lower, query) {
			score += weightKeywordSubstring
			if query == lower {
				score += weightKeywordExact
			}
		}
	}

	if strings.Contains(strings.ToLower(c.Description), query) {
		score += weightDescription
	}

	for _, word := range strings.Fields(query) {
		if len(word) <= minScoredWordLen {
			continue
		}
		if strings.Contains(title, word) {
			score += weightWordInTitle
		}
		if strings.Contains(id, word) {
			score += weightWordInID
		}
		for _, kw := range c.Keywords {
			if strings.Contains(strings.ToLower(kw), word) {
				score += weightWordInKeyword
			}
		}
	}

	return score
}
