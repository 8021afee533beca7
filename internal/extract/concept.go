// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/concept-index/pkg/types"
)

const (
	maxKeywords        = 10
	maxRelatedConcepts = 5
	maxDescriptionLen  = 200
	minDescriptionLen  = 20
	maxCodeSpanLen     = 30

	noDescription = "No description available."
)

var (
	nonSlugChars   = regexp.MustCompile(`[^\w\s-]`)
	slugSeparators = regexp.MustCompile(`[-\s]+`)

	codeSpanPattern = regexp.MustCompile("`([^`]+)`")
	boldPattern     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern   = regexp.MustCompile(`\*(.+?)\*`)

	listSeparators = regexp.MustCompile(`[,;]`)
)

// Slug derives a concept id from a heading title: lowercase, punctuation
// stripped, whitespace and hyphen runs collapsed to single hyphens.
// Slugs are idempotent: Slug(Slug(t)) == Slug(t).
func Slug(title string) string {
	id := strings.ToLower(title)
	id = nonSlugChars.ReplaceAllString(id, "")
	id = slugSeparators.ReplaceAllString(id, "-")
	return strings.Trim(id, "-")
}

// TierFromPath derives the learning tier from a document path. The first
// tier name appearing as a substring wins; unknown locations are basic.
func TierFromPath(path string) types.Tier {
	lower := strings.ToLower(path)
	for _, tier := range types.TierOrder {
		if strings.Contains(lower, string(tier)) {
			return tier
		}
	}
	return types.TierBasic
}

// Description returns the first substantial content line of a section body:
// not blank, not a heading, not a code-fence delimiter, and longer than 20
// characters. Inline bold/italic/code markup is stripped and the result is
// truncated to 200 characters with a trailing ellipsis.
func Description(body string) string {
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			continue
		}
		if utf8.RuneCountInString(line) <= minDescriptionLen {
			continue
		}

		line = boldPattern.ReplaceAllString(line, "$1")
		line = italicPattern.ReplaceAllString(line, "$1")
		line = codeSpanPattern.ReplaceAllString(line, "$1")

		runes := []rune(line)
		if len(runes) > maxDescriptionLen {
			return string(runes[:maxDescriptionLen]) + "..."
		}
		return line
	}
	return noDescription
}

// Keywords collects lowercase tokens from inline code spans (shorter than
// 30 characters, not URLs) and from domain vocabulary terms found in the
// body. The result is sorted ascending and truncated to the first 10.
func Keywords(body string) []string {
	set := make(map[string]struct{})

	for _, m := range codeSpanPattern.FindAllStringSubmatch(body, -1) {
		span := m[1]
		if utf8.RuneCountInString(span) < maxCodeSpanLen && !strings.HasPrefix(span, "http") {
			set[strings.ToLower(span)] = struct{}{}
		}
	}

	lower := strings.ToLower(body)
	for _, term := range domainTerms {
		if strings.Contains(lower, term) {
			set[term] = struct{}{}
		}
	}

	return sortAndCap(set, maxKeywords)
}

// RelatedConcepts harvests concept ids from cue phrases in the body. Each
// cue phrase's tail is split on commas and semicolons, and every non-empty
// piece is slugged. The result is sorted ascending and truncated to 5.
func RelatedConcepts(body string) []string {
	set := make(map[string]struct{})

	for _, pattern := range cuePatterns {
		for _, m := range pattern.FindAllStringSubmatch(body, -1) {
			for _, piece := range listSeparators.Split(m[1], -1) {
				if id := Slug(strings.TrimSpace(piece)); id != "" {
					set[id] = struct{}{}
				}
			}
		}
	}

	return sortAndCap(set, maxRelatedConcepts)
}

// ProjectsFromPath matches each path component against the project catalog.
// Scanning stops at the first catalog entry found in a component, so each
// component contributes at most one project. The result is a deduplicated
// sorted set.
func ProjectsFromPath(path string) []string {
	set := make(map[string]struct{})

	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		lower := strings.ToLower(part)
		for _, project := range projectCatalog {
			if strings.Contains(lower, project) {
				set[project] = struct{}{}
				break
			}
		}
	}

	out := make([]string, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// FromSection derives one Concept from a parsed section. path is the full
// document path used for tier and project derivation; relPath is the
// corpus-relative path stored on the record. Sections whose title slugs to
// the empty string yield no concept.
func FromSection(sec Section, path, relPath string) (string, types.Concept, bool) {
	id := Slug(sec.Title)
	if id == "" {
		return "", types.Concept{}, false
	}

	c := types.Concept{
		Title:           sec.Title,
		Tier:            TierFromPath(path),
		Description:     Description(sec.Body),
		FilePath:        filepath.ToSlash(relPath),
		Anchor:          id,
		Keywords:        Keywords(sec.Body),
		RelatedConcepts: RelatedConcepts(sec.Body),
		Projects:        ProjectsFromPath(path),
	}
	return id, c, true
}

// sortAndCap returns the set's members sorted ascending, keeping the first n.
func sortAndCap(set map[string]struct{}, n int) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	if len(out) > n {
		out = out[:n]
	}
	return out
}
