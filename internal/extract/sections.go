// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns raw documentation text into concept records.
// SplitSections parses a document into titled sections; FromSection
// derives a Concept with id, tier, description, keywords, related
// concepts, and project tags. Both are pure functions over their inputs.
package extract

import (
	"regexp"
	"strings"
)

// Section is one titled block of a document: the heading text and every
// line up to the next qualifying heading.
type Section struct {
	Title string
	Body  string
}

// headingPattern matches headings of depth 2 to 4. Level-1 headings are
// document titles, not concepts; level-5+ headings stay in the body.
var headingPattern = regexp.MustCompile(`^(#{2,4})\s+(.+)$`)

// SplitSections parses document text into an ordered list of sections.
// Content before the first qualifying heading is discarded. Blank lines
// and deeper sub-headings are preserved as body text.
func SplitSections(content string) []Section {
	var (
		sections []Section
		title    string
		body     []string
		started  bool
	)

	flush := func() {
		if started {
			sections = append(sections, Section{
				Title: title,
				Body:  strings.Join(body, "\n"),
			})
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			title = strings.TrimSpace(m[2])
			body = nil
			started = true
			continue
		}
		if started {
			body = append(body, line)
		}
	}
	flush()

	return sections
}
