// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/concept-index/pkg/types"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Ownership Basics", "ownership-basics"},
		{"Rust's Ownership!", "rusts-ownership"},
		{"  Trailing  Spaces  ", "trailing-spaces"},
		{"Already-Hyphenated Title", "already-hyphenated-title"},
		{"Multiple --- Hyphens", "multiple-hyphens"},
		{"???", ""},
		{"", ""},
		{"Mixing CASE and 123", "mixing-case-and-123"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.title))
		})
	}
}

func TestSlugIdempotent(t *testing.T) {
	titles := []string{"Ownership Basics", "Rust's Ownership!", "error-handling", "Thread Pools & Channels"}
	for _, title := range titles {
		id := Slug(title)
		assert.Equal(t, id, Slug(id), "slugging a slug must be a no-op for %q", title)
	}
}

func TestTierFromPath(t *testing.T) {
	tests := []struct {
		path string
		want types.Tier
	}{
		{"learn/basic/module1/CONCEPTS.md", types.TierBasic},
		{"learn/intermediate/todo-app/CONCEPTS.md", types.TierIntermediate},
		{"learn/advanced/thread-pool/CONCEPTS.md", types.TierAdvanced},
		{"learn/expert/custom-runtime/CONCEPTS.md", types.TierExpert},
		{"learn/ADVANCED/CONCEPTS.md", types.TierAdvanced},
		{"docs/CONCEPTS.md", types.TierBasic},
		// First tier name in match order wins when several appear.
		{"basic/notes-on-expert-topics/CONCEPTS.md", types.TierBasic},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFromPath(tt.path))
		})
	}
}

func TestDescription(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "first substantial line",
			body: "\nRust's ownership model ensures memory safety.\nSecond line here.",
			want: "Rust's ownership model ensures memory safety.",
		},
		{
			name: "skips blanks headings and fences",
			body: "\n### Sub heading to skip\n```rust\nlet x = 1; // code, fence skipped but this is long\n",
			want: "let x = 1; // code, fence skipped but this is long",
		},
		{
			name: "skips short lines",
			body: "Short line.\nThis line is comfortably longer than twenty characters.",
			want: "This line is comfortably longer than twenty characters.",
		},
		{
			name: "strips inline markup",
			body: "**Ownership** is Rust's *most unique* feature for `memory` management.",
			want: "Ownership is Rust's most unique feature for memory management.",
		},
		{
			name: "placeholder when nothing qualifies",
			body: "short\n## heading\n```",
			want: "No description available.",
		},
		{
			name: "empty body",
			body: "",
			want: "No description available.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Description(tt.body))
		})
	}
}

func TestDescriptionTruncation(t *testing.T) {
	long := strings.Repeat("a", 250)
	got := Description(long)
	assert.Equal(t, strings.Repeat("a", 200)+"...", got)
	assert.Len(t, got, 203)

	exact := strings.Repeat("b", 200)
	assert.Equal(t, exact, Description(exact), "200-character lines are not truncated")
}

func TestKeywords(t *testing.T) {
	t.Run("code spans and vocabulary terms", func(t *testing.T) {
		body := "Use `Vec::new()` to build a growable list. Ownership moves values."
		got := Keywords(body)
		assert.Contains(t, got, "vec::new()")
		assert.Contains(t, got, "ownership")
		assert.Contains(t, got, "vec")
	})

	t.Run("urls and long spans are excluded", func(t *testing.T) {
		body := "See `https://doc.rust-lang.org` and `" + strings.Repeat("x", 30) + "`."
		got := Keywords(body)
		assert.NotContains(t, got, "https://doc.rust-lang.org")
		assert.NotContains(t, got, strings.Repeat("x", 30))
	})

	t.Run("sorted and capped at ten", func(t *testing.T) {
		// Spans a..l plus vocabulary hits push past the cap.
		body := "`zz1` `zz2` `zz3` ownership borrowing lifetime trait struct enum match option result vec"
		got := Keywords(body)
		require.Len(t, got, 10)
		assert.True(t, sortedStrings(got), "keywords must be sorted ascending")
		// Truncation keeps the alphabetically-first ten, so the zz spans fall off.
		assert.NotContains(t, got, "zz3")
	})

	t.Run("empty body", func(t *testing.T) {
		assert.Empty(t, Keywords(""))
	})
}

func TestRelatedConcepts(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "see also list",
			body: "Rust's ownership model. See also: borrowing, lifetimes.",
			want: []string{"borrowing", "lifetimes"},
		},
		{
			name: "cue phrases are case-insensitive",
			body: "SEE ALSO: Traits; Generic Functions",
			want: []string{"generic-functions", "traits"},
		},
		{
			name: "builds on and requires",
			body: "Builds on: Ownership Basics\nRequires: error handling",
			want: []string{"error-handling", "ownership-basics"},
		},
		{
			name: "tail stops at sentence end",
			body: "Related to: closures. The rest is ignored here.",
			want: []string{"closures"},
		},
		{
			name: "no cue phrases",
			body: "Just a plain paragraph with no references.",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelatedConcepts(tt.body))
		})
	}
}

func TestRelatedConceptsCap(t *testing.T) {
	body := "See also: one, two, three, four, five, six, seven"
	got := RelatedConcepts(body)
	assert.Len(t, got, 5)
	assert.True(t, sortedStrings(got))
}

func TestProjectsFromPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"advanced/thread-pool/CONCEPTS.md", []string{"thread-pool"}},
		{"basic/calculator/CONCEPTS.md", []string{"calculator"}},
		{"intermediate/todo-app/extras/calculator/CONCEPTS.md", []string{"calculator", "todo-app"}},
		{"docs/CONCEPTS.md", []string{}},
		// Same project in two components appears once.
		{"thread-pool/thread-pool/CONCEPTS.md", []string{"thread-pool"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectsFromPath(tt.path))
		})
	}
}

func TestFromSection(t *testing.T) {
	sec := Section{
		Title: "Ownership Basics",
		Body:  "Rust's ownership model ensures memory safety without a garbage collector. See also: borrowing, lifetimes.",
	}

	id, c, ok := FromSection(sec, "learn/basic/module1/CONCEPTS.md", "basic/module1/CONCEPTS.md")
	require.True(t, ok)

	assert.Equal(t, "ownership-basics", id)
	assert.Equal(t, "Ownership Basics", c.Title)
	assert.Equal(t, types.TierBasic, c.Tier)
	assert.True(t, strings.HasPrefix(c.Description, "Rust's ownership model"), "description = %q", c.Description)
	assert.Equal(t, "basic/module1/CONCEPTS.md", c.FilePath)
	assert.Equal(t, id, c.Anchor)
	assert.Subset(t, c.RelatedConcepts, []string{"borrowing", "lifetimes"})
	assert.Contains(t, c.Keywords, "ownership")
}

func TestFromSectionEmptySlug(t *testing.T) {
	_, _, ok := FromSection(Section{Title: "???", Body: "body text"}, "basic/CONCEPTS.md", "CONCEPTS.md")
	assert.False(t, ok, "unsluggable titles must yield no concept")
}

func TestFromSectionBounds(t *testing.T) {
	body := "See also: a1, b2, c3, d4, e5, f6, g7.\n" +
		"Covers ownership borrowing lifetime trait impl struct enum match option result vec string."
	id, c, ok := FromSection(Section{Title: "Everything At Once", Body: body}, "expert/CONCEPTS.md", "CONCEPTS.md")
	require.True(t, ok)

	assert.Equal(t, "everything-at-once", id)
	assert.LessOrEqual(t, len(c.Keywords), 10)
	assert.LessOrEqual(t, len(c.RelatedConcepts), 5)
	assert.True(t, c.Tier.Valid())
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
