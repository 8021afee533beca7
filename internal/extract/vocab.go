// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "regexp"

// domainTerms is the curated vocabulary of Rust terms promoted to keywords
// when they appear anywhere in a section body.
var domainTerms = []string{
	"ownership", "borrowing", "lifetime", "trait", "impl", "struct", "enum",
	"match", "option", "result", "vec", "string", "slice", "reference",
	"mutable", "immutable", "async", "await", "thread", "mutex", "arc",
	"box", "rc", "refcell", "unsafe", "macro", "generic", "closure",
	"iterator", "collect", "map", "filter", "fold", "unwrap", "expect",
}

// projectCatalog lists the known project names matched against document
// path components.
var projectCatalog = []string{
	"calculator", "file-explorer", "text-processor", "todo-app",
	"library-management-system", "cli-database-tool", "custom-data-structure",
	"multi-threaded-web-scraper", "thread-pool", "c-library-binding",
	"custom-memory-allocator", "dsl-project", "async-network-server",
	"compiler-plugin", "custom-runtime", "high-performance-data-processing",
	"capstone-project", "capstone-distributed-analysis",
}

// cuePatterns detect sentences that reference other concepts. Each captures
// the comma/semicolon-separated list that follows the cue phrase.
var cuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)see also:?\s*([^.\n]+)`),
	regexp.MustCompile(`(?i)related to:?\s*([^.\n]+)`),
	regexp.MustCompile(`(?i)builds on:?\s*([^.\n]+)`),
	regexp.MustCompile(`(?i)requires:?\s*([^.\n]+)`),
}
