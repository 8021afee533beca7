// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/concept-index/internal/query"
	"github.com/pdiddy/concept-index/pkg/types"
)

// loadEngine opens the snapshot for the query commands. Load failures are
// reported as warnings and the command proceeds with an empty index, so a
// missing snapshot yields empty results rather than a crash.
func loadEngine() *query.Engine {
	engine, err := query.Load(snapshotPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return engine
}

// --- search ---

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search concepts by relevance",
	Long: `Search scores every indexed concept against the query over its title, id,
keywords, and description, and prints matches in descending score order.
Use --exact to look up a concept id exactly.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	exact, _ := cmd.Flags().GetBool("exact")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults <= 0 {
		maxResults = viper.GetInt("query.max_results")
	}

	cfg := types.QueryConfig{SnapshotPath: snapshotPath(), MaxResults: maxResults}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid query configuration: %w", err)
	}

	results := loadEngine().Search(strings.Join(args, " "), exact)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No concepts found matching your query.")
		return nil
	}

	fmt.Printf("Found %d concept(s):\n\n", len(results))
	shown := results
	if len(shown) > maxResults {
		shown = shown[:maxResults]
	}
	for i, r := range shown {
		fmt.Printf("%d. %s (score: %.1f)\n", i+1, r.Concept.Title, r.Score)
		fmt.Printf("   Tier: %s\n", r.Concept.Tier)
		fmt.Printf("   Description: %s\n", r.Concept.Description)
		if len(r.Concept.Keywords) > 0 {
			fmt.Printf("   Keywords: %s\n", strings.Join(capStrings(r.Concept.Keywords, 5), ", "))
		}
		if len(r.Concept.Projects) > 0 {
			fmt.Printf("   Used in projects: %s\n", strings.Join(capStrings(r.Concept.Projects, 3), ", "))
		}
		fmt.Println()
	}
	if len(results) > maxResults {
		fmt.Printf("... and %d more results\n", len(results)-maxResults)
	}
	return nil
}

// --- details ---

var detailsCmd = &cobra.Command{
	Use:   "details [concept-id]",
	Short: "Show one concept with its related concepts resolved",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetails,
}

func runDetails(cmd *cobra.Command, args []string) error {
	details, ok := loadEngine().Details(args[0])
	if !ok {
		fmt.Printf("Concept not found: %s\n", args[0])
		return nil
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(details)
	}

	c := details.Concept
	fmt.Printf("=== %s ===\n", c.Title)
	fmt.Printf("Tier: %s\n", c.Tier)
	fmt.Printf("Description: %s\n\n", c.Description)
	if len(c.Keywords) > 0 {
		fmt.Printf("Keywords: %s\n\n", strings.Join(c.Keywords, ", "))
	}
	if len(c.Projects) > 0 {
		fmt.Printf("Used in projects: %s\n\n", strings.Join(c.Projects, ", "))
	}
	if len(details.Related) > 0 {
		fmt.Println("Related concepts:")
		for _, rel := range details.Related {
			fmt.Printf("  - %s (%s): %s\n", rel.Title, rel.Tier, rel.Description)
		}
		fmt.Println()
	}
	fmt.Printf("Documentation: %s#%s\n", c.FilePath, c.Anchor)
	return nil
}

// --- suggest ---

var suggestCmd = &cobra.Command{
	Use:   "suggest [concept-id]",
	Short: "Suggest concepts to learn next",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	suggestions, ok := loadEngine().SuggestNext(args[0])
	if !ok {
		fmt.Printf("Concept not found: %s\n", args[0])
		return nil
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(suggestions)
	}

	if len(suggestions) == 0 {
		fmt.Printf("No suggestions found for concept '%s'\n", args[0])
		return nil
	}
	fmt.Printf("Learning path suggestions after '%s':\n", args[0])
	for _, s := range suggestions {
		fmt.Printf("- %s (%s)\n", s.Concept.Title, s.Reason)
		fmt.Printf("  %s\n", s.Concept.Description)
	}
	return nil
}

// --- crossref ---

var crossrefCmd = &cobra.Command{
	Use:   "crossref [category]",
	Short: "List concepts in a cross-reference category",
	Long: `Crossref prints the concepts grouped under the first category whose name
contains the query. Categories: ownership, error-handling, concurrency,
memory, types, collections, functions, testing, advanced.`,
	Args: cobra.ExactArgs(1),
	RunE: runCrossref,
}

func runCrossref(cmd *cobra.Command, args []string) error {
	engine := loadEngine()
	ids := engine.CrossReferences(args[0])

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(ids)
	}

	if len(ids) == 0 {
		fmt.Printf("No cross-references found for '%s'\n", args[0])
		return nil
	}
	fmt.Printf("Cross-referenced concepts for '%s':\n", args[0])
	for _, id := range ids {
		if details, ok := engine.Details(id); ok {
			fmt.Printf("- %s: %s\n", details.Concept.Title, details.Concept.Description)
		}
	}
	return nil
}

// --- tier ---

var tierCmd = &cobra.Command{
	Use:   "tier [basic|intermediate|advanced|expert]",
	Short: "List concepts at a learning tier",
	Args:  cobra.ExactArgs(1),
	RunE:  runTier,
}

func runTier(cmd *cobra.Command, args []string) error {
	refs := loadEngine().ByTier(args[0])

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(refs)
	}

	if len(refs) == 0 {
		fmt.Printf("No concepts found for tier '%s'\n", args[0])
		return nil
	}
	fmt.Printf("Concepts for %s tier:\n", args[0])
	for _, ref := range refs {
		fmt.Printf("- %s: %s\n", ref.Concept.Title, ref.Concept.Description)
	}
	return nil
}

// --- project ---

var projectCmd = &cobra.Command{
	Use:   "project [name]",
	Short: "List concepts used in a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProject,
}

func runProject(cmd *cobra.Command, args []string) error {
	refs := loadEngine().ByProject(args[0])

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(refs)
	}

	if len(refs) == 0 {
		fmt.Printf("No concepts found for project '%s'\n", args[0])
		return nil
	}
	fmt.Printf("Concepts used in project '%s':\n", args[0])
	for _, ref := range refs {
		fmt.Printf("- %s: %s\n", ref.Concept.Title, ref.Concept.Description)
	}
	return nil
}

// --- shared helpers ---

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func capStrings(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func init() {
	searchCmd.Flags().Bool("exact", false, "exact concept id match only")
	searchCmd.Flags().Int("max-results", 0, "maximum results to show (0 = use default)")

	for _, cmd := range []*cobra.Command{searchCmd, detailsCmd, suggestCmd, crossrefCmd, tierCmd, projectCmd} {
		cmd.Flags().Bool("json", false, "output results as JSON")
		rootCmd.AddCommand(cmd)
	}
}
