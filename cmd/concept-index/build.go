// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/concept-index/internal/index"
	"github.com/pdiddy/concept-index/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scan a corpus and build the concept index snapshot",
	Long: `Build recursively scans the corpus root for documentation files (CONCEPTS.md
by default), extracts concepts from their sections, derives cross-references
and the learning path, and writes the snapshot. Unreadable files are skipped
with a warning; the snapshot write is atomic.`,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	conceptsFile, _ := cmd.Flags().GetString("concepts-file")
	if conceptsFile == "" {
		conceptsFile = viper.GetString("index.concepts_file")
	}

	cfg := types.IndexConfig{
		RootDir:      root,
		ConceptsFile: conceptsFile,
		SnapshotPath: snapshotPath(),
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid build configuration: %w", err)
	}

	builder := index.NewBuilder(cfg)
	summary, err := builder.Scan(os.Stdout)
	if err != nil {
		return err
	}

	snap := builder.Snapshot()
	if err := index.WriteSnapshot(cfg.SnapshotPath, snap); err != nil {
		return err
	}
	fmt.Printf("Index saved to %s\n", cfg.SnapshotPath)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		printBuildStats(snap, summary)
	}
	return nil
}

func printBuildStats(snap types.Snapshot, summary index.BuildSummary) {
	fmt.Println("\nIndex statistics:")
	fmt.Printf("Total concepts: %d\n", snap.Metadata.TotalConcepts)
	fmt.Printf("Files processed: %d\n", snap.Metadata.FilesProcessed)
	fmt.Printf("Duplicate ids overwritten: %d\n", summary.Collisions)

	fmt.Println("\nConcepts by tier:")
	for _, tier := range types.TierOrder {
		fmt.Printf("  %-12s %d\n", tier, len(snap.LearningPath[tier]))
	}

	fmt.Println("\nConcepts by category:")
	for _, category := range types.CrossReferenceCategories {
		fmt.Printf("  %-14s %d\n", category, len(snap.CrossReferences[category]))
	}
}

func init() {
	buildCmd.Flags().String("root", ".", "root directory of the documentation corpus")
	buildCmd.Flags().String("concepts-file", "", "documentation filename to index (default: CONCEPTS.md)")
	buildCmd.Flags().BoolP("verbose", "v", false, "print index statistics after the build")

	rootCmd.AddCommand(buildCmd)
}
