// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the concept-index CLI. The commands
// are thin collaborators around the core: build drives the index builder,
// the query commands render query engine results, and serve exposes the
// engine over MCP. Argument parsing, exit codes, and rendering all live
// here, outside the core packages.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/concept-index/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the concept-index CLI.
var rootCmd = &cobra.Command{
	Use:   "concept-index",
	Short: "Index and search learning-path concept documentation",
	Long: `concept-index scans a learning-path corpus for CONCEPTS.md files, builds a
searchable concept index with cross-references and a tiered learning path,
and answers queries against it: free-text search, exact lookup, tier and
project filters, category cross-references, and next-concept suggestions.

Build the index once with 'concept-index build', then query the snapshot
with the search, details, tier, project, crossref, and suggest commands.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./concept-index.yaml or ~/.config/concept-index/config.yaml)")
	rootCmd.PersistentFlags().String("index", "", "snapshot file (default: ./concept_index.json)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("concept-index")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "concept-index"))
		}
	}

	viper.SetEnvPrefix("CONCEPT_INDEX")
	viper.AutomaticEnv()

	viper.SetDefault("index.concepts_file", types.DefaultConceptsFile)
	viper.SetDefault("index.snapshot_path", types.DefaultSnapshotFile)
	viper.SetDefault("query.max_results", 10)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// snapshotPath resolves the snapshot location: --index flag first, then
// config, then the default next to the working directory.
func snapshotPath() string {
	if path, _ := rootCmd.PersistentFlags().GetString("index"); path != "" {
		return path
	}
	return viper.GetString("index.snapshot_path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
