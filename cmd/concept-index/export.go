// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the concept index to YAML or JSON",
	Long: `Export writes every indexed concept as a flat, id-sorted list for external
reporting tools. The format is chosen with --format (yaml or json).`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	engine := loadEngine()

	switch format {
	case "yaml", "":
		if err := engine.ExportYAML(args[0]); err != nil {
			return err
		}
	case "json":
		if err := engine.ExportJSON(args[0]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	fmt.Printf("Exported %d concepts to %s\n", engine.Len(), args[0])
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	rootCmd.AddCommand(exportCmd)
}
