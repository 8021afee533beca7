// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/concept-index/internal/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the concept index over MCP on stdio",
	Long: `Serve loads the snapshot and exposes the query engine as MCP tools over
stdio, for use from LLM clients. The index is read-only for the lifetime
of the server; rebuild and restart to pick up corpus changes.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	engine := loadEngine()
	logger.Info("serving concept index over MCP",
		"concepts", engine.Len(),
		"snapshot", snapshotPath())

	return mcpserver.New(engine, version).ServeStdio()
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
