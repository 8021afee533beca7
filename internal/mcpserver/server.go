// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes the query engine over the Model Context
// Protocol via stdio transport, so LLM clients can search the concept
// index directly.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pdiddy/concept-index/internal/query"
)

// Server wraps the MCP server with concept-index tools.
type Server struct {
	mcp    *server.MCPServer
	engine *query.Engine
}

// New creates an MCP server with all query tools registered over engine.
func New(engine *query.Engine, version string) *Server {
	s := &Server{engine: engine}

	s.mcp = server.NewMCPServer(
		"concept-index",
		version,
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("search_concepts",
		mcp.WithDescription("Relevance search over indexed concepts. Returns scored matches."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithBoolean("exact", mcp.Description("Match the concept id exactly instead of scoring")),
	), s.searchConcepts)

	s.mcp.AddTool(mcp.NewTool("get_concept",
		mcp.WithDescription("Fetch one concept by id, with its related concepts resolved."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Concept id, e.g. ownership-basics")),
	), s.getConcept)

	s.mcp.AddTool(mcp.NewTool("concepts_by_tier",
		mcp.WithDescription("List concepts at a learning tier: basic, intermediate, advanced, or expert."),
		mcp.WithString("tier", mcp.Required(), mcp.Description("Tier name")),
	), s.conceptsByTier)

	s.mcp.AddTool(mcp.NewTool("concepts_by_project",
		mcp.WithDescription("List concepts used by a project. Matches project name substrings."),
		mcp.WithString("project", mcp.Required(), mcp.Description("Project name or fragment")),
	), s.conceptsByProject)

	s.mcp.AddTool(mcp.NewTool("cross_references",
		mcp.WithDescription("List concept ids in a cross-reference category (ownership, error-handling, concurrency, memory, types, collections, functions, testing, advanced)."),
		mcp.WithString("category", mcp.Required(), mcp.Description("Category name or fragment")),
	), s.crossReferences)

	s.mcp.AddTool(mcp.NewTool("suggest_next",
		mcp.WithDescription("Suggest concepts to learn after the given one."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Current concept id")),
	), s.suggestNext)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchConcepts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	q, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	exact := req.GetBool("exact", false)
	return jsonResult(s.engine.Search(q, exact))
}

func (s *Server) getConcept(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	details, ok := s.engine.Details(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("concept not found: %s", id)), nil
	}
	return jsonResult(details)
}

func (s *Server) conceptsByTier(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tier, err := req.RequireString("tier")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.engine.ByTier(tier))
}

func (s *Server) conceptsByProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := req.RequireString("project")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.engine.ByProject(project))
}

func (s *Server) crossReferences(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := req.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.engine.CrossReferences(category))
}

func (s *Server) suggestNext(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	suggestions, ok := s.engine.SuggestNext(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("concept not found: %s", id)), nil
	}
	return jsonResult(suggestions)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}
