// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes treeschema capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/treeschema"
)

const serverInstructions = `treeschema MCP server — validates JSON/YAML documents against schema trees and inspects document structure.

Configuration: All defaults are configurable via TREESCHEMA_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- TREESCHEMA_CACHE_FILE_TTL (default: 15m) — cache TTL for local file documents
- TREESCHEMA_CACHE_CONTENT_TTL (default: 15m) — cache TTL for inline content
- TREESCHEMA_CACHE_ENABLED (default: true) — disable document caching entirely
- TREESCHEMA_VALIDATE_NO_WARNINGS (default: false) — suppress warnings by default
- TREESCHEMA_VALIDATE_MAX_DEPTH (default: 100) — validation recursion depth cap
- TREESCHEMA_ISSUE_LIMIT (default: 100) — default result limit for error lists

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "treeschema", Version: treeschema.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate a JSON or YAML document against a schema. Returns all violations with paths into the document, the failing keyword, and a message. Use no_warnings to suppress unrecognized-keyword warnings, and offset/limit to paginate through large error lists. Defaults are configurable via TREESCHEMA_VALIDATE_NO_WARNINGS and TREESCHEMA_VALIDATE_MAX_DEPTH env vars.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Inspect a JSON or YAML document's structure. Returns the root kind, node counts by kind, maximum nesting depth, and top-level keys. Useful for sizing up a document before writing a schema for it.",
	}, handleInspect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "formats",
		Description: "List the registered string format names usable with the format keyword (e.g. email, ipv4, date-time).",
	}, handleFormats)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.IssueLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.IssueLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
