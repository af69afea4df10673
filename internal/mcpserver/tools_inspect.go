package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/treeschema/parser"
	"github.com/erraggy/treeschema/value"
)

type inspectInput struct {
	Doc docInput `json:"doc" jsonschema:"The document to inspect"`
}

type inspectOutput struct {
	RootKind     string         `json:"root_kind"`
	SourceFormat string         `json:"source_format,omitempty"`
	SourceSize   int64          `json:"source_size"`
	NodeCount    int            `json:"node_count"`
	MaxDepth     int            `json:"max_depth"`
	KindCounts   map[string]int `json:"kind_counts"`
	TopLevelKeys []string       `json:"top_level_keys,omitempty"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	parsed, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	doc := parsed.Document
	stats := parser.CollectStats(doc)
	output := inspectOutput{
		RootKind:     doc.Kind().String(),
		SourceFormat: string(parsed.SourceFormat),
		SourceSize:   parsed.SourceSize,
		NodeCount:    stats.NodeCount,
		MaxDepth:     stats.MaxDepth,
		KindCounts:   stats.KindCounts,
	}
	if doc.Kind() == value.KindMapping {
		output.TopLevelKeys = doc.Keys()
	}

	return nil, output, nil
}
