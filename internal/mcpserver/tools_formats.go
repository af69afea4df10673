package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/treeschema/validator"
)

type formatsInput struct{}

type formatsOutput struct {
	Formats []string `json:"formats"`
}

func handleFormats(_ context.Context, _ *mcp.CallToolRequest, _ formatsInput) (*mcp.CallToolResult, formatsOutput, error) {
	return nil, formatsOutput{Formats: validator.Formats()}, nil
}
