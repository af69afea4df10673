package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/treeschema/validator"
)

type validateInput struct {
	Instance   docInput `json:"instance"                jsonschema:"The document to validate"`
	Schema     docInput `json:"schema"                  jsonschema:"The schema to validate against"`
	NoWarnings *bool    `json:"no_warnings,omitempty"   jsonschema:"Suppress unrecognized-keyword warnings from output"`
	MaxDepth   int      `json:"max_depth,omitempty"     jsonschema:"Validation recursion depth cap (default 100)"`
	Offset     int      `json:"offset,omitempty"        jsonschema:"Skip the first N errors/warnings (for pagination)"`
	Limit      int      `json:"limit,omitempty"         jsonschema:"Maximum number of errors/warnings to return (default 100). Applied independently to errors and warnings arrays."`
}

type validateIssue struct {
	Path    string `json:"path"`
	Keyword string `json:"keyword,omitempty"`
	Message string `json:"message"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Returned     int             `json:"returned"`
	SourceFormat string          `json:"source_format,omitempty"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	noWarnings := cfg.ValidateNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}
	maxDepth := cfg.ValidateMaxDepth
	if input.MaxDepth > 0 {
		maxDepth = input.MaxDepth
	}

	instance, err := input.Instance.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}
	schema, err := input.Schema.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	v := &validator.Validator{
		IncludeWarnings: !noWarnings,
		MaxDepth:        maxDepth,
	}
	result, err := v.ValidateParsed(*instance, schema.Document)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:        result.Valid,
		ErrorCount:   result.ErrorCount,
		SourceFormat: string(result.SourceFormat),
	}

	output.Errors = makeSlice[validateIssue](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, validateIssue{
			Path:    e.Path.String(),
			Keyword: e.Keyword,
			Message: e.Message,
		})
	}
	if !noWarnings {
		output.WarningCount = result.WarningCount
		output.Warnings = makeSlice[validateIssue](len(result.Warnings))
		for _, w := range result.Warnings {
			output.Warnings = append(output.Warnings, validateIssue{
				Path:    w.Path.String(),
				Keyword: w.Keyword,
				Message: w.Message,
			})
		}
	}

	// Paginate errors and warnings.
	output.Errors = paginate(output.Errors, input.Offset, input.Limit)
	if !noWarnings {
		output.Warnings = paginate(output.Warnings, input.Offset, input.Limit)
	}
	output.Returned = len(output.Errors) + len(output.Warnings)

	return nil, output, nil
}
