package validator

import (
	"github.com/erraggy/treeschema/internal/options"
	"github.com/erraggy/treeschema/parser"
	"github.com/erraggy/treeschema/valerrors"
	"github.com/erraggy/treeschema/value"
)

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	// Instance source (exactly one must be set)
	instance       *value.Value
	instanceParsed *parser.ParseResult
	instanceFile   *string

	// Schema source (exactly one must be set)
	schema       *value.Value
	schemaParsed *parser.ParseResult
	schemaFile   *string

	// Configuration options
	includeWarnings bool
	maxDepth        int
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		// Set defaults to match Validator defaults
		includeWarnings: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an instance source (use WithInstance, WithInstanceParsed, or WithInstanceFile)",
		"must specify exactly one instance source",
		cfg.instance != nil, cfg.instanceParsed != nil, cfg.instanceFile != nil,
	); err != nil {
		return nil, err
	}

	if err := options.ValidateSingleInputSource(
		"must specify a schema source (use WithSchema, WithSchemaParsed, or WithSchemaFile)",
		"must specify exactly one schema source",
		cfg.schema != nil, cfg.schemaParsed != nil, cfg.schemaFile != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveSchema produces the schema tree from whichever schema source is set.
func (cfg *validateConfig) resolveSchema() (value.Value, error) {
	switch {
	case cfg.schema != nil:
		return *cfg.schema, nil
	case cfg.schemaParsed != nil:
		return cfg.schemaParsed.Document, nil
	default:
		result, err := parser.ParseWithOptions(parser.WithFilePath(*cfg.schemaFile))
		if err != nil {
			return value.Value{}, err
		}
		return result.Document, nil
	}
}

// resolveInstance produces the parsed instance when the instance source
// carries parse metadata; it returns nil when the instance was supplied
// as an in-memory value.
func (cfg *validateConfig) resolveInstance() (*parser.ParseResult, error) {
	switch {
	case cfg.instanceParsed != nil:
		return cfg.instanceParsed, nil
	case cfg.instanceFile != nil:
		return parser.ParseWithOptions(parser.WithFilePath(*cfg.instanceFile))
	default:
		return nil, nil
	}
}

// WithInstance specifies an in-memory value tree as the instance source
func WithInstance(instance value.Value) Option {
	return func(cfg *validateConfig) error {
		cfg.instance = &instance
		return nil
	}
}

// WithInstanceParsed specifies a parsed ParseResult as the instance source
func WithInstanceParsed(result parser.ParseResult) Option {
	return func(cfg *validateConfig) error {
		cfg.instanceParsed = &result
		return nil
	}
}

// WithInstanceFile specifies a file path as the instance source
func WithInstanceFile(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.instanceFile = &path
		return nil
	}
}

// WithSchema specifies an in-memory value tree as the schema source
func WithSchema(schema value.Value) Option {
	return func(cfg *validateConfig) error {
		cfg.schema = &schema
		return nil
	}
}

// WithSchemaParsed specifies a parsed ParseResult as the schema source
func WithSchemaParsed(result parser.ParseResult) Option {
	return func(cfg *validateConfig) error {
		cfg.schemaParsed = &result
		return nil
	}
}

// WithSchemaFile specifies a file path as the schema source
func WithSchemaFile(path string) Option {
	return func(cfg *validateConfig) error {
		cfg.schemaFile = &path
		return nil
	}
}

// WithIncludeWarnings enables or disables unrecognized-keyword warnings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithMaxDepth overrides the recursion depth cap.
// Default: 100
func WithMaxDepth(n int) Option {
	return func(cfg *validateConfig) error {
		if n < 0 {
			return &valerrors.ConfigError{Option: "WithMaxDepth", Value: n, Message: "must not be negative"}
		}
		cfg.maxDepth = n
		return nil
	}
}
