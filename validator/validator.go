package validator

import (
	"fmt"
	"time"

	"github.com/erraggy/treeschema/internal/issues"
	"github.com/erraggy/treeschema/internal/severity"
	"github.com/erraggy/treeschema/parser"
	"github.com/erraggy/treeschema/value"
)

// Severity indicates the severity level of a validation issue
type Severity = severity.Severity

const (
	// SeverityError indicates a schema violation that makes the instance invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a non-fatal finding such as an unrecognized keyword
	SeverityWarning = severity.SeverityWarning
	// SeverityInfo indicates informational messages
	SeverityInfo = severity.SeverityInfo
)

const (
	// defaultErrorCapacity is the initial capacity for error slices
	defaultErrorCapacity = 10
	// defaultWarningCapacity is the initial capacity for warning slices
	defaultWarningCapacity = 4

	// defaultMaxDepth caps recursion through nested instances and
	// composition sub-schemas to prevent stack overflow.
	defaultMaxDepth = 100
)

// ValidationError represents a single validation issue
type ValidationError = issues.Issue

// Path locates a value inside the validated instance.
type Path = issues.Path

// Segment is one step in a Path: a mapping key or a sequence index.
type Segment = issues.Segment

// ValidationResult contains the results of validating an instance
// against a schema.
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Errors contains all validation errors
	Errors []ValidationError
	// Warnings contains all validation warnings
	Warnings []ValidationError
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// LoadTime is the time taken to load the instance source, when the
	// instance came through the parser
	LoadTime time.Duration
	// SourceSize is the size of the instance source in bytes (0 for
	// in-memory instances)
	SourceSize int64
	// SourceFormat is the format of the instance source (JSON or YAML)
	SourceFormat parser.SourceFormat
	// SourcePath is the instance source path, when the instance came
	// through the parser
	SourcePath string
}

// Validator validates instance trees against schema trees
type Validator struct {
	// IncludeWarnings determines whether unrecognized schema keywords are
	// reported as warnings
	IncludeWarnings bool
	// MaxDepth caps recursion depth through nested values and sub-schemas.
	// Zero means the default of 100.
	MaxDepth int
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		IncludeWarnings: true,
	}
}

func (v *Validator) maxDepth() int {
	if v.MaxDepth > 0 {
		return v.MaxDepth
	}
	return defaultMaxDepth
}

// Validate validates an instance tree against a schema tree.
//
// Nonconforming instance data is reported through the returned
// ValidationResult and is never a Go error. The error return is reserved
// for malformed schemas (valerrors.SchemaError) and recursion depth
// exhaustion (valerrors.ResourceLimitError).
//
// Neither tree is mutated or retained; the result is freshly allocated
// and owned by the caller.
func (v *Validator) Validate(instance, schema value.Value) (*ValidationResult, error) {
	result := &ValidationResult{
		Errors:   make([]ValidationError, 0, defaultErrorCapacity),
		Warnings: make([]ValidationError, 0, defaultWarningCapacity),
	}

	w := &walker{v: v, result: result}
	if err := w.walk(instance, schema, nil, 0); err != nil {
		return nil, err
	}

	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0

	if !v.IncludeWarnings {
		result.Warnings = nil
		result.WarningCount = 0
	}

	return result, nil
}

// ValidateParsed validates a parsed instance document against a schema
// tree, carrying the parse metadata into the result.
func (v *Validator) ValidateParsed(instance parser.ParseResult, schema value.Value) (*ValidationResult, error) {
	result, err := v.Validate(instance.Document, schema)
	if err != nil {
		return nil, err
	}
	result.LoadTime = instance.LoadTime
	result.SourceSize = instance.SourceSize
	result.SourceFormat = instance.SourceFormat
	result.SourcePath = instance.SourcePath
	return result, nil
}

// ValidateWithOptions validates an instance against a schema using
// functional options. This combines input source selection (in-memory
// values, parsed documents, or file paths) and configuration in a single
// call.
//
// Example:
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithInstanceFile("order.json"),
//	    validator.WithSchemaFile("order-schema.json"),
//	)
func ValidateWithOptions(opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("validator: invalid options: %w", err)
	}

	v := &Validator{
		IncludeWarnings: cfg.includeWarnings,
		MaxDepth:        cfg.maxDepth,
	}

	schema, err := cfg.resolveSchema()
	if err != nil {
		return nil, err
	}

	instance, err := cfg.resolveInstance()
	if err != nil {
		return nil, err
	}
	if instance != nil {
		return v.ValidateParsed(*instance, schema)
	}
	// cfg.instance must be non-nil here (validated by applyOptions)
	return v.Validate(*cfg.instance, schema)
}
