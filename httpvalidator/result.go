package httpvalidator

import (
	"github.com/erraggy/treeschema/internal/issues"
	"github.com/erraggy/treeschema/internal/severity"
)

// ValidationError represents a single HTTP validation issue.
// This is an alias to issues.Issue for consistency with the validator package.
type ValidationError = issues.Issue

// Severity levels for validation errors.
type Severity = severity.Severity

// Severity constants re-exported for convenience.
const (
	SeverityError   = severity.SeverityError
	SeverityWarning = severity.SeverityWarning
	SeverityInfo    = severity.SeverityInfo
)

// RequestValidationResult contains the results of validating an HTTP
// request body against the bound schema.
type RequestValidationResult struct {
	// Valid is true if the body passes all validation checks.
	Valid bool

	// Errors contains all validation errors found.
	Errors []ValidationError

	// Warnings contains schema warnings (if IncludeWarnings is enabled).
	Warnings []ValidationError

	// ContentType is the Content-Type of the request.
	ContentType string

	// BodySize is the request body size in bytes.
	BodySize int64
}

// ResponseValidationResult contains the results of validating an HTTP
// response body against the bound schema.
type ResponseValidationResult struct {
	// Valid is true if the body passes all validation checks.
	Valid bool

	// Errors contains all validation errors found.
	Errors []ValidationError

	// Warnings contains schema warnings (if IncludeWarnings is enabled).
	Warnings []ValidationError

	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// ContentType is the Content-Type of the response.
	ContentType string

	// BodySize is the response body size in bytes.
	BodySize int64
}

// newRequestResult creates a new RequestValidationResult.
func newRequestResult() *RequestValidationResult {
	return &RequestValidationResult{Valid: true}
}

// newResponseResult creates a new ResponseValidationResult.
func newResponseResult() *ResponseValidationResult {
	return &ResponseValidationResult{Valid: true}
}

// addError adds an error to the request result and marks it as invalid.
func (r *RequestValidationResult) addError(err ValidationError) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// addError adds an error to the response result and marks it as invalid.
func (r *ResponseValidationResult) addError(err ValidationError) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// reset clears the result for reuse from pool.
func (r *RequestValidationResult) reset() {
	r.Valid = true
	r.ContentType = ""
	r.BodySize = 0
	r.Errors = r.Errors[:0]
	r.Warnings = r.Warnings[:0]
}
