package httpvalidator

import (
	"bytes"
	"io"
	"net/http"

	"github.com/erraggy/treeschema/parser"
	"github.com/erraggy/treeschema/valerrors"
	"github.com/erraggy/treeschema/validator"
	"github.com/erraggy/treeschema/value"
)

const (
	// defaultMaxBodySize caps request and response bodies at 10MB.
	defaultMaxBodySize = 10 * 1024 * 1024
)

// Validator validates HTTP request and response bodies against a schema
// tree. It is bound to one schema at construction and is safe for
// concurrent use.
type Validator struct {
	schema value.Value
	engine *validator.Validator

	// IncludeWarnings determines whether schema warnings are included in
	// validation results. Default is true.
	IncludeWarnings bool

	// MaxBodySize is the maximum body size in bytes. Bodies larger than
	// this return a valerrors.ResourceLimitError. Default: 10MB.
	MaxBodySize int64
}

// New creates a Validator bound to the given schema.
//
// The schema is checked for shape up front: a non-mapping schema returns
// a valerrors.SchemaError immediately rather than on first use.
func New(schema value.Value, opts ...Option) (*Validator, error) {
	if schema.Kind() != value.KindMapping {
		return nil, &valerrors.SchemaError{
			Path:    "$",
			Message: "schema must be an object but found " + schema.Kind().String(),
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &Validator{
		schema:          schema,
		engine:          &validator.Validator{IncludeWarnings: cfg.includeWarnings, MaxDepth: cfg.maxDepth},
		IncludeWarnings: cfg.includeWarnings,
		MaxBodySize:     cfg.maxBodySize,
	}, nil
}

// NewFromFile creates a Validator from a schema document on disk.
func NewFromFile(path string, opts ...Option) (*Validator, error) {
	parsed, err := parser.ParseWithOptions(parser.WithFilePath(path))
	if err != nil {
		return nil, err
	}
	return New(parsed.Document, opts...)
}

func (v *Validator) maxBodySize() int64 {
	if v.MaxBodySize > 0 {
		return v.MaxBodySize
	}
	return defaultMaxBodySize
}

// ValidateRequest validates the request body against the bound schema.
//
// The body is read in full and replaced, so downstream handlers can read
// it again. A body that fails to decode is reported through the result;
// the error return is reserved for schema defects and the body-size cap.
func (v *Validator) ValidateRequest(req *http.Request) (*RequestValidationResult, error) {
	result := newRequestResult()
	if err := v.validateRequestInto(result, req); err != nil {
		return nil, err
	}
	return result, nil
}

// validateRequestInto validates into an existing result, so the
// middleware can reuse pooled results.
func (v *Validator) validateRequestInto(result *RequestValidationResult, req *http.Request) error {
	result.ContentType = req.Header.Get("Content-Type")

	data, err := v.readBody(req.Body)
	if err != nil {
		return err
	}
	if req.Body != nil {
		req.Body = io.NopCloser(bytes.NewReader(data))
	}
	result.BodySize = int64(len(data))

	return v.validateBody(data, &result.Valid, &result.Errors, &result.Warnings)
}

// ValidateResponse validates the response body against the bound schema.
// The body is read in full and replaced.
func (v *Validator) ValidateResponse(resp *http.Response) (*ResponseValidationResult, error) {
	result := newResponseResult()
	result.StatusCode = resp.StatusCode
	result.ContentType = resp.Header.Get("Content-Type")

	data, err := v.readBody(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.Body != nil {
		resp.Body = io.NopCloser(bytes.NewReader(data))
	}
	result.BodySize = int64(len(data))

	return result, v.validateBody(data, &result.Valid, &result.Errors, &result.Warnings)
}

// ValidateBytes validates an in-memory body against the bound schema.
func (v *Validator) ValidateBytes(data []byte) (*RequestValidationResult, error) {
	result := newRequestResult()
	result.BodySize = int64(len(data))
	return result, v.validateBody(data, &result.Valid, &result.Errors, &result.Warnings)
}

// readBody drains a body within the size cap. A nil body reads as
// empty. The read goes through a pooled buffer so repeated validations
// amortize growth.
func (v *Validator) readBody(body io.ReadCloser) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	max := v.maxBodySize()

	buf := getBuffer()
	defer putBuffer(buf)
	n, err := io.Copy(buf, io.LimitReader(body, max+1))
	if err != nil {
		return nil, &valerrors.ParseError{Message: "cannot read body", Cause: err}
	}
	if n > max {
		return nil, &valerrors.ResourceLimitError{
			ResourceType: "body_size",
			Limit:        max,
			Actual:       n,
		}
	}
	return bytes.Clone(buf.Bytes()), nil
}

// validateBody decodes and validates one body, appending issues in place.
// An empty body validates as null, so a schema with required: true at
// the root rejects it.
func (v *Validator) validateBody(data []byte, valid *bool, errs, warns *[]ValidationError) error {
	instance := value.Null()
	if len(bytes.TrimSpace(data)) > 0 {
		p := parser.New()
		p.MaxFileSize = v.maxBodySize()
		parsed, err := p.ParseBytes(data, "")
		if err != nil {
			*valid = false
			*errs = append(*errs, ValidationError{
				Message:  "body is not valid JSON or YAML: " + err.Error(),
				Severity: SeverityError,
			})
			return nil
		}
		instance = parsed.Document
	}

	vr, err := v.engine.Validate(instance, v.schema)
	if err != nil {
		return err
	}
	if !vr.Valid {
		*valid = false
	}
	*errs = append(*errs, vr.Errors...)
	if v.IncludeWarnings {
		*warns = append(*warns, vr.Warnings...)
	}
	return nil
}
