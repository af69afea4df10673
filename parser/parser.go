package parser

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/treeschema/valerrors"
	"github.com/erraggy/treeschema/value"
)

const (
	// defaultMaxFileSize is the input size cap applied when the caller does
	// not configure one.
	defaultMaxFileSize = 10 * 1024 * 1024 // 10MB
)

// SourceFormat represents the syntax of the source document.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the decoded document and source metadata.
//
// Callers should treat the Document as read-only: the validator shares it
// across keyword checks and never copies it.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Empty for in-memory input.
	SourcePath string
	// SourceFormat is the detected syntax of the source document.
	SourceFormat SourceFormat
	// Document is the decoded value tree.
	Document value.Value
	// LoadTime is the time taken to read and decode the source.
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes.
	SourceSize int64
}

// Parser decodes JSON or YAML documents into value trees.
type Parser struct {
	// MaxFileSize is the maximum input size in bytes. Inputs larger than
	// this return a valerrors.ResourceLimitError. Default: 10MB.
	MaxFileSize int64
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		MaxFileSize: defaultMaxFileSize,
	}
}

// Parse reads and decodes the document at the given file path.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	start := time.Now()

	info, err := os.Stat(path)
	if err != nil {
		return nil, &valerrors.ParseError{Path: path, Message: "cannot read source", Cause: err}
	}
	if max := p.maxFileSize(); info.Size() > max {
		return nil, &valerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        max,
			Actual:       info.Size(),
			Message:      path,
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &valerrors.ParseError{Path: path, Message: "cannot read source", Cause: err}
	}

	result, err := p.parseBytes(data, path)
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// ParseReader decodes a document from the given reader, e.g. stdin.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()

	max := p.maxFileSize()
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, &valerrors.ParseError{Message: "cannot read source", Cause: err}
	}
	if int64(len(data)) > max {
		return nil, &valerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        max,
		}
	}

	result, err := p.parseBytes(data, "")
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// ParseBytes decodes an in-memory document. sourcePath is recorded in the
// result for error reporting and may be empty.
func (p *Parser) ParseBytes(data []byte, sourcePath string) (*ParseResult, error) {
	start := time.Now()

	if max := p.maxFileSize(); int64(len(data)) > max {
		return nil, &valerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        max,
			Actual:       int64(len(data)),
			Message:      sourcePath,
		}
	}

	result, err := p.parseBytes(data, sourcePath)
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

func (p *Parser) parseBytes(data []byte, sourcePath string) (*ParseResult, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &valerrors.ParseError{Path: sourcePath, Message: "invalid document", Cause: err}
	}

	doc, err := value.FromGo(raw)
	if err != nil {
		return nil, &valerrors.ParseError{Path: sourcePath, Message: "unsupported document content", Cause: err}
	}

	return &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: DetectFormat(data),
		Document:     doc,
		SourceSize:   int64(len(data)),
	}, nil
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return defaultMaxFileSize
}

// DetectFormat guesses the source syntax from the first significant byte:
// documents opening with '{' or '[' are reported as JSON, everything else
// as YAML. Empty input is unknown.
func DetectFormat(data []byte) SourceFormat {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[':
			return SourceFormatJSON
		default:
			return SourceFormatYAML
		}
	}
	return SourceFormatUnknown
}

// ParseWithOptions parses a document using functional options, selecting
// between a file path, a reader, and in-memory bytes.
//
// Example:
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("order.yaml"))
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := New()
	if cfg.maxFileSize > 0 {
		p.MaxFileSize = cfg.maxFileSize
	}

	switch {
	case cfg.filePath != nil:
		return p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		return p.ParseReader(cfg.reader)
	default:
		return p.ParseBytes(cfg.content, cfg.contentPath)
	}
}
