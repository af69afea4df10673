package parser

import (
	"io"

	"github.com/erraggy/treeschema/internal/options"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	content  []byte

	// contentPath labels in-memory content in error messages.
	contentPath string

	maxFileSize int64
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithReader, or WithContent)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.content != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies a reader (e.g. stdin) as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		cfg.reader = r
		return nil
	}
}

// WithContent specifies in-memory document content as the input source.
// sourcePath labels the content in error messages and may be empty.
func WithContent(data []byte, sourcePath string) Option {
	return func(cfg *parseConfig) error {
		cfg.content = data
		cfg.contentPath = sourcePath
		return nil
	}
}

// WithMaxFileSize overrides the input size cap in bytes.
// Default: 10MB
func WithMaxFileSize(n int64) Option {
	return func(cfg *parseConfig) error {
		cfg.maxFileSize = n
		return nil
	}
}
