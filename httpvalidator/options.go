package httpvalidator

import "github.com/erraggy/treeschema/valerrors"

// Option is a functional option for configuring a Validator.
type Option func(*config) error

// config holds the configuration for a Validator.
type config struct {
	includeWarnings bool
	maxBodySize     int64
	maxDepth        int
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		includeWarnings: true,
	}
}

// WithIncludeWarnings sets whether schema warnings are included in
// validation results. Default is true.
func WithIncludeWarnings(include bool) Option {
	return func(c *config) error {
		c.includeWarnings = include
		return nil
	}
}

// WithMaxBodySize caps request and response body sizes in bytes.
// Default is 10MB.
func WithMaxBodySize(n int64) Option {
	return func(c *config) error {
		if n < 0 {
			return &valerrors.ConfigError{Option: "WithMaxBodySize", Value: n, Message: "must not be negative"}
		}
		c.maxBodySize = n
		return nil
	}
}

// WithMaxDepth overrides the validation recursion depth cap.
// Default is 100.
func WithMaxDepth(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return &valerrors.ConfigError{Option: "WithMaxDepth", Value: n, Message: "must not be negative"}
		}
		c.maxDepth = n
		return nil
	}
}
