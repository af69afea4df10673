package validator

import (
	"regexp"
	"slices"
)

// formatPatterns is the process-wide format registry: named, predefined
// patterns for the format keyword. It is built once at package
// initialization and never mutated afterwards, so it is safe to share
// across concurrent Validate calls without locking.
//
// All patterns are anchored: a format must describe the whole string,
// unlike the pattern keyword which matches anywhere.
var formatPatterns = map[string]*regexp.Regexp{
	"date-time": regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[Tt]\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:[Zz]|[+-]\d{2}:\d{2})?$`),
	"email":     regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`),
	"hostname":  regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?)*$`),
	"ipv4":      regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\.){3}(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)$`),
	"ipv6":      regexp.MustCompile(`^(?:[0-9a-fA-F]{0,4}:){1,7}[0-9a-fA-F]{0,4}$`),
	"uri":       regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:\S*$`),
}

// Formats returns the names of all registered formats in sorted order.
func Formats() []string {
	names := make([]string, 0, len(formatPatterns))
	for name := range formatPatterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// lookupFormat returns the compiled pattern for a format name.
// An unknown name is a schema-authoring defect handled by the caller.
func lookupFormat(name string) (*regexp.Regexp, bool) {
	re, ok := formatPatterns[name]
	return re, ok
}
