// Package issues provides the issue type reported for schema violations,
// together with the structured path that locates a violation inside the
// validated instance tree.
package issues

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/treeschema/internal/severity"
)

// Segment is one step in a Path: either a mapping key or a sequence index.
type Segment struct {
	// Key is the mapping key when IsKey is true.
	Key string
	// Index is the sequence index when IsKey is false.
	Index int
	// IsKey distinguishes key segments from index segments.
	IsKey bool
}

// Key returns a key segment for the given property name.
func Key(name string) Segment {
	return Segment{Key: name, IsKey: true}
}

// Index returns an index segment for the given sequence position.
func Index(i int) Segment {
	return Segment{Index: i}
}

// String renders the segment in path notation: ".name" or "[i]".
func (s Segment) String() string {
	if s.IsKey {
		return "." + s.Key
	}
	return "[" + strconv.Itoa(s.Index) + "]"
}

// Path is the ordered sequence of segments locating a value inside the
// original instance. The zero value (nil) is the instance root.
type Path []Segment

// Child returns a new Path extended by a key segment. The receiver is
// not modified; the returned path owns its own backing array so sibling
// extensions cannot alias each other.
func (p Path) Child(name string) Path {
	return p.extend(Key(name))
}

// At returns a new Path extended by an index segment.
func (p Path) At(i int) Path {
	return p.extend(Index(i))
}

func (p Path) extend(seg Segment) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, seg)
}

// String renders the path in dotted notation, e.g. "items[2].name".
// The root path renders as "$".
func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	for i, seg := range p {
		if i == 0 && seg.IsKey {
			b.WriteString(seg.Key)
			continue
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Issue represents a single problem found while validating an instance
// against a schema.
type Issue struct {
	// Path locates the offending value inside the instance.
	Path Path
	// Keyword is the schema keyword whose check failed (e.g. "required",
	// "pattern", "additionalProperties"). Empty for non-keyword findings.
	Keyword string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Value is the problematic value (optional)
	Value any
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	if i.Keyword != "" {
		return fmt.Sprintf("%s %s [%s]: %s", symbol, i.Path, i.Keyword, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
}
