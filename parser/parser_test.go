package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/treeschema/valerrors"
	"github.com/erraggy/treeschema/value"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseJSONFile(t *testing.T) {
	path := writeTempFile(t, "order.json", `{"id": 7, "items": ["a", "b"], "priority": null}`)

	p := New()
	result, err := p.Parse(path)
	require.NoError(t, err)

	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Positive(t, result.SourceSize)

	want := value.Mapping(map[string]value.Value{
		"id":       value.Int(7),
		"items":    value.Sequence(value.String("a"), value.String("b")),
		"priority": value.Null(),
	})
	assert.True(t, value.Equal(want, result.Document), "got %s", result.Document)
}

func TestParseYAMLFile(t *testing.T) {
	path := writeTempFile(t, "order.yaml", "id: 7\nitems:\n  - a\n  - b\n")

	p := New()
	result, err := p.Parse(path)
	require.NoError(t, err)

	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	id, ok := result.Document.Get("id")
	require.True(t, ok)
	assert.True(t, value.Equal(value.Int(7), id))
}

func TestParseReader(t *testing.T) {
	p := New()
	result, err := p.ParseReader(strings.NewReader(`{"a": true}`))
	require.NoError(t, err)

	assert.Empty(t, result.SourcePath)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	a, ok := result.Document.Get("a")
	require.True(t, ok)
	assert.True(t, value.Equal(value.Bool(true), a))
}

func TestParseBytesScalarDocument(t *testing.T) {
	p := New()
	result, err := p.ParseBytes([]byte(`"just a string"`), "inline")
	require.NoError(t, err)
	assert.True(t, value.Equal(value.String("just a string"), result.Document))
	assert.Equal(t, "inline", result.SourcePath)
}

func TestParseMissingFile(t *testing.T) {
	p := New()
	_, err := p.Parse(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, valerrors.ErrParse))
}

func TestParseInvalidDocument(t *testing.T) {
	p := New()
	_, err := p.ParseBytes([]byte("{unclosed: [\n"), "bad.yaml")

	require.Error(t, err)
	var parseErr *valerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "bad.yaml", parseErr.Path)
}

func TestParseFileSizeLimit(t *testing.T) {
	path := writeTempFile(t, "big.json", `{"a": "bbbbbbbbbbbbbbbbbbbbbbbb"}`)

	p := New()
	p.MaxFileSize = 8
	_, err := p.Parse(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, valerrors.ErrResourceLimit))

	_, err = p.ParseBytes(make([]byte, 9), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, valerrors.ErrResourceLimit))

	_, err = p.ParseReader(strings.NewReader(strings.Repeat("a", 9)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, valerrors.ErrResourceLimit))
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data string
		want SourceFormat
	}{
		{"object is json", `{"a": 1}`, SourceFormatJSON},
		{"array is json", `[1, 2]`, SourceFormatJSON},
		{"leading whitespace json", "\n\t {\"a\": 1}", SourceFormatJSON},
		{"mapping is yaml", "a: 1\n", SourceFormatYAML},
		{"scalar is yaml", `"x"`, SourceFormatYAML},
		{"empty is unknown", "", SourceFormatUnknown},
		{"whitespace only is unknown", " \n\t", SourceFormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat([]byte(tt.data)))
		})
	}
}

func TestParseWithOptions(t *testing.T) {
	path := writeTempFile(t, "doc.json", `{"a": 1}`)

	result, err := ParseWithOptions(WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, value.KindMapping, result.Document.Kind())

	result, err = ParseWithOptions(WithContent([]byte(`[1]`), "inline"))
	require.NoError(t, err)
	assert.Equal(t, value.KindSequence, result.Document.Kind())

	result, err = ParseWithOptions(WithReader(strings.NewReader("a: 1")))
	require.NoError(t, err)
	assert.Equal(t, value.KindMapping, result.Document.Kind())
}

func TestParseWithOptionsInputValidation(t *testing.T) {
	_, err := ParseWithOptions()
	assert.ErrorContains(t, err, "input source")

	path := writeTempFile(t, "doc.json", `{"a": 1}`)
	_, err = ParseWithOptions(WithFilePath(path), WithContent([]byte("{}"), ""))
	assert.ErrorContains(t, err, "exactly one input source")
}
