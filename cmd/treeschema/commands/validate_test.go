package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidateFlags(t *testing.T) {
	fs, flags := SetupValidateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.SchemaPath)
		assert.False(t, flags.NoWarnings, "expected NoWarnings to be false by default")
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
		assert.Equal(t, FormatText, flags.Format)
		assert.Zero(t, flags.MaxDepth)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--schema", "s.yaml", "--no-warnings", "-q", "--format", "json", "--max-depth", "25", "test.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "s.yaml", flags.SchemaPath)
		assert.True(t, flags.NoWarnings, "expected NoWarnings to be true")
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "json", flags.Format)
		assert.Equal(t, 25, flags.MaxDepth)
		assert.Equal(t, "test.yaml", fs.Arg(0))
	})
}

func TestHandleValidate_NoArgs(t *testing.T) {
	err := HandleValidate([]string{})
	assert.Error(t, err)
}

func TestHandleValidate_Help(t *testing.T) {
	err := HandleValidate([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleValidate_MissingSchema(t *testing.T) {
	err := HandleValidate([]string{"test.yaml"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "-schema")
}

func TestHandleValidate_InvalidFormat(t *testing.T) {
	err := HandleValidate([]string{"--schema", "s.yaml", "--format", "invalid", "test.yaml"})
	assert.Error(t, err)
}

func TestHandleValidate_MissingFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type": "object"}`), 0o644))

	err := HandleValidate([]string{"--schema", schemaPath, "-q", filepath.Join(dir, "missing.json")})
	assert.Error(t, err)
}

func TestHandleValidate_ValidDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "order.json")

	schema := `{
		"type": "object",
		"properties": {
			"sku": {"type": "string", "required": true},
			"qty": {"type": "integer", "minimum": 1}
		}
	}`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schema), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"sku": "A-100", "qty": 2}`), 0o644))

	err := HandleValidate([]string{"--schema", schemaPath, "-q", docPath})
	assert.NoError(t, err)
}

func TestHandleValidate_SchemaDefect(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "doc.json")

	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type": "wibble"}`), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"a": 1}`), 0o644))

	err := HandleValidate([]string{"--schema", schemaPath, "-q", docPath})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}
