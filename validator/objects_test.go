package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/treeschema/internal/testutil"
	"github.com/erraggy/treeschema/valerrors"
	"github.com/erraggy/treeschema/value"
)

func TestValidateProperties(t *testing.T) {
	schema := testutil.Obj(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "required": true},
			"age":  map[string]any{"type": "integer", "minimum": 0},
		},
	})

	tests := []struct {
		name     string
		instance value.Value
		valid    bool
		errPath  string
		keyword  string
	}{
		{
			name:     "conforming instance",
			instance: testutil.Obj(map[string]any{"name": "Sam", "age": 30}),
			valid:    true,
		},
		{
			name:     "optional property may be absent",
			instance: testutil.Obj(map[string]any{"name": "Sam"}),
			valid:    true,
		},
		{
			name:     "missing required property",
			instance: testutil.Obj(map[string]any{"age": 30}),
			valid:    false,
			errPath:  "name",
			keyword:  "required",
		},
		{
			name:     "explicit null required property",
			instance: testutil.Obj(map[string]any{"name": nil, "age": 30}),
			valid:    false,
			errPath:  "name",
			keyword:  "required",
		},
		{
			name:     "child violation reported at child path",
			instance: testutil.Obj(map[string]any{"name": "Sam", "age": -1}),
			valid:    false,
			errPath:  "age",
			keyword:  "minimum",
		},
		{
			name:     "undeclared properties pass without additionalProperties",
			instance: testutil.Obj(map[string]any{"name": "Sam", "extra": true}),
			valid:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().Validate(tt.instance, schema)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			if tt.keyword != "" {
				require.Len(t, result.Errors, 1)
				assert.Equal(t, tt.errPath, result.Errors[0].Path.String())
				assert.Equal(t, tt.keyword, result.Errors[0].Keyword)
			}
		})
	}
}

func TestValidatePatternProperties(t *testing.T) {
	schema := testutil.Obj(map[string]any{
		"type": "object",
		"patternProperties": map[string]any{
			"^x-":    map[string]any{"type": "string"},
			"-count": map[string]any{"type": "integer"},
		},
	})

	t.Run("matching keys validated", func(t *testing.T) {
		instance := testutil.Obj(map[string]any{
			"x-trace":    "abc",
			"item-count": 3,
			"unrelated":  true,
		})
		result, err := New().Validate(instance, schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("matching key violation", func(t *testing.T) {
		instance := testutil.Obj(map[string]any{"x-trace": 42})
		result, err := New().Validate(instance, schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "x-trace", result.Errors[0].Path.String())
		assert.Equal(t, "type", result.Errors[0].Keyword)
	})

	t.Run("all matching patterns apply", func(t *testing.T) {
		// "x-count" matches both patterns; it must satisfy both, which
		// no value can.
		instance := testutil.Obj(map[string]any{"x-count": "three"})
		result, err := New().Validate(instance, schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "x-count", result.Errors[0].Path.String())
	})

	t.Run("invalid pattern is a schema error", func(t *testing.T) {
		bad := testutil.Obj(map[string]any{
			"patternProperties": map[string]any{"[": map[string]any{"type": "string"}},
		})
		_, err := New().Validate(testutil.Obj(map[string]any{"a": 1}), bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, valerrors.ErrSchema)
	})
}

func TestValidateAdditionalProperties(t *testing.T) {
	base := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
		"patternProperties": map[string]any{
			"^x-": map[string]any{"type": "string"},
		},
	}
	withAdditional := func(ap any) value.Value {
		s := map[string]any{"additionalProperties": ap}
		for k, v := range base {
			s[k] = v
		}
		return testutil.Obj(s)
	}

	t.Run("true permits anything", func(t *testing.T) {
		instance := testutil.Obj(map[string]any{"name": "a", "extra": 1})
		result, err := New().Validate(instance, withAdditional(true))
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("false rejects each residual key", func(t *testing.T) {
		instance := testutil.Obj(map[string]any{
			"name":    "a",
			"x-trace": "ok",
			"extra1":  1,
			"extra2":  2,
		})
		result, err := New().Validate(instance, withAdditional(false))
		require.NoError(t, err)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "extra1", result.Errors[0].Path.String())
		assert.Equal(t, "extra2", result.Errors[1].Path.String())
		for _, e := range result.Errors {
			assert.Equal(t, "additionalProperties", e.Keyword)
		}
	})

	t.Run("name list permits listed keys only", func(t *testing.T) {
		instance := testutil.Obj(map[string]any{"name": "a", "allowed": 1, "denied": 2})
		result, err := New().Validate(instance, withAdditional([]any{"allowed"}))
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "denied", result.Errors[0].Path.String())
	})

	t.Run("schema applies to each residual value", func(t *testing.T) {
		instance := testutil.Obj(map[string]any{"name": "a", "count": 3, "label": "x"})
		result, err := New().Validate(instance, withAdditional(map[string]any{"type": "integer"}))
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "label", result.Errors[0].Path.String())
		assert.Equal(t, "type", result.Errors[0].Keyword)
	})

	t.Run("declared and pattern-matched keys exempt", func(t *testing.T) {
		instance := testutil.Obj(map[string]any{"name": "a", "x-trace": "b"})
		result, err := New().Validate(instance, withAdditional(false))
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("wrong keyword kind is a schema error", func(t *testing.T) {
		_, err := New().Validate(testutil.Obj(map[string]any{"a": 1}), withAdditional("nope"))
		require.Error(t, err)
		assert.ErrorIs(t, err, valerrors.ErrSchema)
	})
}

func TestValidateDependencies(t *testing.T) {
	t.Run("property name dependency", func(t *testing.T) {
		schema := testutil.Obj(map[string]any{
			"dependencies": map[string]any{"creditCard": "billingAddress"},
		})

		result, err := New().Validate(testutil.Obj(map[string]any{"creditCard": "4111"}), schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "dependencies", result.Errors[0].Keyword)

		result, err = New().Validate(testutil.Obj(map[string]any{
			"creditCard":     "4111",
			"billingAddress": "1 Main St",
		}), schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)

		// Trigger absent: no constraint.
		result, err = New().Validate(testutil.Obj(map[string]any{"billingAddress": "1 Main St"}), schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("name list dependency", func(t *testing.T) {
		schema := testutil.Obj(map[string]any{
			"dependencies": map[string]any{"shipping": []any{"address", "postcode"}},
		})
		result, err := New().Validate(testutil.Obj(map[string]any{
			"shipping": true,
			"address":  "1 Main St",
		}), schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0].Message, "postcode")
	})

	t.Run("schema dependency validates whole object", func(t *testing.T) {
		schema := testutil.Obj(map[string]any{
			"dependencies": map[string]any{
				"discount": map[string]any{
					"properties": map[string]any{
						"code": map[string]any{"type": "string", "required": true},
					},
				},
			},
		})
		result, err := New().Validate(testutil.Obj(map[string]any{"discount": 10}), schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "code", result.Errors[0].Path.String())
		assert.Equal(t, "required", result.Errors[0].Keyword)
	})

	t.Run("invalid dependency kind is a schema error", func(t *testing.T) {
		schema := testutil.Obj(map[string]any{
			"dependencies": map[string]any{"a": 42},
		})
		_, err := New().Validate(testutil.Obj(map[string]any{"a": 1}), schema)
		require.Error(t, err)
		assert.ErrorIs(t, err, valerrors.ErrSchema)
	})
}
