package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/treeschema/internal/testutil"
	"github.com/erraggy/treeschema/valerrors"
	"github.com/erraggy/treeschema/value"
)

func TestValidateAllOf(t *testing.T) {
	schema := testutil.Obj(map[string]any{
		"allOf": []any{
			map[string]any{"type": "integer"},
			map[string]any{"minimum": 10},
			map[string]any{"divisibleBy": 2},
		},
	})

	t.Run("all branches satisfied", func(t *testing.T) {
		result, err := New().Validate(value.Int(12), schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("every failing branch reports its own errors", func(t *testing.T) {
		result, err := New().Validate(value.Int(7), schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "minimum", result.Errors[0].Keyword)
		assert.Equal(t, "divisibleBy", result.Errors[1].Keyword)
	})
}

func TestValidateAnyOf(t *testing.T) {
	schema := testutil.Obj(map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "integer"},
		},
	})

	t.Run("first branch matches", func(t *testing.T) {
		result, err := New().Validate(value.String("x"), schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("later branch matches", func(t *testing.T) {
		result, err := New().Validate(value.Int(5), schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("no branch matches yields one aggregate error", func(t *testing.T) {
		result, err := New().Validate(value.Bool(true), schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "anyOf", result.Errors[0].Keyword)
		assert.Contains(t, result.Errors[0].Message, "2 alternatives")
	})
}

func TestValidateOneOf(t *testing.T) {
	schema := testutil.Obj(map[string]any{
		"oneOf": []any{
			map[string]any{"type": "number", "minimum": 10},
			map[string]any{"type": "number", "maximum": 20},
		},
	})

	t.Run("exactly one branch matches", func(t *testing.T) {
		result, err := New().Validate(value.Int(25), schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("both branches match", func(t *testing.T) {
		result, err := New().Validate(value.Int(15), schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "oneOf", result.Errors[0].Keyword)
		assert.Contains(t, result.Errors[0].Message, "matches 2 of the 2")
	})

	t.Run("no branch matches", func(t *testing.T) {
		result, err := New().Validate(value.String("x"), schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "oneOf", result.Errors[0].Keyword)
		assert.Contains(t, result.Errors[0].Message, "matches 0 of the 2")
	})
}

func TestValidateNot(t *testing.T) {
	t.Run("single schema inverted", func(t *testing.T) {
		schema := testutil.Obj(map[string]any{
			"not": map[string]any{"type": "string"},
		})

		result, err := New().Validate(value.Int(1), schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)

		result, err = New().Validate(value.String("x"), schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "not", result.Errors[0].Keyword)
	})

	t.Run("list treated as conjunction", func(t *testing.T) {
		schema := testutil.Obj(map[string]any{
			"not": []any{
				map[string]any{"type": "number"},
				map[string]any{"minimum": 10},
			},
		})

		// Fails the conjunction (not a number at all): passes.
		result, err := New().Validate(value.String("x"), schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)

		// Fails only the minimum branch: still fails the conjunction.
		result, err = New().Validate(value.Int(5), schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)

		// Satisfies every branch: the not fails.
		result, err = New().Validate(value.Int(15), schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "not", result.Errors[0].Keyword)
	})

	t.Run("trial branches leak no errors", func(t *testing.T) {
		// The failing inner branch of a satisfied not must not surface
		// its own errors.
		schema := testutil.Obj(map[string]any{
			"type": "string",
			"not":  map[string]any{"pattern": `^\d+$`},
		})
		result, err := New().Validate(value.String("abc"), schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})
}

func TestValidateCompositionSchemaDefects(t *testing.T) {
	tests := []struct {
		name   string
		schema map[string]any
	}{
		{name: "allOf not a list", schema: map[string]any{"allOf": map[string]any{"type": "string"}}},
		{name: "anyOf empty list", schema: map[string]any{"anyOf": []any{}}},
		{name: "oneOf non-schema entry", schema: map[string]any{"oneOf": []any{"string"}}},
		{name: "not wrong kind", schema: map[string]any{"not": 42}},
		{name: "schema error inside branch", schema: map[string]any{"anyOf": []any{map[string]any{"type": "bogus"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Validate(value.String("x"), testutil.Obj(tt.schema))
			require.Error(t, err)
			assert.ErrorIs(t, err, valerrors.ErrSchema)
		})
	}
}

func TestValidateNestedComposition(t *testing.T) {
	schema := testutil.Obj(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"contact": map[string]any{
				"type": "object",
				"oneOf": []any{
					map[string]any{
						"properties": map[string]any{
							"email": map[string]any{"type": "string", "required": true},
						},
					},
					map[string]any{
						"properties": map[string]any{
							"phone": map[string]any{"type": "string", "required": true},
						},
					},
				},
			},
		},
	})

	t.Run("one alternative satisfied", func(t *testing.T) {
		instance := testutil.Obj(map[string]any{
			"contact": map[string]any{"email": "a@example.com"},
		})
		result, err := New().Validate(instance, schema)
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("failure at the nested path", func(t *testing.T) {
		instance := testutil.Obj(map[string]any{
			"contact": map[string]any{},
		})
		result, err := New().Validate(instance, schema)
		require.NoError(t, err)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "contact", result.Errors[0].Path.String())
		assert.Equal(t, "oneOf", result.Errors[0].Keyword)
	})
}
