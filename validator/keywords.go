package validator

import (
	"fmt"
	"math/big"
	"regexp"

	"github.com/erraggy/treeschema/valerrors"
	"github.com/erraggy/treeschema/value"
)

// recognizedKeywords is the closed set of schema attribute names the
// engine interprets. Annotation keywords (title, description, default)
// carry no constraint but are recognized so they never trigger the
// unrecognized-keyword warning.
var recognizedKeywords = map[string]bool{
	"type":     true,
	"required": true,
	"enum":     true,

	"pattern":   true,
	"format":    true,
	"minLength": true,
	"maxLength": true,

	"minimum":          true,
	"maximum":          true,
	"exclusiveMinimum": true,
	"exclusiveMaximum": true,
	"divisibleBy":      true,

	"properties":           true,
	"patternProperties":    true,
	"additionalProperties": true,
	"dependencies":         true,

	"items":           true,
	"additionalItems": true,
	"minItems":        true,
	"maxItems":        true,
	"uniqueItems":     true,

	"allOf": true,
	"anyOf": true,
	"oneOf": true,
	"not":   true,

	"title":       true,
	"description": true,
	"default":     true,
}

// typePredicates maps every recognized type name to its predicate over
// value kinds. Schema interpretation is a closed mapping: a type name
// outside this table is a schema defect, never a silent pass.
var typePredicates = map[string]func(value.Value) bool{
	"string":  func(v value.Value) bool { return v.Kind() == value.KindString },
	"number":  func(v value.Value) bool { return v.Kind() == value.KindNumber },
	"integer": func(v value.Value) bool { return v.IsInt() },
	"boolean": func(v value.Value) bool { return v.Kind() == value.KindBool },
	"array":   func(v value.Value) bool { return v.Kind() == value.KindSequence },
	"object":  func(v value.Value) bool { return v.Kind() == value.KindMapping },
	"null":    func(v value.Value) bool { return v.Kind() == value.KindNull },
	"any":     func(value.Value) bool { return true },
}

// schemaErr builds the SchemaError for a malformed schema keyword.
func schemaErr(path Path, keyword string, v any, message string) error {
	return &valerrors.SchemaError{
		Path:    path.String(),
		Keyword: keyword,
		Value:   v,
		Message: message,
	}
}

// schemaBool reads a boolean keyword. Returns (value, present) or a
// SchemaError when the keyword holds a non-boolean.
func schemaBool(schema value.Value, keyword string, path Path) (bool, bool, error) {
	raw, ok := schema.Get(keyword)
	if !ok {
		return false, false, nil
	}
	if raw.Kind() != value.KindBool {
		return false, false, schemaErr(path, keyword, raw.String(),
			fmt.Sprintf("expected a boolean but found %s", raw.Kind()))
	}
	return raw.Bool(), true, nil
}

// schemaRat reads a numeric keyword as an exact rational.
func schemaRat(schema value.Value, keyword string, path Path) (*big.Rat, bool, error) {
	raw, ok := schema.Get(keyword)
	if !ok {
		return nil, false, nil
	}
	if raw.Kind() != value.KindNumber {
		return nil, false, schemaErr(path, keyword, raw.String(),
			fmt.Sprintf("expected a number but found %s", raw.Kind()))
	}
	return raw.Num(), true, nil
}

// schemaInt reads an integer keyword, used for length and count bounds.
func schemaInt(schema value.Value, keyword string, path Path) (int64, bool, error) {
	raw, ok := schema.Get(keyword)
	if !ok {
		return 0, false, nil
	}
	n, isInt := raw.Int64()
	if !isInt {
		return 0, false, schemaErr(path, keyword, raw.String(),
			fmt.Sprintf("expected an integer but found %s", describe(raw)))
	}
	return n, true, nil
}

// schemaString reads a string keyword.
func schemaString(schema value.Value, keyword string, path Path) (string, bool, error) {
	raw, ok := schema.Get(keyword)
	if !ok {
		return "", false, nil
	}
	if raw.Kind() != value.KindString {
		return "", false, schemaErr(path, keyword, raw.String(),
			fmt.Sprintf("expected a string but found %s", raw.Kind()))
	}
	return raw.Str(), true, nil
}

// schemaMapping reads a keyword whose value must itself be a mapping
// (properties, patternProperties, dependencies).
func schemaMapping(schema value.Value, keyword string, path Path) (value.Value, bool, error) {
	raw, ok := schema.Get(keyword)
	if !ok {
		return value.Value{}, false, nil
	}
	if raw.Kind() != value.KindMapping {
		return value.Value{}, false, schemaErr(path, keyword, raw.String(),
			fmt.Sprintf("expected an object but found %s", raw.Kind()))
	}
	return raw, true, nil
}

// schemaSubSchemas reads a composition keyword: a non-empty list whose
// entries are all sub-schemas.
func schemaSubSchemas(schema value.Value, keyword string, path Path) ([]value.Value, bool, error) {
	raw, ok := schema.Get(keyword)
	if !ok {
		return nil, false, nil
	}
	if raw.Kind() != value.KindSequence {
		return nil, false, schemaErr(path, keyword, raw.String(),
			fmt.Sprintf("expected a list of schemas but found %s", raw.Kind()))
	}
	subs := raw.Items()
	if len(subs) == 0 {
		return nil, false, schemaErr(path, keyword, raw.String(), "schema list must not be empty")
	}
	for i, sub := range subs {
		if sub.Kind() != value.KindMapping {
			return nil, false, schemaErr(path, keyword, sub.String(),
				fmt.Sprintf("entry %d is %s, not a schema", i, sub.Kind()))
		}
	}
	return subs, true, nil
}

// compileSchemaPattern compiles a regular expression appearing in a
// schema (pattern, patternProperties). An invalid expression is a
// schema-authoring defect.
func compileSchemaPattern(expr, keyword string, path Path) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &valerrors.SchemaError{
			Path:    path.String(),
			Keyword: keyword,
			Value:   expr,
			Message: "invalid regular expression",
			Cause:   err,
		}
	}
	return re, nil
}

// describe names a value's kind for error messages, distinguishing
// integral numbers from decimals.
func describe(v value.Value) string {
	if v.Kind() == value.KindNumber && !v.IsInt() {
		return "number"
	}
	if v.IsInt() {
		return "integer"
	}
	return v.Kind().String()
}
