package validator

import (
	"fmt"

	"github.com/erraggy/treeschema/valerrors"
	"github.com/erraggy/treeschema/value"
)

// walker carries one validation traversal. It accumulates issues into
// the shared result; only schema defects and the depth cap abort it.
type walker struct {
	v      *Validator
	result *ValidationResult
}

// withValue attaches the offending value to an issue.
func withValue(v any) func(*ValidationError) {
	return func(issue *ValidationError) {
		issue.Value = v
	}
}

func (w *walker) addError(path Path, keyword, message string, decorate ...func(*ValidationError)) {
	issue := ValidationError{
		Path:     path,
		Keyword:  keyword,
		Message:  message,
		Severity: SeverityError,
	}
	for _, d := range decorate {
		d(&issue)
	}
	w.result.Errors = append(w.result.Errors, issue)
}

func (w *walker) addWarning(path Path, keyword, message string, decorate ...func(*ValidationError)) {
	issue := ValidationError{
		Path:     path,
		Keyword:  keyword,
		Message:  message,
		Severity: SeverityWarning,
	}
	for _, d := range decorate {
		d(&issue)
	}
	w.result.Warnings = append(w.result.Warnings, issue)
}

// walk evaluates one instance node against one schema node. Keyword
// families run in a fixed order so error ordering is deterministic:
// the null short-circuit, type, enum, the scalar family matching the
// instance kind, the structural family, then composition. Only the
// short-circuit ends a node's evaluation early.
func (w *walker) walk(instance, schema value.Value, path Path, depth int) error {
	if depth > w.v.maxDepth() {
		return &valerrors.ResourceLimitError{
			ResourceType: "validation depth",
			Limit:        int64(w.v.maxDepth()),
			Actual:       int64(depth),
			Message:      fmt.Sprintf("exceeded maximum validation depth of %d at %s", w.v.maxDepth(), path),
		}
	}

	if schema.Kind() != value.KindMapping {
		return schemaErr(path, "", schema.String(),
			fmt.Sprintf("schema must be an object but found %s", schema.Kind()))
	}

	for _, key := range schema.Keys() {
		if !recognizedKeywords[key] {
			w.addWarning(path, key, fmt.Sprintf("unrecognized schema keyword %q", key))
		}
	}

	typeName, hasType, err := schemaString(schema, "type", path)
	if err != nil {
		return err
	}
	var typeOK func(value.Value) bool
	if hasType {
		var known bool
		typeOK, known = typePredicates[typeName]
		if !known {
			return schemaErr(path, "type", typeName, fmt.Sprintf("unknown type name %q", typeName))
		}
	}

	// A null instance passes by default unless the schema declares the
	// node required; only an explicit null type opts into validating the
	// null itself.
	if instance.IsNull() && typeName != "null" {
		required, _, err := schemaBool(schema, "required", path)
		if err != nil {
			return err
		}
		if required {
			w.addError(path, "required", "value is required but missing or null")
		}
		return nil
	}

	if hasType && !typeOK(instance) {
		w.addError(path, "type",
			fmt.Sprintf("expected %s but found %s", typeName, describe(instance)),
			withValue(instance.String()))
	}

	if err := w.validateEnum(instance, schema, path); err != nil {
		return err
	}

	switch instance.Kind() {
	case value.KindString:
		if err := w.validateString(instance, schema, path); err != nil {
			return err
		}
	case value.KindNumber:
		if err := w.validateNumber(instance, schema, path); err != nil {
			return err
		}
	}

	switch instance.Kind() {
	case value.KindMapping:
		if err := w.validateObject(instance, schema, path, depth); err != nil {
			return err
		}
	case value.KindSequence:
		if err := w.validateArray(instance, schema, path, depth); err != nil {
			return err
		}
	}

	return w.validateComposition(instance, schema, path, depth)
}

// validateEnum checks membership in the enum list using deep structural
// equality, with exact numeric comparison.
func (w *walker) validateEnum(instance, schema value.Value, path Path) error {
	raw, ok := schema.Get("enum")
	if !ok {
		return nil
	}
	if raw.Kind() != value.KindSequence {
		return schemaErr(path, "enum", raw.String(),
			fmt.Sprintf("expected a list of allowed values but found %s", raw.Kind()))
	}
	if raw.Len() == 0 {
		return schemaErr(path, "enum", raw.String(), "allowed value list must not be empty")
	}
	for _, allowed := range raw.Items() {
		if value.Equal(instance, allowed) {
			return nil
		}
	}
	w.addError(path, "enum",
		fmt.Sprintf("value %s is not one of the allowed values %s", instance, raw),
		withValue(instance.String()))
	return nil
}

// collect runs a trial validation of instance against a sub-schema and
// returns the errors it would produce, without touching the main result.
// Composition operators use this to test branches.
func (w *walker) collect(instance, schema value.Value, path Path, depth int) ([]ValidationError, error) {
	trial := &ValidationResult{
		Errors:   make([]ValidationError, 0, 4),
		Warnings: make([]ValidationError, 0, 2),
	}
	tw := &walker{v: w.v, result: trial}
	if err := tw.walk(instance, schema, path, depth); err != nil {
		return nil, err
	}
	return trial.Errors, nil
}
