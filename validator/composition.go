package validator

import (
	"fmt"

	"github.com/erraggy/treeschema/value"
)

// validateComposition applies the composition operators in order:
// allOf, anyOf, oneOf, not.
func (w *walker) validateComposition(instance, schema value.Value, path Path, depth int) error {
	if subs, ok, err := schemaSubSchemas(schema, "allOf", path); err != nil {
		return err
	} else if ok {
		// Every branch's errors surface directly; allOf is conjunction,
		// not a trial.
		for _, sub := range subs {
			if err := w.walk(instance, sub, path, depth+1); err != nil {
				return err
			}
		}
	}

	if subs, ok, err := schemaSubSchemas(schema, "anyOf", path); err != nil {
		return err
	} else if ok {
		matched := false
		for _, sub := range subs {
			errs, err := w.collect(instance, sub, path, depth+1)
			if err != nil {
				return err
			}
			if len(errs) == 0 {
				matched = true
				break
			}
		}
		if !matched {
			w.addError(path, "anyOf",
				fmt.Sprintf("value does not match any of the %d alternatives", len(subs)),
				withValue(instance.String()))
		}
	}

	if subs, ok, err := schemaSubSchemas(schema, "oneOf", path); err != nil {
		return err
	} else if ok {
		matches := 0
		for _, sub := range subs {
			errs, err := w.collect(instance, sub, path, depth+1)
			if err != nil {
				return err
			}
			if len(errs) == 0 {
				matches++
			}
		}
		if matches != 1 {
			w.addError(path, "oneOf",
				fmt.Sprintf("value matches %d of the %d alternatives, expected exactly one", matches, len(subs)),
				withValue(instance.String()))
		}
	}

	return w.validateNot(instance, schema, path, depth)
}

// validateNot inverts a sub-schema: the instance must fail it. A list
// value is treated as the conjunction of its entries, so the instance
// must fail at least one of them.
func (w *walker) validateNot(instance, schema value.Value, path Path, depth int) error {
	raw, ok := schema.Get("not")
	if !ok {
		return nil
	}

	var sub value.Value
	switch raw.Kind() {
	case value.KindMapping:
		sub = raw
	case value.KindSequence:
		for i, entry := range raw.Items() {
			if entry.Kind() != value.KindMapping {
				return schemaErr(path, "not", entry.String(),
					fmt.Sprintf("entry %d is %s, not a schema", i, entry.Kind()))
			}
		}
		sub = value.Mapping(map[string]value.Value{"allOf": raw})
	default:
		return schemaErr(path, "not", raw.String(),
			fmt.Sprintf("expected a schema or a list of schemas but found %s", raw.Kind()))
	}

	errs, err := w.collect(instance, sub, path, depth+1)
	if err != nil {
		return err
	}
	if len(errs) == 0 {
		w.addError(path, "not",
			"value matches a schema it must not match",
			withValue(instance.String()))
	}
	return nil
}
