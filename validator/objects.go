package validator

import (
	"fmt"

	"github.com/erraggy/treeschema/value"
)

// validateObject applies the object keyword family: properties,
// patternProperties, additionalProperties, and dependencies.
func (w *walker) validateObject(instance, schema value.Value, path Path, depth int) error {
	declared := map[string]bool{}

	props, hasProps, err := schemaMapping(schema, "properties", path)
	if err != nil {
		return err
	}
	if hasProps {
		for _, name := range props.Keys() {
			declared[name] = true
			sub, _ := props.Get(name)
			// An absent property is validated as null, so the
			// null/required short-circuit covers both absence and an
			// explicit null.
			child, ok := instance.Get(name)
			if !ok {
				child = value.Null()
			}
			if err := w.walk(child, sub, path.Child(name), depth+1); err != nil {
				return err
			}
		}
	}

	patternMatched := map[string]bool{}
	patterns, hasPatterns, err := schemaMapping(schema, "patternProperties", path)
	if err != nil {
		return err
	}
	if hasPatterns {
		for _, expr := range patterns.Keys() {
			re, err := compileSchemaPattern(expr, "patternProperties", path)
			if err != nil {
				return err
			}
			sub, _ := patterns.Get(expr)
			if sub.Kind() != value.KindMapping {
				return schemaErr(path, "patternProperties", sub.String(),
					fmt.Sprintf("schema for pattern %q is %s, not an object", expr, sub.Kind()))
			}
			for _, key := range instance.Keys() {
				if !re.MatchString(key) {
					continue
				}
				patternMatched[key] = true
				child, _ := instance.Get(key)
				if err := w.walk(child, sub, path.Child(key), depth+1); err != nil {
					return err
				}
			}
		}
	}

	if err := w.validateAdditionalProperties(instance, schema, path, depth, declared, patternMatched); err != nil {
		return err
	}

	return w.validateDependencies(instance, schema, path, depth)
}

// validateAdditionalProperties constrains instance keys not covered by
// properties or patternProperties. The keyword takes a boolean, a list
// of permitted names, or a sub-schema applied to each residual value.
func (w *walker) validateAdditionalProperties(instance, schema value.Value, path Path, depth int, declared, patternMatched map[string]bool) error {
	raw, ok := schema.Get("additionalProperties")
	if !ok {
		return nil
	}

	residual := make([]string, 0, instance.Len())
	for _, key := range instance.Keys() {
		if !declared[key] && !patternMatched[key] {
			residual = append(residual, key)
		}
	}

	switch raw.Kind() {
	case value.KindBool:
		if raw.Bool() {
			return nil
		}
		for _, key := range residual {
			w.addError(path.Child(key), "additionalProperties",
				fmt.Sprintf("property %q is not permitted", key))
		}
		return nil

	case value.KindSequence:
		allowed := map[string]bool{}
		for i, item := range raw.Items() {
			if item.Kind() != value.KindString {
				return schemaErr(path, "additionalProperties", item.String(),
					fmt.Sprintf("entry %d of the permitted name list is %s, not a string", i, item.Kind()))
			}
			allowed[item.Str()] = true
		}
		for _, key := range residual {
			if !allowed[key] {
				w.addError(path.Child(key), "additionalProperties",
					fmt.Sprintf("property %q is not permitted", key))
			}
		}
		return nil

	case value.KindMapping:
		for _, key := range residual {
			child, _ := instance.Get(key)
			if err := w.walk(child, raw, path.Child(key), depth+1); err != nil {
				return err
			}
		}
		return nil

	default:
		return schemaErr(path, "additionalProperties", raw.String(),
			fmt.Sprintf("expected a boolean, a list of property names, or a schema but found %s", raw.Kind()))
	}
}

// validateDependencies enforces presence-triggered constraints: when a
// named property is present, its dependency (a property name, a list of
// names, or a sub-schema over the whole object) must hold.
func (w *walker) validateDependencies(instance, schema value.Value, path Path, depth int) error {
	deps, ok, err := schemaMapping(schema, "dependencies", path)
	if err != nil || !ok {
		return err
	}

	for _, name := range deps.Keys() {
		if !instance.Has(name) {
			continue
		}
		dep, _ := deps.Get(name)
		switch dep.Kind() {
		case value.KindString:
			if !instance.Has(dep.Str()) {
				w.addError(path, "dependencies",
					fmt.Sprintf("property %q requires property %q to be present", name, dep.Str()))
			}
		case value.KindSequence:
			for i, item := range dep.Items() {
				if item.Kind() != value.KindString {
					return schemaErr(path, "dependencies", item.String(),
						fmt.Sprintf("entry %d of the dependency list for %q is %s, not a string", i, name, item.Kind()))
				}
				if !instance.Has(item.Str()) {
					w.addError(path, "dependencies",
						fmt.Sprintf("property %q requires property %q to be present", name, item.Str()))
				}
			}
		case value.KindMapping:
			if err := w.walk(instance, dep, path, depth+1); err != nil {
				return err
			}
		default:
			return schemaErr(path, "dependencies", dep.String(),
				fmt.Sprintf("dependency for %q must be a property name, a list of names, or a schema but found %s", name, dep.Kind()))
		}
	}
	return nil
}
