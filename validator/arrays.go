package validator

import (
	"fmt"

	"github.com/erraggy/treeschema/value"
)

// validateArray applies the array keyword family: items,
// additionalItems, minItems, maxItems, and uniqueItems.
func (w *walker) validateArray(instance, schema value.Value, path Path, depth int) error {
	elems := instance.Items()

	if err := w.validateItems(instance, schema, path, depth); err != nil {
		return err
	}

	exclMin, _, err := schemaBool(schema, "exclusiveMinimum", path)
	if err != nil {
		return err
	}
	exclMax, _, err := schemaBool(schema, "exclusiveMaximum", path)
	if err != nil {
		return err
	}

	count := int64(len(elems))
	if min, ok, err := schemaInt(schema, "minItems", path); err != nil {
		return err
	} else if ok && belowBound(count, min, exclMin) {
		w.addError(path, "minItems",
			fmt.Sprintf("array has %d items, %s the minimum of %d", count, boundWord(exclMin, "below"), min))
	}

	if max, ok, err := schemaInt(schema, "maxItems", path); err != nil {
		return err
	} else if ok && aboveBound(count, max, exclMax) {
		w.addError(path, "maxItems",
			fmt.Sprintf("array has %d items, %s the maximum of %d", count, boundWord(exclMax, "above"), max))
	}

	if unique, ok, err := schemaBool(schema, "uniqueItems", path); err != nil {
		return err
	} else if ok && unique {
		// Quadratic scan: exact structural equality has no cheap hash,
		// and each later duplicate is reported at its own index.
		for i := 1; i < len(elems); i++ {
			for j := range i {
				if value.Equal(elems[i], elems[j]) {
					w.addError(path.At(i), "uniqueItems",
						fmt.Sprintf("item %d duplicates item %d", i, j),
						withValue(elems[i].String()))
					break
				}
			}
		}
	}

	return nil
}

// validateItems walks elements against the items schema. A single
// schema applies to every element and additionalItems is ignored. A
// positional list applies element-by-element; elements beyond the list
// are governed by additionalItems, which defaults to false.
func (w *walker) validateItems(instance, schema value.Value, path Path, depth int) error {
	elems := instance.Items()
	items, ok := schema.Get("items")
	if !ok {
		return nil
	}

	switch items.Kind() {
	case value.KindMapping:
		for i, elem := range elems {
			if err := w.walk(elem, items, path.At(i), depth+1); err != nil {
				return err
			}
		}
		return nil

	case value.KindSequence:
		positional := items.Items()
		for i, sub := range positional {
			if sub.Kind() != value.KindMapping {
				return schemaErr(path, "items", sub.String(),
					fmt.Sprintf("entry %d is %s, not a schema", i, sub.Kind()))
			}
			if i >= len(elems) {
				break
			}
			if err := w.walk(elems[i], sub, path.At(i), depth+1); err != nil {
				return err
			}
		}
		if len(elems) <= len(positional) {
			return nil
		}
		return w.validateAdditionalItems(elems, len(positional), schema, path, depth)

	default:
		return schemaErr(path, "items", items.String(),
			fmt.Sprintf("expected a schema or a list of schemas but found %s", items.Kind()))
	}
}

// validateAdditionalItems handles elements past the positional items
// list: permitted wholesale (true), rejected per element (false or
// absent), or validated against a sub-schema.
func (w *walker) validateAdditionalItems(elems []value.Value, from int, schema value.Value, path Path, depth int) error {
	raw, ok := schema.Get("additionalItems")
	if ok && raw.Kind() == value.KindMapping {
		for i := from; i < len(elems); i++ {
			if err := w.walk(elems[i], raw, path.At(i), depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if ok && raw.Kind() != value.KindBool {
		return schemaErr(path, "additionalItems", raw.String(),
			fmt.Sprintf("expected a boolean or a schema but found %s", raw.Kind()))
	}
	if ok && raw.Bool() {
		return nil
	}
	for i := from; i < len(elems); i++ {
		w.addError(path.At(i), "additionalItems",
			fmt.Sprintf("item %d exceeds the %d positionally defined items", i, from),
			withValue(elems[i].String()))
	}
	return nil
}
