package validator

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/erraggy/treeschema/value"
)

// validateString applies the string keyword family: minLength, maxLength,
// pattern, and format. Lengths are counted in Unicode code points after
// NFC normalization.
func (w *walker) validateString(instance, schema value.Value, path Path) error {
	s := instance.Str()
	length := int64(utf8.RuneCountInString(norm.NFC.String(s)))

	exclMin, _, err := schemaBool(schema, "exclusiveMinimum", path)
	if err != nil {
		return err
	}
	exclMax, _, err := schemaBool(schema, "exclusiveMaximum", path)
	if err != nil {
		return err
	}

	if min, ok, err := schemaInt(schema, "minLength", path); err != nil {
		return err
	} else if ok && belowBound(length, min, exclMin) {
		w.addError(path, "minLength",
			fmt.Sprintf("string length %d is %s the minimum of %d", length, boundWord(exclMin, "below"), min),
			withValue(s))
	}

	if max, ok, err := schemaInt(schema, "maxLength", path); err != nil {
		return err
	} else if ok && aboveBound(length, max, exclMax) {
		w.addError(path, "maxLength",
			fmt.Sprintf("string length %d is %s the maximum of %d", length, boundWord(exclMax, "above"), max),
			withValue(s))
	}

	if expr, ok, err := schemaString(schema, "pattern", path); err != nil {
		return err
	} else if ok {
		re, err := compileSchemaPattern(expr, "pattern", path)
		if err != nil {
			return err
		}
		if !re.MatchString(s) {
			w.addError(path, "pattern",
				fmt.Sprintf("string %q does not match pattern %q", s, expr),
				withValue(s))
		}
	}

	if name, ok, err := schemaString(schema, "format", path); err != nil {
		return err
	} else if ok {
		re, known := lookupFormat(name)
		if !known {
			return schemaErr(path, "format", name, fmt.Sprintf("unknown format %q", name))
		}
		if !re.MatchString(s) {
			w.addError(path, "format",
				fmt.Sprintf("string %q is not a valid %s", s, name),
				withValue(s))
		}
	}

	return nil
}

// validateNumber applies the numeric keyword family: minimum, maximum,
// and divisibleBy. All comparisons are exact.
func (w *walker) validateNumber(instance, schema value.Value, path Path) error {
	n := instance.Num()

	exclMin, _, err := schemaBool(schema, "exclusiveMinimum", path)
	if err != nil {
		return err
	}
	exclMax, _, err := schemaBool(schema, "exclusiveMaximum", path)
	if err != nil {
		return err
	}

	if min, ok, err := schemaRat(schema, "minimum", path); err != nil {
		return err
	} else if ok {
		cmp := n.Cmp(min)
		if cmp < 0 || (exclMin && cmp == 0) {
			w.addError(path, "minimum",
				fmt.Sprintf("value %s is %s the minimum of %s",
					value.FormatNumber(n), boundWord(exclMin, "below"), value.FormatNumber(min)),
				withValue(value.FormatNumber(n)))
		}
	}

	if max, ok, err := schemaRat(schema, "maximum", path); err != nil {
		return err
	} else if ok {
		cmp := n.Cmp(max)
		if cmp > 0 || (exclMax && cmp == 0) {
			w.addError(path, "maximum",
				fmt.Sprintf("value %s is %s the maximum of %s",
					value.FormatNumber(n), boundWord(exclMax, "above"), value.FormatNumber(max)),
				withValue(value.FormatNumber(n)))
		}
	}

	if div, ok, err := schemaRat(schema, "divisibleBy", path); err != nil {
		return err
	} else if ok {
		if div.Sign() == 0 {
			return schemaErr(path, "divisibleBy", "0", "divisor must not be zero")
		}
		quo := new(big.Rat).Quo(n, div)
		if !quo.IsInt() {
			w.addError(path, "divisibleBy",
				fmt.Sprintf("value %s is not divisible by %s",
					value.FormatNumber(n), value.FormatNumber(div)),
				withValue(value.FormatNumber(n)))
		}
	}

	return nil
}

// belowBound reports a lower-bound violation; with exclusive set the
// bound itself also violates.
func belowBound(n, bound int64, exclusive bool) bool {
	return n < bound || (exclusive && n == bound)
}

// aboveBound reports an upper-bound violation.
func aboveBound(n, bound int64, exclusive bool) bool {
	return n > bound || (exclusive && n == bound)
}

// boundWord phrases a bound violation: "below"/"above" for strict
// violations, "at or below"/"at or above" when the bound is exclusive.
func boundWord(exclusive bool, direction string) string {
	if exclusive {
		return "at or " + direction
	}
	return direction
}
