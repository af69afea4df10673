package value

import (
	"math/big"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies which member of the Value union a node holds.
type Kind int

const (
	// KindNull is the null value.
	KindNull Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindNumber is an arbitrary-precision number.
	KindNumber
	// KindString is a string.
	KindString
	// KindSequence is an ordered list of Values.
	KindSequence
	// KindMapping is a string-keyed map of Values; key order is irrelevant.
	KindMapping
)

// String returns the kind name in schema vocabulary: the names match the
// values accepted by the "type" keyword.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "array"
	case KindMapping:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a data tree. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	num  *big.Rat
	str  string
	seq  []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns a number value holding the given integer.
func Int(i int64) Value {
	return Value{kind: KindNumber, num: new(big.Rat).SetInt64(i)}
}

// Float returns a number value holding the decimal that f prints as: the
// shortest decimal string that round-trips to f, parsed as an exact
// rational. 0.3 becomes 3/10 rather than its binary approximation, so
// comparisons and divisibility behave decimal-exactly. f must be finite.
func Float(f float64) Value {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	if !ok {
		r = new(big.Rat)
	}
	return Value{kind: KindNumber, num: r}
}

// Number returns a number value holding the given rational. The rational
// must not be mutated afterwards.
func Number(r *big.Rat) Value {
	return Value{kind: KindNumber, num: r}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Sequence returns a sequence value over the given elements.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// Mapping returns a mapping value over the given fields.
func Mapping(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindMapping, obj: fields}
}

// Kind returns which member of the union this value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool {
	return v.b
}

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string {
	return v.str
}

// Num returns the numeric payload. Valid only for KindNumber.
// The returned rational must not be mutated.
func (v Value) Num() *big.Rat {
	return v.num
}

// IsInt reports whether the value is a number with zero fractional component.
func (v Value) IsInt() bool {
	return v.kind == KindNumber && v.num.IsInt()
}

// Int64 returns the integer payload when the value is an integral number
// that fits in an int64.
func (v Value) Int64() (int64, bool) {
	if !v.IsInt() {
		return 0, false
	}
	n := v.num.Num()
	if !n.IsInt64() {
		return 0, false
	}
	return n.Int64(), true
}

// Items returns the sequence elements. Valid only for KindSequence.
func (v Value) Items() []Value {
	return v.seq
}

// Len returns the element count for sequences and the key count for mappings.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.obj)
	default:
		return 0
	}
}

// Keys returns the mapping keys in sorted order, so iteration over a
// mapping is deterministic. Valid only for KindMapping.
func (v Value) Keys() []string {
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Get returns the value for a mapping key and whether the key is present.
func (v Value) Get(key string) (Value, bool) {
	val, ok := v.obj[key]
	return val, ok
}

// Has reports whether a mapping contains the given key.
func (v Value) Has(key string) bool {
	_, ok := v.obj[key]
	return ok
}

// String renders the value as compact JSON-style text, for error messages
// and debugging. Mapping keys are emitted in sorted order.
func (v Value) String() string {
	var b strings.Builder
	v.render(&b)
	return b.String()
}

func (v Value) render(b *strings.Builder) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		b.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		b.WriteString(FormatNumber(v.num))
	case KindString:
		b.WriteString(strconv.Quote(v.str))
	case KindSequence:
		b.WriteByte('[')
		for i, item := range v.seq {
			if i > 0 {
				b.WriteByte(',')
			}
			item.render(b)
		}
		b.WriteByte(']')
	case KindMapping:
		b.WriteByte('{')
		for i, k := range v.Keys() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			v.obj[k].render(b)
		}
		b.WriteByte('}')
	}
}

// FormatNumber renders a rational the way a JSON writer would: integers
// without a fractional part, everything else as a shortest-form decimal.
func FormatNumber(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	f, _ := r.Float64()
	return strconv.FormatFloat(f, 'g', -1, 64)
}
