package value

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
)

// FromGo converts the generic Go representation produced by a JSON or YAML
// decoder (nil, bool, numeric types, string, []any, map[string]any or
// map[any]any) into a Value tree. A Value passes through unchanged.
//
// Returns an error for Go types outside the generic decoding surface; that
// indicates a caller bug, not bad input data.
func FromGo(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return FromGo(float64(x))
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return Value{}, fmt.Errorf("value: non-finite number %v", x)
		}
		return Float(x), nil
	case json.Number:
		r, ok := new(big.Rat).SetString(x.String())
		if !ok {
			return Value{}, fmt.Errorf("value: invalid number literal %q", x.String())
		}
		return Number(r), nil
	case []any:
		items := make([]Value, len(x))
		for i, elem := range x {
			ev, err := FromGo(elem)
			if err != nil {
				return Value{}, err
			}
			items[i] = ev
		}
		return Sequence(items...), nil
	case map[string]any:
		fields := make(map[string]Value, len(x))
		for k, elem := range x {
			ev, err := FromGo(elem)
			if err != nil {
				return Value{}, err
			}
			fields[k] = ev
		}
		return Mapping(fields), nil
	case map[any]any:
		// Older YAML decoders produce any-keyed maps.
		fields := make(map[string]Value, len(x))
		for k, elem := range x {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("value: mapping key %v (%T) is not a string", k, k)
			}
			ev, err := FromGo(elem)
			if err != nil {
				return Value{}, err
			}
			fields[ks] = ev
		}
		return Mapping(fields), nil
	default:
		return Value{}, fmt.Errorf("value: unsupported Go type %T", v)
	}
}

func fromUint(u uint64) (Value, error) {
	return Number(new(big.Rat).SetInt(new(big.Int).SetUint64(u))), nil
}

// MustFromGo is FromGo that panics on error. Intended for literals in
// tests and examples.
func MustFromGo(v any) Value {
	val, err := FromGo(v)
	if err != nil {
		panic(err)
	}
	return val
}
