package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"null equals null", Null(), Null(), true},
		{"null vs false differ", Null(), Bool(false), false},
		{"bools equal", Bool(true), Bool(true), true},
		{"bools differ", Bool(true), Bool(false), false},
		{"strings equal", String("abc"), String("abc"), true},
		{"strings case-sensitive", String("abc"), String("ABC"), false},
		{"string vs number differ", String("1"), Int(1), false},
		{"integers equal", Int(5), Int(5), true},
		{"integer equals decimal spelling", Int(1), Float(1.0), true},
		{"decimals differ", Float(1.5), Float(1.25), false},
		{"sequences equal", Sequence(Int(1), Int(2)), Sequence(Int(1), Int(2)), true},
		{"sequence order matters", Sequence(Int(1), Int(2)), Sequence(Int(2), Int(1)), false},
		{"sequence length differs", Sequence(Int(1)), Sequence(Int(1), Int(2)), false},
		{
			"mappings equal regardless of construction order",
			Mapping(map[string]Value{"a": Int(1), "b": Int(2)}),
			Mapping(map[string]Value{"b": Int(2), "a": Int(1)}),
			true,
		},
		{
			"mapping key sets differ",
			Mapping(map[string]Value{"a": Int(1)}),
			Mapping(map[string]Value{"b": Int(1)}),
			false,
		},
		{
			"nested structures equal",
			Mapping(map[string]Value{"a": Sequence(Null(), Mapping(map[string]Value{"x": Float(1.0)}))}),
			Mapping(map[string]Value{"a": Sequence(Null(), Mapping(map[string]Value{"x": Int(1)}))}),
			true,
		},
		{
			"nested structures differ deep down",
			Mapping(map[string]Value{"a": Sequence(Mapping(map[string]Value{"x": Int(1)}))}),
			Mapping(map[string]Value{"a": Sequence(Mapping(map[string]Value{"x": Int(2)}))}),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			// Equality is symmetric.
			assert.Equal(t, tt.want, Equal(tt.b, tt.a))
		})
	}
}
