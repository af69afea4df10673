package value

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNull, "null"},
		{KindBool, "boolean"},
		{KindNumber, "number"},
		{KindString, "string"},
		{KindSequence, "array"},
		{KindMapping, "object"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	assert.Equal(t, KindNull, v.Kind())
	assert.True(t, v.IsNull())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, KindBool, Bool(true).Kind())
	assert.True(t, Bool(true).Bool())

	n := Int(42)
	assert.Equal(t, KindNumber, n.Kind())
	assert.True(t, n.IsInt())
	i, ok := n.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(42), i)

	f := Float(2.5)
	assert.Equal(t, KindNumber, f.Kind())
	assert.False(t, f.IsInt())
	_, ok = f.Int64()
	assert.False(t, ok)

	s := String("hello")
	assert.Equal(t, KindString, s.Kind())
	assert.Equal(t, "hello", s.Str())

	seq := Sequence(Int(1), Int(2))
	assert.Equal(t, KindSequence, seq.Kind())
	assert.Equal(t, 2, seq.Len())
	assert.Len(t, seq.Items(), 2)

	m := Mapping(map[string]Value{"a": Int(1)})
	assert.Equal(t, KindMapping, m.Kind())
	assert.Equal(t, 1, m.Len())
	got, ok := m.Get("a")
	assert.True(t, ok)
	assert.True(t, Equal(got, Int(1)))
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("b"))
}

func TestKeysSorted(t *testing.T) {
	m := Mapping(map[string]Value{"c": Null(), "a": Null(), "b": Null()})
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}

func TestMappingNilFields(t *testing.T) {
	m := Mapping(nil)
	assert.Equal(t, KindMapping, m.Kind())
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), "null"},
		{"bool", Bool(false), "false"},
		{"integer", Int(7), "7"},
		{"decimal", Float(2.5), "2.5"},
		{"string quoted", String(`a"b`), `"a\"b"`},
		{"sequence", Sequence(Int(1), String("x")), `[1,"x"]`},
		{
			"mapping sorted keys",
			Mapping(map[string]Value{"b": Int(2), "a": Int(1)}),
			`{"a":1,"b":2}`,
		},
		{
			"nested",
			Mapping(map[string]Value{"items": Sequence(Null(), Bool(true))}),
			`{"items":[null,true]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "3", FormatNumber(big.NewRat(3, 1)))
	assert.Equal(t, "-12", FormatNumber(big.NewRat(-12, 1)))
	assert.Equal(t, "0.5", FormatNumber(big.NewRat(1, 2)))
}
