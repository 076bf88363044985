package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziust-lang/ziust/common"
)

func TestIntFromInt(t *testing.T) {
	assert.Equal(t, "0", IntFromInt(0).String())
	assert.Equal(t, "-1", IntFromInt(-1).String())
	assert.Equal(t, "-9223372036854775808", IntFromInt(math.MinInt64).String())
	assert.Equal(t, "18446744073709551615", IntFromUint(math.MaxUint64).String())
	assert.False(t, IntFromInt(0).Neg().Negative, "zero is never negative")
}

func TestIntValueInc(t *testing.T) {
	v, ok := IntFromInt(-1).Inc()
	require.True(t, ok)
	assert.Equal(t, IntValue{}, v)

	v, ok = IntFromInt(-5).Inc()
	require.True(t, ok)
	assert.Equal(t, "-4", v.String())

	_, ok = IntFromUint(math.MaxUint64).Inc()
	assert.False(t, ok)
}

func TestIntValueCmp(t *testing.T) {
	values := []IntValue{
		IntFromInt(math.MinInt64),
		IntFromInt(-3),
		IntFromInt(-1),
		IntFromInt(0),
		IntFromInt(7),
		IntFromUint(math.MaxUint64),
	}
	for i := range values {
		for j := range values {
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			assert.Equal(t, want, values[i].Cmp(values[j]), "%s vs %s", values[i], values[j])
		}
	}
}

func TestIntTypeBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
	}{
		{"i8", "-128", "127"},
		{"u8", "0", "255"},
		{"i16", "-32768", "32767"},
		{"u32", "0", "4294967295"},
		{"i64", "-9223372036854775808", "9223372036854775807"},
		{"u64", "0", "18446744073709551615"},
		{"usize", "0", "18446744073709551615"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ty, ok := LookupIntType(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.min, ty.Min().String())
			assert.Equal(t, tt.max, ty.Max().String())
		})
	}

	_, ok := LookupIntType("f32")
	assert.False(t, ok)
}

func TestIntTypeContains(t *testing.T) {
	u8, _ := LookupIntType("u8")
	assert.True(t, u8.Contains(IntFromInt(255)))
	assert.False(t, u8.Contains(IntFromInt(256)))
	assert.False(t, u8.Contains(IntFromInt(-1)))

	i8, _ := LookupIntType("i8")
	assert.True(t, i8.Contains(IntFromInt(-128)))
	assert.False(t, i8.Contains(IntFromInt(-129)))
	assert.False(t, i8.Contains(IntFromInt(128)))
}

func TestIntTypeOf(t *testing.T) {
	span := common.SpanDefault()
	named := func(segments ...string) *TerminalType {
		var idents []Ident
		for _, s := range segments {
			idents = append(idents, NewIdent(s, span))
		}
		return NewTerminalType(NewConstReference(idents, span), nil, nil, span)
	}

	ty, ok := IntTypeOf(named("i32"))
	require.True(t, ok)
	assert.Equal(t, IntType{"i32", true, 32}, ty)

	_, ok = IntTypeOf(named("core", "i32"))
	assert.False(t, ok)
	_, ok = IntTypeOf(named("Shape"))
	assert.False(t, ok)
	_, ok = IntTypeOf(NewNeverType(span))
	assert.False(t, ok)
}
