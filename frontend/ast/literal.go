package ast

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ziust-lang/ziust/common"
)

type LiteralKind uint8

const (
	LiteralInteger LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralChar
	LiteralBool
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralInteger:
		return "integer"
	case LiteralFloat:
		return "float"
	case LiteralString:
		return "string"
	case LiteralChar:
		return "char"
	case LiteralBool:
		return "bool"
	}
	return fmt.Sprintf("LiteralKind(%d)", uint8(k))
}

// Literal is a typed literal value. Only the field matching Kind is set.
type Literal struct {
	Kind   LiteralKind
	Raw    string
	Suffix string
	Int    IntValue
	Float  float64
	String string
	Char   rune
	Bool   bool
	node
}

func NewIntegerLiteral(raw, suffix string, v IntValue, span common.Span) *Literal {
	return &Literal{Kind: LiteralInteger, Raw: raw, Suffix: suffix, Int: v, node: node{span}}
}

func NewFloatLiteral(raw, suffix string, v float64, span common.Span) *Literal {
	return &Literal{Kind: LiteralFloat, Raw: raw, Suffix: suffix, Float: v, node: node{span}}
}

func NewStringLiteral(raw, v string, span common.Span) *Literal {
	return &Literal{Kind: LiteralString, Raw: raw, String: v, node: node{span}}
}

func NewCharLiteral(raw string, v rune, span common.Span) *Literal {
	return &Literal{Kind: LiteralChar, Raw: raw, Char: v, node: node{span}}
}

func NewBoolLiteral(v bool, span common.Span) *Literal {
	return &Literal{Kind: LiteralBool, Raw: strconv.FormatBool(v), Bool: v, node: node{span}}
}

func (l *Literal) isExpression()       {}
func (l *Literal) isSimpleExpression() {}

/* Integers */

// IntValue is an integer in sign-magnitude form, wide enough for every
// i64 and u64 value. Zero is never negative.
type IntValue struct {
	Negative  bool
	Magnitude uint64
}

func IntFromUint(v uint64) IntValue { return IntValue{Magnitude: v} }

func IntFromInt(v int64) IntValue {
	if v < 0 {
		return IntValue{Negative: true, Magnitude: uint64(-(v + 1)) + 1}
	}
	return IntValue{Magnitude: uint64(v)}
}

func (v IntValue) String() string {
	if v.Negative {
		return "-" + strconv.FormatUint(v.Magnitude, 10)
	}
	return strconv.FormatUint(v.Magnitude, 10)
}

// Neg flips the sign.
func (v IntValue) Neg() IntValue {
	if v.Magnitude == 0 {
		return v
	}
	return IntValue{Negative: !v.Negative, Magnitude: v.Magnitude}
}

// Inc returns v+1; ok is false if the result does not fit.
func (v IntValue) Inc() (IntValue, bool) {
	if v.Negative {
		m := v.Magnitude - 1
		return IntValue{Negative: m != 0, Magnitude: m}, true
	}
	if v.Magnitude == math.MaxUint64 {
		return v, false
	}
	return IntValue{Magnitude: v.Magnitude + 1}, true
}

func (v IntValue) Cmp(o IntValue) int {
	switch {
	case v.Negative && !o.Negative:
		return -1
	case !v.Negative && o.Negative:
		return 1
	}
	c := 0
	switch {
	case v.Magnitude < o.Magnitude:
		c = -1
	case v.Magnitude > o.Magnitude:
		c = 1
	}
	if v.Negative {
		return -c
	}
	return c
}

// IntType describes a fixed-width integer type.
type IntType struct {
	Name   string
	Signed bool
	Bits   uint8
}

var intTypes = map[string]IntType{
	"i8":    {"i8", true, 8},
	"i16":   {"i16", true, 16},
	"i32":   {"i32", true, 32},
	"i64":   {"i64", true, 64},
	"isize": {"isize", true, 64},
	"u8":    {"u8", false, 8},
	"u16":   {"u16", false, 16},
	"u32":   {"u32", false, 32},
	"u64":   {"u64", false, 64},
	"usize": {"usize", false, 64},
}

func LookupIntType(name string) (IntType, bool) {
	t, ok := intTypes[name]
	return t, ok
}

// IntTypeOf returns the integer type ty names, if it is a bare terminal
// type such as `u8`.
func IntTypeOf(ty Type) (IntType, bool) {
	tt, ok := ty.(*TerminalType)
	if !ok || len(tt.Name.Segments) != 1 || len(tt.TemplateArguments) > 0 || len(tt.GenericArguments) > 0 {
		return IntType{}, false
	}
	return LookupIntType(tt.Name.Segments[0].Raw)
}

func (t IntType) Min() IntValue {
	if !t.Signed {
		return IntValue{}
	}
	return IntValue{Negative: true, Magnitude: 1 << (t.Bits - 1)}
}

func (t IntType) Max() IntValue {
	if t.Signed {
		return IntValue{Magnitude: 1<<(t.Bits-1) - 1}
	}
	if t.Bits == 64 {
		return IntValue{Magnitude: math.MaxUint64}
	}
	return IntValue{Magnitude: 1<<t.Bits - 1}
}

func (t IntType) Contains(v IntValue) bool {
	return v.Cmp(t.Min()) >= 0 && v.Cmp(t.Max()) <= 0
}
