// Package dump renders lowered modules as YAML for inspection.
package dump

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/ast"
)

var (
	spanType     = reflect.TypeFor[common.Span]()
	identType    = reflect.TypeFor[ast.Ident]()
	intValueType = reflect.TypeFor[ast.IntValue]()
	nodeType     = reflect.TypeFor[ast.Node]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

// YAML encodes n with two-space indentation.
func YAML(n ast.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Node(n)); err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}
	return buf.Bytes(), nil
}

// Node builds the YAML tree of n. Every AST node becomes a mapping whose
// `node` key names its type; absent, false and empty fields are omitted.
func Node(n ast.Node) *yaml.Node {
	if out := value(reflect.ValueOf(n)); out != nil {
		return out
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "~"}
}

func value(v reflect.Value) *yaml.Node {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return value(v.Elem())
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		if lit, ok := v.Interface().(*ast.Literal); ok {
			return literal(lit)
		}
		return value(v.Elem())
	}

	switch t := v.Type(); {
	case t == spanType:
		return str(spanString(v.Interface().(common.Span)))
	case t == identType:
		return str(v.Interface().(ast.Ident).Raw)
	case t == intValueType:
		return scalar("!!int", v.Interface().(ast.IntValue).String())
	case t.Implements(stringerType):
		return str(v.Interface().(fmt.Stringer).String())
	}

	switch v.Kind() {
	case reflect.Struct:
		return mapping(v)
	case reflect.Slice:
		if v.Len() == 0 {
			return nil
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for i := range v.Len() {
			item := value(v.Index(i))
			if item == nil {
				item = scalar("!!null", "~")
			}
			seq.Content = append(seq.Content, item)
		}
		return seq
	case reflect.Bool:
		if !v.Bool() {
			return nil
		}
		return scalar("!!bool", "true")
	case reflect.String:
		if v.String() == "" {
			return nil
		}
		return str(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalar("!!int", strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return scalar("!!int", strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return scalar("!!float", strconv.FormatFloat(v.Float(), 'g', -1, 64))
	}
	return str(fmt.Sprint(v.Interface()))
}

// mapping renders an addressable struct value.
func mapping(v reflect.Value) *yaml.Node {
	t := v.Type()
	m := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, str("node"), str(t.Name()))
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if child := value(v.Field(i)); child != nil {
			m.Content = append(m.Content, str(f.Name), child)
		}
	}
	if v.CanAddr() && v.Addr().Type().Implements(nodeType) {
		n := v.Addr().Interface().(ast.Node)
		m.Content = append(m.Content, str("Span"), str(spanString(n.Span())))
	}
	return m
}

func literal(lit *ast.Literal) *yaml.Node {
	var val *yaml.Node
	switch lit.Kind {
	case ast.LiteralInteger:
		val = scalar("!!int", lit.Int.String())
	case ast.LiteralFloat:
		val = scalar("!!float", strconv.FormatFloat(lit.Float, 'g', -1, 64))
	case ast.LiteralString:
		val = &yaml.Node{}
		val.SetString(lit.String)
	case ast.LiteralChar:
		val = &yaml.Node{}
		val.SetString(string(lit.Char))
	case ast.LiteralBool:
		val = scalar("!!bool", strconv.FormatBool(lit.Bool))
	}

	m := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content,
		str("node"), str("Literal"),
		str("Kind"), str(lit.Kind.String()),
		str("Raw"), str(lit.Raw),
	)
	if lit.Suffix != "" {
		m.Content = append(m.Content, str("Suffix"), str(lit.Suffix))
	}
	m.Content = append(m.Content, str("Value"), val, str("Span"), str(spanString(lit.Span())))
	return m
}

func spanString(s common.Span) string {
	return fmt.Sprintf("%d:%d-%d:%d", s.LineStart, s.ColumnStart, s.LineEnd, s.ColumnEnd)
}

func str(s string) *yaml.Node {
	n := &yaml.Node{}
	n.SetString(s)
	return n
}

func scalar(tag, v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v}
}
