package lsp

import (
	"fmt"
	"strings"

	"github.com/gluax-lang/lsp"

	"github.com/ziust-lang/ziust/frontend/ast"
)

func (h *Handler) Hover(p *lsp.HoverParams) (*lsp.Hover, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	unit, idx, ok := h.unitAt(p.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	line, column := idx.toSpan(p.Position)
	content := hoverAt(unit.Module, line, column)
	if content == "" {
		return nil, nil
	}
	return &lsp.Hover{
		Contents: lsp.MarkupContent{
			Kind:  "markdown",
			Value: content,
		},
	}, nil
}

// hoverAt describes the label, jump, enum member or declaration at the
// position, innermost first.
func hoverAt(m *ast.Module, line, column uint32) string {
	if label, ok := labelDeclarationAt(m, line, column); ok {
		return labelHover(m, label)
	}
	path := nodesAt(m, line, column)
	for i := len(path) - 1; i >= 0; i-- {
		switch n := path[i].(type) {
		case *ast.BreakExpression, *ast.ContinueExpression, *ast.ReturnExpression:
			return jumpHover(n)
		case *ast.DeferStatement:
			if label := deferLabelAt(n, line, column); label != nil {
				return deferLabelHover(m, label, line, column)
			}
		case *ast.EnumMember:
			if n.Discriminant == nil {
				return code(n.Name.Raw) + "\ndiscriminant depends on a non-literal tag value"
			}
			return code(fmt.Sprintf("%s = %s", n.Name.Raw, n.Discriminant))
		case *ast.StructDeclaration:
			if n.Name.Span().Contains(line, column) {
				return code(outline(n))
			}
		case *ast.EnumDeclaration:
			if n.Name.Span().Contains(line, column) {
				return code(outline(n))
			}
		case *ast.TraitDeclaration:
			if n.Name.Span().Contains(line, column) {
				return code(outline(n))
			}
		case *ast.FnDeclaration:
			if n.Name.Span().Contains(line, column) {
				return code(outline(n))
			}
		}
	}
	return ""
}

func code(s string) string {
	return fmt.Sprintf("```ziust\n%s\n```\n", s)
}

func jumpHover(n ast.Node) string {
	label, target, _ := jumpTarget(n)
	var head string
	switch n.(type) {
	case *ast.BreakExpression:
		head = "break"
	case *ast.ContinueExpression:
		head = "continue"
	case *ast.ReturnExpression:
		head = "return"
	}
	if label != nil {
		head += " '" + label.Raw
	}
	if target == nil {
		return code(head) + "\ndoes not resolve"
	}
	out := code(head) + fmt.Sprintf("\ntargets the %s at line %d", target.Kind, target.Span.LineStart)
	if target.Depth > 0 {
		out += fmt.Sprintf(", %d enclosing constructs out", target.Depth)
	}
	return out
}

// labelHover lists the jumps that target label.
func labelHover(m *ast.Module, label *ast.Ident) string {
	jumps := jumpsTo(m, label.Span())
	if len(jumps) == 0 {
		return code("'"+label.Raw) + "\nno jumps target this label"
	}
	lines := make([]string, len(jumps))
	for i, j := range jumps {
		lines[i] = fmt.Sprintf("line %d", j.Span().LineStart)
	}
	return code("'"+label.Raw) + fmt.Sprintf("\ntargeted by %d jump(s): %s", len(jumps), strings.Join(lines, ", "))
}

func deferLabelAt(d *ast.DeferStatement, line, column uint32) *ast.Ident {
	for i := range d.Labels {
		if d.Labels[i].Span().Contains(line, column) {
			return &d.Labels[i]
		}
	}
	if d.When != nil && d.When.Span().Contains(line, column) {
		return d.When
	}
	return nil
}

func deferLabelHover(m *ast.Module, label *ast.Ident, line, column uint32) string {
	head := code("defer '" + label.Raw)
	span, ok := targetAt(m, line, column)
	if !ok {
		return head + "\ndoes not resolve"
	}
	return head + fmt.Sprintf("\nlabels the construct at line %d", span.LineStart)
}

// outline renders a declaration header with its member names.
func outline(n ast.Node) string {
	var sb strings.Builder
	switch n := n.(type) {
	case *ast.StructDeclaration:
		fmt.Fprintf(&sb, "struct %s {", n.Name.Raw)
		for _, m := range n.Members {
			fmt.Fprintf(&sb, "\n    %s,", m.Name.Raw)
		}
		sb.WriteString("\n}")
	case *ast.EnumDeclaration:
		fmt.Fprintf(&sb, "enum %s {", n.Name.Raw)
		for _, m := range n.Members {
			if m.Discriminant != nil {
				fmt.Fprintf(&sb, "\n    %s = %s,", m.Name.Raw, m.Discriminant)
			} else {
				fmt.Fprintf(&sb, "\n    %s,", m.Name.Raw)
			}
		}
		sb.WriteString("\n}")
	case *ast.TraitDeclaration:
		fmt.Fprintf(&sb, "trait %s {", n.Name.Raw)
		for _, m := range n.Members {
			switch m := m.(type) {
			case *ast.TraitConstMember:
				fmt.Fprintf(&sb, "\n    const %s;", m.Name.Raw)
			case *ast.TraitFnMember:
				fmt.Fprintf(&sb, "\n    fn %s(%s);", m.Name.Raw, paramNames(m.Parameters))
			}
		}
		sb.WriteString("\n}")
	case *ast.FnDeclaration:
		fmt.Fprintf(&sb, "fn %s(%s)", n.Name.Raw, paramNames(n.Parameters))
	}
	return sb.String()
}

func paramNames(params []ast.FnParameter) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.ParameterName()
	}
	return strings.Join(names, ", ")
}
