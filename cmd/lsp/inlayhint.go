package lsp

import (
	"github.com/gluax-lang/lsp"

	"github.com/ziust-lang/ziust/frontend/ast"
)

// InlayHint shows the implicit discriminant of enum members without a tag.
func (h *Handler) InlayHint(p *lsp.InlayHintParams) ([]lsp.InlayHint, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	unit, idx, ok := h.unitAt(p.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return discriminantHints(unit.Module, idx), nil
}

func discriminantHints(m *ast.Module, idx lineIndex) []lsp.InlayHint {
	var hints []lsp.InlayHint
	ast.Inspect(m, func(n ast.Node) bool {
		member, ok := n.(*ast.EnumMember)
		if !ok || member.TagValue != nil || member.Discriminant == nil {
			return true
		}
		end := member.Name.Span()
		hints = append(hints, lsp.InlayHint{
			Position: idx.position(end.LineEnd, end.ColumnEnd+1),
			Label:    []lsp.InlayHintLabelPart{{Value: " = " + member.Discriminant.String()}},
		})
		return true
	})
	return hints
}
