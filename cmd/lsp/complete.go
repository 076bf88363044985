package lsp

import (
	"fmt"

	"github.com/gluax-lang/lsp"
)

// Complete offers the labels in scope at the cursor.
func (h *Handler) Complete(p *lsp.CompletionParams) (*lsp.CompletionList, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	unit, idx, ok := h.unitAt(p.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	line, column := idx.toSpan(p.Position)

	var list []lsp.CompletionItem
	for _, l := range labelsInScope(nodesAt(unit.Module, line, column)) {
		kind := lsp.CompletionItemKindVariable
		detail := fmt.Sprintf("%s label, line %d", l.kind, l.span.LineStart)
		list = append(list, lsp.CompletionItem{
			Label:  "'" + l.name,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return &lsp.CompletionList{
		IsIncomplete: false,
		Items:        list,
	}, nil
}
