package lsp

import (
	"github.com/gluax-lang/lsp"

	"github.com/ziust-lang/ziust/common"
)

func (h *Handler) DidOpen(p *lsp.DidOpenTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := common.URIToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil
	}
	h.fileCache[common.FilePathClean(path)] = p.TextDocument.Text
	h.handleDiagnostics()
	return nil
}

func (h *Handler) DidChange(p *lsp.DidChangeTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := common.URIToFilePath(p.TextDocument.URI)
	if err != nil || len(p.ContentChanges) == 0 {
		return nil
	}
	h.fileCache[common.FilePathClean(path)] = p.ContentChanges[0].Text
	h.handleDiagnostics()
	return nil
}

func (h *Handler) DidClose(p *lsp.DidCloseTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := common.URIToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil
	}
	delete(h.fileCache, common.FilePathClean(path))
	h.handleDiagnostics()
	return nil
}

func (h *Handler) DidSave(p *lsp.DidSaveTextDocumentParams) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	path, err := common.URIToFilePath(p.TextDocument.URI)
	if err != nil {
		return nil
	}
	if p.Text != nil {
		h.fileCache[common.FilePathClean(path)] = *p.Text
	}
	h.handleDiagnostics()
	return nil
}
