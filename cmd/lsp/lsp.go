// Package lsp serves ziust diagnostics, label navigation and hovers over
// the language server protocol.
package lsp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	protocol "github.com/gluax-lang/lsp"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend/compile"
	"github.com/ziust-lang/ziust/frontend/project"
)

func RunLSP(ctx context.Context) error {
	return NewHandler(ctx).Serve(ctx)
}

type Handler struct {
	*protocol.Server
	ctx              context.Context
	log              *slog.Logger
	fileCache        map[string]string // keyed by cleaned file path
	mu               sync.Mutex
	workspace        string
	lastProjAnalysis *project.ProjectAnalysis
	published        map[string]bool
}

func NewHandler(ctx context.Context) *Handler {
	h := &Handler{
		ctx:       ctx,
		log:       common.Logger(ctx).With("component", "lsp"),
		fileCache: make(map[string]string),
		published: make(map[string]bool),
	}
	h.Server = protocol.NewServer(os.Stdin, os.Stdout, h)
	return h
}

func (h *Handler) Initialize(p *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	if p.WorkspaceFolders == nil || len(*p.WorkspaceFolders) == 0 {
		return nil, fmt.Errorf("no workspace folder detected")
	}
	workspaceFolders := *p.WorkspaceFolders
	root, err := common.URIToFilePath(workspaceFolders[0].URI)
	if err != nil {
		h.log.Error("invalid workspace folder", "error", err)
		return nil, err
	}
	h.log.Info("initialize", "root", root)
	h.workspace = root
	return &protocol.InitializeResult{Capabilities: protocol.ServerCapabilities{
		HoverProvider: protocol.NewHoverProviderBool(true),
		TextDocumentSync: protocol.NewTextDocumentSyncOptions(protocol.TextDocumentSyncOptions{
			OpenClose: true,
			Change:    protocol.TextDocumentSyncKindFull,
			Save: &protocol.SaveOptions{
				IncludeText: true,
			},
		}),
		InlayHintProvider: protocol.NewInlayHintProviderOptions(protocol.InlayHintOptions{
			ResolveProvider: false,
			WorkDoneProgressOptions: protocol.WorkDoneProgressOptions{
				WorkDoneProgress: false,
			},
		}),
		CompletionProvider: protocol.CompletionOptions{
			TriggerCharacters: []string{"'"},
		},
	}}, nil
}

func (h *Handler) Initialized() error {
	h.log.Debug("initialized")
	return nil
}

// analyze re-runs project analysis with every open buffer as an override.
// Callers hold h.mu.
func (h *Handler) analyze() *project.ProjectAnalysis {
	overrides := make(map[string]string, len(h.fileCache))
	for path, text := range h.fileCache {
		overrides[path] = text
	}
	pAnalysis, err := project.AnalyzeProject(h.ctx, project.CompileOptions{
		Workspace: h.workspace,
		Overrides: overrides,
		Logger:    h.log,
		Previous:  h.lastProjAnalysis,
	})
	if err != nil {
		h.log.Warn("error analyzing project", "error", err)
		return nil
	}
	h.lastProjAnalysis = pAnalysis
	return pAnalysis
}

// handleDiagnostics publishes diagnostics for every workspace file,
// clearing files that no longer have any.
func (h *Handler) handleDiagnostics() {
	pAnalysis := h.analyze()
	if pAnalysis == nil {
		return
	}

	current := make(map[string]bool)
	for _, rel := range pAnalysis.Paths() {
		unit := pAnalysis.Files()[rel]
		if !filepath.IsAbs(filepath.FromSlash(unit.Path)) {
			continue // embedded library sources
		}
		uri := common.FilePathToURI(unit.Path)
		current[uri] = true
		h.PublishDiagnostics(uri, toProtocol(unit))
	}
	for uri := range h.published {
		if !current[uri] {
			h.PublishDiagnostics(uri, []protocol.Diagnostic{})
		}
	}
	h.published = current
}

func toProtocol(unit *compile.Unit) []protocol.Diagnostic {
	idx := newLineIndex(unit.Source)
	out := common.ToProtocolDiagnostics(unit.Diags)
	for i, d := range unit.Diags {
		out[i].Range = idx.toRange(d.Span)
	}
	return out
}

// unitAt returns the unit and buffer text for uri from the last analysis.
func (h *Handler) unitAt(uri string) (*compile.Unit, lineIndex, bool) {
	path, err := common.URIToFilePath(uri)
	if err != nil || h.lastProjAnalysis == nil {
		return nil, lineIndex{}, false
	}
	unit := h.lastProjAnalysis.Unit(common.FilePathClean(path))
	if unit == nil || unit.Module == nil {
		return nil, lineIndex{}, false
	}
	return unit, newLineIndex(unit.Source), true
}
