// Package project analyzes a whole workspace: every source file below the
// configured source directory, plus the embedded prelude when enabled.
package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ziust-lang/ziust/common"
	"github.com/ziust-lang/ziust/frontend"
	"github.com/ziust-lang/ziust/frontend/compile"
	"github.com/ziust-lang/ziust/std"
)

// SourceExt is the extension of source files.
const SourceExt = ".zt"

type CompileOptions struct {
	Workspace string
	// Overrides replaces file contents by path, e.g. unsaved editor buffers.
	Overrides map[string]string
	Logger    *slog.Logger
	// Previous lets files whose content is unchanged reuse their units.
	Previous *ProjectAnalysis
}

// ProjectAnalysis manages analysis of an entire workspace.
type ProjectAnalysis struct {
	Config    frontend.ZiustToml
	workspace string
	overrides map[string]string

	files  map[string]*compile.Unit // keyed by workspace-relative path
	hashes map[string]string
}

func newProjectAnalysis(workspace string, overrides map[string]string) *ProjectAnalysis {
	pa := &ProjectAnalysis{
		workspace: common.FilePathClean(workspace),
		overrides: make(map[string]string, len(overrides)),
		files:     make(map[string]*compile.Unit),
		hashes:    make(map[string]string),
	}
	for p, c := range overrides {
		if p != "" {
			pa.overrides[common.FilePathClean(p)] = c
		}
	}
	return pa
}

func (pa *ProjectAnalysis) Workspace() string {
	return pa.workspace
}

func (pa *ProjectAnalysis) StripWorkspace(path string) string {
	ws := pa.workspace + "/"
	path = common.FilePathClean(path)
	return strings.TrimPrefix(path, ws)
}

// loadFileContent checks the overrides first, then the disk.
func (pa *ProjectAnalysis) loadFileContent(path string) (string, error) {
	path = common.FilePathClean(path)
	if content, ok := pa.overrides[path]; ok {
		return content, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// sourcePaths lists the source files below the source directory, on disk
// or only in overrides, without excluded ones.
func (pa *ProjectAnalysis) sourcePaths() ([]string, error) {
	srcDir := common.FilePathClean(filepath.Join(pa.workspace, pa.Config.Src))
	seen := make(map[string]struct{})

	err := filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, SourceExt) {
			seen[common.FilePathClean(p)] = struct{}{}
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to list %s: %w", srcDir, err)
	}
	for p := range pa.overrides {
		if strings.HasPrefix(p, srcDir+"/") && strings.HasSuffix(p, SourceExt) {
			seen[p] = struct{}{}
		}
	}

	paths := slices.Sorted(maps.Keys(seen))
	return slices.DeleteFunc(paths, func(p string) bool {
		return pa.Config.Excludes(pa.StripWorkspace(p))
	}), nil
}

func AnalyzeProject(ctx context.Context, opts CompileOptions) (*ProjectAnalysis, error) {
	log := opts.Logger
	if log == nil {
		log = common.Logger(ctx)
	}
	pa := newProjectAnalysis(opts.Workspace, opts.Overrides)

	{
		tomlContent, err := pa.loadFileContent(filepath.Join(pa.workspace, frontend.ConfigFile))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", frontend.ConfigFile, err)
		}
		config, err := frontend.HandleZiustToml(tomlContent)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", frontend.ConfigFile, err)
		}
		pa.Config = config
	}

	paths, err := pa.sourcePaths()
	if err != nil {
		return nil, err
	}

	var files []compile.File
	for _, p := range paths {
		content, err := pa.loadFileContent(p)
		if err != nil {
			return nil, fmt.Errorf("failed to load file: %w", err)
		}
		files = append(files, compile.File{Path: p, Source: content})
	}
	if pa.Config.Prelude {
		for _, p := range slices.Sorted(maps.Keys(std.Files)) {
			files = append(files, compile.File{Path: p, Source: std.Files[p]})
		}
	}

	var pending []compile.File
	for _, f := range files {
		rel := pa.StripWorkspace(f.Path)
		hash := common.SHA256Hex(f.Source)
		pa.hashes[rel] = hash
		if prev := opts.Previous; prev != nil && prev.hashes[rel] == hash && prev.files[rel] != nil {
			pa.files[rel] = prev.files[rel]
			continue
		}
		pending = append(pending, f)
	}

	units, err := compile.Units(ctx, pending, compile.Options{Logger: log, Workers: pa.Config.Workers})
	if err != nil {
		return nil, err
	}
	for _, u := range units {
		pa.files[pa.StripWorkspace(u.Path)] = u
	}

	log.Info("analyzed project",
		"name", pa.Config.Name,
		"files", len(pa.files),
		"compiled", len(pending),
		"diagnostics", len(pa.Diagnostics()))
	return pa, nil
}

// Files returns the compiled units keyed by workspace-relative path.
func (pa *ProjectAnalysis) Files() map[string]*compile.Unit {
	return pa.files
}

// Paths returns the keys of Files in order.
func (pa *ProjectAnalysis) Paths() []string {
	return slices.Sorted(maps.Keys(pa.files))
}

// Unit looks a file up by absolute or workspace-relative path.
func (pa *ProjectAnalysis) Unit(path string) *compile.Unit {
	return pa.files[pa.StripWorkspace(path)]
}

// Diagnostics flattens the diagnostics of all files in path order.
func (pa *ProjectAnalysis) Diagnostics() []common.Diagnostic {
	var out []common.Diagnostic
	for _, p := range pa.Paths() {
		out = append(out, pa.files[p].Diags...)
	}
	return out
}
