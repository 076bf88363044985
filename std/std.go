// Package std embeds the library sources shipped with the compiler.
package std

import (
	"embed"
	"io/fs"
	"path"
	"strings"

	"github.com/ziust-lang/ziust/common"
)

//go:embed prelude
var FS embed.FS

// Workspace prefixes the paths in Files.
const Workspace = "std"

// Files maps "std/prelude/<name>.zt" to source text.
var Files map[string]string = func() map[string]string {
	out := make(map[string]string)

	err := fs.WalkDir(FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".zt") {
			return nil
		}
		data, err := FS.ReadFile(p)
		if err != nil {
			return err
		}
		out[common.FilePathClean(path.Join(Workspace, p))] = string(data)
		return nil
	})
	if err != nil {
		panic(err)
	}
	return out
}()
