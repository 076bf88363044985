package frontend

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// ConfigFile is the project file expected at the workspace root.
const ConfigFile = "ziust.toml"

// DefaultSrc is the source directory used when `src` is not set.
const DefaultSrc = "src"

type ZiustToml struct {
	Name    string `toml:"name" validate:"required"`
	Version string `toml:"version" validate:"required"`
	Src     string `toml:"src"`
	// Workers bounds parallel compilation; 0 means one per CPU.
	Workers int  `toml:"workers" validate:"gte=0,lte=256"`
	Prelude bool `toml:"prelude"`
	// Exclude lists workspace-relative files skipped by analysis.
	Exclude []string `toml:"exclude" validate:"dive,required"`
}

// Excludes reports whether the workspace-relative path is excluded.
func (zt ZiustToml) Excludes(path string) bool {
	return slices.Contains(zt.Exclude, path)
}

func HandleZiustToml(tomlContent string) (ZiustToml, error) {
	var zt ZiustToml
	md, err := toml.Decode(tomlContent, &zt)
	if err != nil {
		return zt, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return zt, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	validate := validator.New()
	if err := validate.Struct(zt); err != nil {
		return zt, err
	}
	if zt.Src == "" {
		zt.Src = DefaultSrc
	}
	return zt, nil
}
