package main

import (
	"fmt"
)

var Version = "dev" // replaced by linker flag at build time

type VersionCmd struct{}

func (v *VersionCmd) Run(env *runEnv) error {
	fmt.Fprintln(env.stdout, "ziust version:", Version)
	return nil
}
