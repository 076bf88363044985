package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziust-lang/ziust/frontend"
)

type NewCmd struct {
	Name string `arg:"" required:"" help:"Name of the new project."`
}

func (n *NewCmd) Run(env *runEnv) error {
	projectDir := n.Name
	configPath := filepath.Join(projectDir, frontend.ConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}
	if err := os.MkdirAll(filepath.Join(projectDir, frontend.DefaultSrc), 0755); err != nil {
		return err
	}

	// ziust.toml
	tomlContent := "name = \"" + filepath.Base(n.Name) + "\"\nversion = \"0.1\"\n"
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		return err
	}

	// src/main.zt
	mainContent := "fn main() {\n\n}\n"
	if err := os.WriteFile(filepath.Join(projectDir, frontend.DefaultSrc, "main.zt"), []byte(mainContent), 0644); err != nil {
		return err
	}

	fmt.Fprintf(env.stdout, "created %s\n", projectDir)
	return nil
}
