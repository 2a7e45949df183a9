package workspace

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"
)

const pyprojectTemplate = `[project]
name = "{{.Name}}"
version = "0.1.0"
description = "{{.Name}} workspace package"
requires-python = ">=3.12"
dependencies = []

[build-system]
requires = ["hatchling"]
build-backend = "hatchling.build"
`

const readmeTemplate = `# {{.Name}}

Workspace member of {{.Workspace}}. Managed by devkit; add dependencies in
pyproject.toml and run uv sync inside the devcontainer.
`

// Scaffolder creates member package skeletons on disk
type Scaffolder struct {
	root   string
	logger *slog.Logger
}

// NewScaffolder creates a scaffolder rooted at the workspace directory
func NewScaffolder(root string, logger *slog.Logger) *Scaffolder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scaffolder{root: root, logger: logger}
}

// Scaffold creates the package skeleton for a manifest member: its
// directory, pyproject.toml, source package, and README. Existing files are
// not overwritten.
func (s *Scaffolder) Scaffold(m *Manifest, name string) error {
	member, err := m.Member(name)
	if err != nil {
		return err
	}

	dir := filepath.Join(s.root, member.Path)
	srcDir := filepath.Join(dir, member.Name)
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("create package directory: %w", err)
	}

	data := struct {
		Name      string
		Workspace string
	}{Name: member.Name, Workspace: m.Name}

	files := map[string]string{
		filepath.Join(dir, "pyproject.toml"): pyprojectTemplate,
		filepath.Join(dir, "README.md"):      readmeTemplate,
		filepath.Join(srcDir, "__init__.py"): "",
	}

	for path, tmpl := range files {
		if _, err := os.Stat(path); err == nil {
			s.logger.Debug("skipping existing file", "path", path)
			continue
		}
		content, err := render(tmpl, data)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	s.logger.Info("scaffolded workspace member", "member", member.Name, "path", dir)
	return nil
}

func render(tmpl string, data any) ([]byte, error) {
	if tmpl == "" {
		return nil, nil
	}
	t, err := template.New("scaffold").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return buf.Bytes(), nil
}
