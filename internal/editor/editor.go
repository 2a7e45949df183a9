// Package editor generates the editor-facing configuration of a workspace:
// the devcontainer definition and VS Code settings, derived from an
// environment profile.
package editor

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/23min/devkit/pkg/profile"
)

// Devcontainer is the .devcontainer/devcontainer.json document
type Devcontainer struct {
	Name           string          `json:"name"`
	Image          string          `json:"image"`
	RunArgs        []string        `json:"runArgs,omitempty"`
	Customizations *Customizations `json:"customizations,omitempty"`
	PostCreate     string          `json:"postCreateCommand,omitempty"`
}

// Customizations holds per-tool configuration blocks
type Customizations struct {
	VSCode *VSCodeCustomization `json:"vscode,omitempty"`
}

// VSCodeCustomization configures the VS Code devcontainer integration
type VSCodeCustomization struct {
	Settings   map[string]any `json:"settings,omitempty"`
	Extensions []string       `json:"extensions,omitempty"`
}

// defaultSettings are the editor settings a Python/uv workspace starts with
func defaultSettings() map[string]any {
	return map[string]any{
		"python.defaultInterpreterPath":       "/workspace/.venv/bin/python",
		"python.terminal.activateEnvironment": false,
		"editor.formatOnSave":                 true,
		"[python]": map[string]any{
			"editor.defaultFormatter": "charliermarsh.ruff",
		},
	}
}

var defaultExtensions = []string{
	"ms-python.python",
	"charliermarsh.ruff",
	"tamasfe.even-better-toml",
}

// Generator writes editor configuration under a workspace root
type Generator struct {
	root   string
	logger *slog.Logger
}

// NewGenerator creates a generator rooted at the workspace directory
func NewGenerator(root string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{root: root, logger: logger}
}

// Sync regenerates .devcontainer/devcontainer.json and .vscode/settings.json
// from the profile. Both files are overwritten; they are derived artifacts.
func (g *Generator) Sync(p *profile.Profile) error {
	if p == nil {
		return fmt.Errorf("profile is required")
	}

	image := p.BaseImage
	if image == "" {
		image = "python:3.12-slim-bookworm"
	}

	dc := &Devcontainer{
		Name:  p.Name,
		Image: image,
		// The composed artifact feeds the container's environment; the
		// runtime applies last-wins to duplicate keys.
		RunArgs:    []string{"--env-file", p.Output},
		PostCreate: "pip install --no-cache-dir uv && uv sync",
		Customizations: &Customizations{
			VSCode: &VSCodeCustomization{
				Settings:   defaultSettings(),
				Extensions: defaultExtensions,
			},
		},
	}

	if err := g.writeJSON(filepath.Join(".devcontainer", "devcontainer.json"), dc); err != nil {
		return err
	}
	if err := g.writeJSON(filepath.Join(".vscode", "settings.json"), defaultSettings()); err != nil {
		return err
	}

	g.logger.Info("editor configuration synced", "profile", p.Name)
	return nil
}

func (g *Generator) writeJSON(rel string, v any) error {
	path := filepath.Join(g.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(rel), err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", rel, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	return nil
}
