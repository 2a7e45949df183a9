package editor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/23min/devkit/pkg/profile"
)

func TestSync_WritesDevcontainerAndSettings(t *testing.T) {
	root := t.TempDir()
	g := NewGenerator(root, nil)

	p := &profile.Profile{
		Name:      "development",
		BaseImage: "python:3.12-slim-bookworm",
		Layers:    []string{"common.env", "development.env"},
		Output:    "devcontainer.env",
	}
	if err := g.Sync(p); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, ".devcontainer", "devcontainer.json"))
	if err != nil {
		t.Fatalf("devcontainer.json not written: %v", err)
	}
	var dc Devcontainer
	if err := json.Unmarshal(data, &dc); err != nil {
		t.Fatalf("devcontainer.json is not valid json: %v", err)
	}
	if dc.Name != "development" || dc.Image != "python:3.12-slim-bookworm" {
		t.Errorf("unexpected devcontainer %+v", dc)
	}
	if len(dc.RunArgs) != 2 || dc.RunArgs[1] != "devcontainer.env" {
		t.Errorf("combined artifact not referenced: %v", dc.RunArgs)
	}

	settings, err := os.ReadFile(filepath.Join(root, ".vscode", "settings.json"))
	if err != nil {
		t.Fatalf("settings.json not written: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(settings, &parsed); err != nil {
		t.Fatalf("settings.json is not valid json: %v", err)
	}
	if parsed["python.defaultInterpreterPath"] != "/workspace/.venv/bin/python" {
		t.Errorf("interpreter path missing from settings: %v", parsed)
	}
}

func TestSync_DefaultsImage(t *testing.T) {
	root := t.TempDir()
	g := NewGenerator(root, nil)

	p := &profile.Profile{Name: "dev", Layers: []string{"common.env"}, Output: "out.env"}
	if err := g.Sync(p); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(root, ".devcontainer", "devcontainer.json"))
	var dc Devcontainer
	if err := json.Unmarshal(data, &dc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if dc.Image == "" {
		t.Error("expected default image")
	}
}

func TestSync_NilProfile(t *testing.T) {
	if err := NewGenerator(t.TempDir(), nil).Sync(nil); err == nil {
		t.Error("expected error for nil profile")
	}
}
