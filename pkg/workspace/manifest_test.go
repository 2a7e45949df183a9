package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestManifest_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workspace.yaml")

	m := NewManifest("py-uv-devcontainer")
	if err := m.Save(path); err != nil {
		t.Fatalf("failed to save manifest: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load manifest: %v", err)
	}
	if diff := cmp.Diff(m, loaded); diff != "" {
		t.Errorf("manifest changed across save/load (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingManifest(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "workspace.yaml"))
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
	if !IsManifestMissing(err) {
		t.Errorf("expected ErrManifestNotFound, got %v", err)
	}
}

func TestLoad_InvalidManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workspace.yaml")
	if err := os.WriteFile(path, []byte("members: [broken\n"), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestManifest_AddMember(t *testing.T) {
	m := NewManifest("test")

	if err := m.AddMember("fetcher", ""); err != nil {
		t.Fatalf("failed to add member: %v", err)
	}
	member, err := m.Member("fetcher")
	if err != nil {
		t.Fatalf("added member not found: %v", err)
	}
	if member.Path != filepath.Join("packages", "fetcher") {
		t.Errorf("unexpected default path %s", member.Path)
	}

	if err := m.AddMember("fetcher", ""); err == nil {
		t.Error("expected error adding duplicate member")
	}
	if err := m.AddMember("", ""); err == nil {
		t.Error("expected error adding unnamed member")
	}
}

func TestManifest_RemoveMember(t *testing.T) {
	m := NewManifest("test")

	if err := m.RemoveMember("scraper"); err != nil {
		t.Fatalf("failed to remove member: %v", err)
	}
	if _, err := m.Member("scraper"); !IsNotFound(err) {
		t.Errorf("expected ErrMemberNotFound after removal, got %v", err)
	}
	if err := m.RemoveMember("scraper"); !IsNotFound(err) {
		t.Errorf("expected ErrMemberNotFound removing twice, got %v", err)
	}

	// utils is untouched
	if _, err := m.Member("utils"); err != nil {
		t.Errorf("unrelated member removed: %v", err)
	}
}

func TestManifest_Validate(t *testing.T) {
	root := t.TempDir()
	m := &Manifest{
		Name:    "test",
		Members: []Member{{Name: "scraper", Path: "packages/scraper"}},
	}

	if err := m.Validate(root); err == nil {
		t.Error("expected error for missing member directory")
	}

	dir := filepath.Join(root, "packages", "scraper")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create member dir: %v", err)
	}
	if err := m.Validate(root); err == nil {
		t.Error("expected error for member without pyproject.toml")
	}

	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte("[project]\n"), 0o644); err != nil {
		t.Fatalf("failed to write pyproject: %v", err)
	}
	if err := m.Validate(root); err != nil {
		t.Errorf("expected valid manifest, got %v", err)
	}
}
